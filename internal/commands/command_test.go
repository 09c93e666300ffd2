package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"done 2", TypeComplete},
		{"/complete 1", TypeComplete},
		{"rm 3", TypeRemove},
		{"remove 1", TypeRemove},
		{"theme 222", TypeTheme},
		{"/theme #2", TypeTheme},
		{"menu", TypeMenu},
		{"/INFO", TypeInfo},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddKeepsInnerSpacing(t *testing.T) {
	cmd, err := Parse("/add   call  Sam  ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Text != "call  Sam" {
		t.Fatalf("unexpected add text: %q", cmd.Add.Text)
	}
}

func TestParseThemeArgs(t *testing.T) {
	cmd, err := Parse("theme #3")
	if err != nil || cmd.Theme.Button != 3 || cmd.Theme.Hue != "" {
		t.Fatalf("unexpected button theme: %+v err=%v", cmd.Theme, err)
	}
	cmd, err = Parse("theme 160")
	if err != nil || cmd.Theme.Hue != "160" {
		t.Fatalf("unexpected hue theme: %+v err=%v", cmd.Theme, err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add   ", ErrCodeInvalidArgument},
		{"done", ErrCodeInvalidArgument},
		{"rm zero", ErrCodeInvalidArgument},
		{"rm 0", ErrCodeInvalidArgument},
		{"theme blue", ErrCodeInvalidArgument},
		{"theme #x", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/rm 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Remove: func(a TaskArgs) (Result, error) {
			called = true
			if a.Position != 2 {
				t.Fatalf("unexpected position: %d", a.Position)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("info")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
