package model

import (
	"errors"
	"testing"
)

func TestNewTaskTrimsText(t *testing.T) {
	task, err := NewTask("  Buy milk \n")
	if err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
	if task.Text != "Buy milk" || task.Complete {
		t.Fatalf("unexpected task: %+v", task)
	}
}

func TestNewTaskRejectsBlank(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := NewTask(in); !errors.Is(err, ErrEmptyText) {
			t.Fatalf("NewTask(%q) err = %v, want ErrEmptyText", in, err)
		}
	}
}

func TestPrependPutsNewestFirst(t *testing.T) {
	tasks := Prepend(nil, Task{Text: "Buy milk"})
	tasks = Prepend(tasks, Task{Text: "Call Sam"})
	if len(tasks) != 2 || tasks[0].Text != "Call Sam" || tasks[1].Text != "Buy milk" {
		t.Fatalf("unexpected order: %#v", tasks)
	}
}

func TestEncodeDecodeKeepsOrderAndFlags(t *testing.T) {
	in := []Task{{Text: "Call Sam"}, {Text: "Buy milk", Complete: true}}
	raw, err := EncodeTasks(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if raw != `[{"text":"Call Sam","complete":false},{"text":"Buy milk","complete":true}]` {
		t.Fatalf("unexpected wire form: %s", raw)
	}
	out, err := DecodeTasks(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("unexpected decode: %#v", out)
	}
}

func TestEncodeNilIsEmptyArray(t *testing.T) {
	raw, err := EncodeTasks(nil)
	if err != nil || raw != "[]" {
		t.Fatalf("expected [], got %q err=%v", raw, err)
	}
}

func TestDecodeMalformedAndBlank(t *testing.T) {
	if _, err := DecodeTasks("{not json"); !errors.Is(err, ErrMalformedList) {
		t.Fatalf("expected ErrMalformedList, got %v", err)
	}
	out, err := DecodeTasks("")
	if err != nil || len(out) != 0 {
		t.Fatalf("expected empty list, got %#v err=%v", out, err)
	}
	out, err = DecodeTasks(`[{"text":"  ","complete":true},{"text":"ok"}]`)
	if err != nil || len(out) != 1 || out[0].Text != "ok" {
		t.Fatalf("expected blank entry dropped, got %#v err=%v", out, err)
	}
}

func TestParseHue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		err  bool
	}{
		{"222", 222, false},
		{" 5 ", 5, false},
		{"360", 0, false},
		{"-30", 330, false},
		{"12.5", 12.5, false},
		{"blue", 0, true},
		{"", 0, true},
		{"-725", 355, false},
		{"1080", 0, false},
		{"inf", 0, true},
		{"-Inf", 0, true},
		{"NaN", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseHue(tc.in)
		if tc.err {
			if !errors.Is(err, ErrInvalidHue) {
				t.Fatalf("ParseHue(%q) err = %v, want ErrInvalidHue", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseHue(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestParseHueLargeFiniteStaysInRange(t *testing.T) {
	for _, in := range []string{"1e300", "-1e300", "1.7976931348623157e308"} {
		got, err := ParseHue(in)
		if err != nil {
			t.Fatalf("ParseHue(%q) err = %v", in, err)
		}
		if got < 0 || got >= 360 {
			t.Fatalf("ParseHue(%q) = %v, want value in [0, 360)", in, got)
		}
	}
}
