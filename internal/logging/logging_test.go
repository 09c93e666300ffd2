package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWritesJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kapaka.log")
	logger, closer, err := New(path, "debug")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("tasks loaded", "count", 2)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(raw))), &rec); err != nil {
		t.Fatalf("expected json record, got %q: %v", raw, err)
	}
	if rec["msg"] != "tasks loaded" || rec["count"] != float64(2) {
		t.Fatalf("unexpected record: %#v", rec)
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closer, err := New("", "info")
	if err != nil || logger == nil {
		t.Fatalf("expected discard logger, got %v err=%v", logger, err)
	}
	logger.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
