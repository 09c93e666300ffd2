package persist

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/kapaka/internal/model"
	"github.com/sandeepkv93/kapaka/internal/storage"
)

type failingStore struct {
	storage.MemoryStore
}

func (*failingStore) SetItem(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestTasksRoundTripThroughSQLite(t *testing.T) {
	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "kapaka.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	ctx := t.Context()

	in := []model.Task{{Text: "Call Sam"}, {Text: "Buy milk", Complete: true}}
	if err := SaveTasks(ctx, store, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := LoadTasks(ctx, store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("unexpected tasks: %#v", out)
	}
}

func TestLoadTasksAbsentAndMalformed(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	out, err := LoadTasks(ctx, store)
	if err != nil || len(out) != 0 {
		t.Fatalf("expected empty list for absent key, got %#v err=%v", out, err)
	}

	_ = store.SetItem(ctx, model.TasksKey, "not-json")
	out, err = LoadTasks(ctx, store)
	if !errors.Is(err, model.ErrMalformedList) {
		t.Fatalf("expected ErrMalformedList, got %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", out)
	}
}

func TestThemeRoundTripAndReset(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	if _, ok, err := LoadTheme(ctx, store); ok || err != nil {
		t.Fatalf("expected no theme, ok=%v err=%v", ok, err)
	}
	if err := SaveTheme(ctx, store, "160"); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	hue, ok, err := LoadTheme(ctx, store)
	if err != nil || !ok || hue != "160" {
		t.Fatalf("unexpected theme %q ok=%v err=%v", hue, ok, err)
	}

	if err := Reset(ctx, store); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := Reset(ctx, store); err != nil {
		t.Fatalf("reset on empty store: %v", err)
	}
	if _, ok, _ := LoadTheme(ctx, store); ok {
		t.Fatal("expected theme removed")
	}
}

func TestSaveTasksWrapsStoreError(t *testing.T) {
	store := &failingStore{}
	err := SaveTasks(context.Background(), store, []model.Task{{Text: "x"}})
	if err == nil || err.Error() != "write tasks: disk full" {
		t.Fatalf("unexpected error: %v", err)
	}
}
