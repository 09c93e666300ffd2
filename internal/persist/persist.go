// Package persist moves the task list and theme between the model and a
// storage.Store under their fixed keys.
package persist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/kapaka/internal/model"
	"github.com/sandeepkv93/kapaka/internal/storage"
)

// LoadTasks returns the stored list in stored order. An absent key is an empty
// list. A malformed value also yields an empty list, together with the decode
// error so the caller can log it.
func LoadTasks(ctx context.Context, store storage.Store) ([]model.Task, error) {
	raw, err := store.GetItem(ctx, model.TasksKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []model.Task{}, nil
		}
		return []model.Task{}, fmt.Errorf("read tasks: %w", err)
	}
	tasks, err := model.DecodeTasks(raw)
	if err != nil {
		return []model.Task{}, err
	}
	return tasks, nil
}

func SaveTasks(ctx context.Context, store storage.Store, tasks []model.Task) error {
	raw, err := model.EncodeTasks(tasks)
	if err != nil {
		return err
	}
	if err := store.SetItem(ctx, model.TasksKey, raw); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// LoadTheme reports the stored hue and whether one was present.
func LoadTheme(ctx context.Context, store storage.Store) (string, bool, error) {
	raw, err := store.GetItem(ctx, model.ThemeKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read theme: %w", err)
	}
	hue := strings.TrimSpace(raw)
	if hue == "" {
		return "", false, nil
	}
	return hue, true, nil
}

func SaveTheme(ctx context.Context, store storage.Store, hue string) error {
	if err := store.SetItem(ctx, model.ThemeKey, hue); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

// Reset removes both keys; absent keys are not an error.
func Reset(ctx context.Context, store storage.Store) error {
	for _, key := range []string{model.TasksKey, model.ThemeKey} {
		if err := store.RemoveItem(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}
