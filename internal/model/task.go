package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Storage keys shared by the TUI and the CLI.
const (
	TasksKey = "kapaka-tasks"
	ThemeKey = "kapaka-theme"
)

// EmptyTaskMessage is shown when a blank task is submitted ("Please write something!").
const EmptyTaskMessage = "يرجى كتابة شيء ما!"

var (
	ErrEmptyText     = errors.New("model: task text is required")
	ErrMalformedList = errors.New("model: malformed task list")
)

type Task struct {
	Text     string `json:"text"`
	Complete bool   `json:"complete"`
}

// NewTask trims text and returns an incomplete task.
func NewTask(text string) (Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Task{}, ErrEmptyText
	}
	return Task{Text: trimmed}, nil
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// Prepend places t at the front; newest tasks are listed first.
func Prepend(tasks []Task, t Task) []Task {
	out := make([]Task, 0, len(tasks)+1)
	out = append(out, t)
	return append(out, tasks...)
}

// EncodeTasks serializes tasks in the given order.
func EncodeTasks(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(raw), nil
}

// DecodeTasks parses a persisted list, preserving stored order. Entries with
// blank text are dropped.
func DecodeTasks(raw string) ([]Task, error) {
	if strings.TrimSpace(raw) == "" {
		return []Task{}, nil
	}
	var decoded []Task
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedList, err)
	}
	out := make([]Task, 0, len(decoded))
	for _, t := range decoded {
		if t.Validate() != nil {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
