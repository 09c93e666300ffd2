package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk and reports each
// successful reload on Updates. Parse failures are reported on Errors and the
// previous config stays in effect.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	updates  chan Config
	errors   chan error
	cancel   context.CancelFunc
	mu       sync.Mutex
	watching bool
}

func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &Watcher{
		path:    path,
		fsw:     fsw,
		updates: make(chan Config, 1),
		errors:  make(chan error, 1),
	}, nil
}

// Start watches the config file's parent directory so editors that replace
// the file via rename are still observed.
func (w *Watcher) Start(ctx context.Context, debounce time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watching {
		return fmt.Errorf("watcher already started")
	}
	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.watching = true
	go w.processEvents(watchCtx, debounce)
	return nil
}

func (w *Watcher) Updates() <-chan Config {
	return w.updates
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.watching {
		w.mu.Unlock()
		return w.fsw.Close()
	}
	w.watching = false
	w.mu.Unlock()

	w.cancel()
	return w.fsw.Close()
}

func (w *Watcher) processEvents(ctx context.Context, debounce time.Duration) {
	var debounceTimer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			cfg, err := Load(w.path)
			if err != nil {
				w.sendError(ctx, err)
				continue
			}
			select {
			case w.updates <- FromEnv(cfg):
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(ctx, err)
		}
	}
}

func (w *Watcher) sendError(ctx context.Context, err error) {
	select {
	case w.errors <- err:
	case <-ctx.Done():
	default:
	}
}
