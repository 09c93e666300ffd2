package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sandeepkv93/kapaka/internal/config"
	"github.com/sandeepkv93/kapaka/internal/model"
	"github.com/sandeepkv93/kapaka/internal/persist"
	"github.com/sandeepkv93/kapaka/internal/storage"
	"github.com/spf13/cobra"
)

var errEmptyTask = errors.New(model.EmptyTaskMessage)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the stored tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), opts, func(ctx context.Context, store storage.Store) error {
				tasks, err := persist.LoadTasks(ctx, store)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(tasks) == 0 {
					fmt.Fprintln(out, "no tasks")
					return nil
				}
				for i, t := range tasks {
					mark := "[ ]"
					if t.Complete {
						mark = "[x]"
					}
					fmt.Fprintf(out, "%d. %s %s\n", i+1, mark, t.Text)
				}
				return nil
			})
		},
	}
}

func newAddCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to the top of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := model.NewTask(strings.Join(args, " "))
			if err != nil {
				return errEmptyTask
			}
			return withStore(cmd.Context(), opts, func(ctx context.Context, store storage.Store) error {
				tasks, err := persist.LoadTasks(ctx, store)
				if err != nil {
					return err
				}
				if err := persist.SaveTasks(ctx, store, model.Prepend(tasks, task)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added: %s\n", task.Text)
				return nil
			})
		},
	}
}

// withStore opens the configured database for the duration of fn.
func withStore(ctx context.Context, opts *options, fn func(context.Context, storage.Store) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, _, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store, err := storage.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open task store: %w", err)
	}
	defer store.Close()
	return fn(ctx, store)
}

// forwardConfig relays watcher reloads with flag overrides reapplied and logs
// reload failures.
func forwardConfig(ctx context.Context, w *config.Watcher, opts *options, logger *slog.Logger) <-chan config.Config {
	out := make(chan config.Config, 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case cfg, ok := <-w.Updates():
				if !ok {
					return
				}
				select {
				case out <- opts.applyOverrides(cfg):
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				logger.Warn("config reload failed", "err", err)
			}
		}
	}()
	return out
}
