package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/kapaka/internal/config"
	"github.com/sandeepkv93/kapaka/internal/logging"
	"github.com/sandeepkv93/kapaka/internal/persist"
	"github.com/sandeepkv93/kapaka/internal/scheduler"
	"github.com/sandeepkv93/kapaka/internal/storage"
	"github.com/sandeepkv93/kapaka/internal/update"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	dbPath     string
	logPath    string
	noSound    bool
	reset      bool
}

// NewRootCommand creates the kapaka command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "kapaka",
		Short: "A small terminal task list",
		Long: `kapaka keeps a short list of tasks in your terminal. New tasks go to the
top, completed ones disappear a moment later, and the list and theme are
remembered between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/kapaka/config.yaml)")
	flags.StringVar(&opts.dbPath, "db", "", "task database path")
	flags.StringVar(&opts.logPath, "log", "", "write JSON logs to this file")
	flags.BoolVar(&opts.noSound, "no-sound", false, "do not play the completion chime")
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "clear stored tasks and theme before starting")

	cmd.AddCommand(newListCommand(opts), newAddCommand(opts))
	return cmd
}

func (o *options) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// applyOverrides layers env vars and then flags over a loaded config.
func (o *options) applyOverrides(cfg config.Config) config.Config {
	cfg = config.FromEnv(cfg)
	if o.dbPath != "" {
		cfg.Storage.Path = o.dbPath
	}
	if o.logPath != "" {
		cfg.Log.Path = o.logPath
	}
	if o.noSound {
		cfg.Feedback.Sound = false
	}
	return cfg
}

func (o *options) loadConfig() (config.Config, string, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg = o.applyOverrides(cfg)
	if cfg.Storage.Path == "" {
		dbPath, err := config.DefaultDBPath()
		if err != nil {
			return config.Config{}, "", err
		}
		cfg.Storage.Path = dbPath
	}
	return cfg, path, nil
}

func runTUI(parent context.Context, opts *options) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, cfgPath, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logCloser.Close()

	store, err := storage.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open task store: %w", err)
	}
	defer store.Close()

	if opts.reset {
		if err := persist.Reset(ctx, store); err != nil {
			return fmt.Errorf("failed to reset stored state: %w", err)
		}
		logger.Info("stored state cleared")
	}

	engine := scheduler.NewEngine(cfg.Timing.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	var updates <-chan config.Config
	watcher, err := config.NewWatcher(cfgPath)
	if err == nil {
		err = watcher.Start(ctx, cfg.WatchDebounce())
	}
	if err != nil {
		logger.Warn("config watcher unavailable", "err", err)
	} else {
		defer watcher.Stop()
		updates = forwardConfig(ctx, watcher, opts, logger)
	}

	var chime update.Chime = update.NoopChime{}
	if cfg.Feedback.Sound {
		chime = update.BeeepChime{}
	}

	m := update.NewModelWithConfig(update.Runtime{
		Context:       ctx,
		Store:         store,
		Timers:        engine,
		ConfigUpdates: updates,
		Chime:         chime,
		Notifier:      update.BeeepDesktopNotifier{},
		Logger:        logger,
	}, cfg)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	logger.Info("starting", "db", cfg.Storage.Path, "config", cfgPath)
	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
