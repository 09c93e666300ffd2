// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sandeepkv93/kapaka/internal/model"
	"gopkg.in/yaml.v3"
)

const appDirName = "kapaka"

type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	UI       UIConfig       `yaml:"ui"`
	Timing   TimingConfig   `yaml:"timing"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Log      LogConfig      `yaml:"log"`
}

type StorageConfig struct {
	// Path of the SQLite database holding persisted tasks and theme.
	Path string `yaml:"path,omitempty"`
}

type UIConfig struct {
	Themes    []model.ThemeOption `yaml:"themes,omitempty"`
	Mouse     bool                `yaml:"mouse"`
	AltScreen bool                `yaml:"alt_screen"`
}

type TimingConfig struct {
	CompleteDelayMS int `yaml:"complete_delay_ms"`
	NotificationMS  int `yaml:"notification_ms"`
	SchedulerBuffer int `yaml:"scheduler_buffer"`
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

type FeedbackConfig struct {
	Sound   bool `yaml:"sound"`
	Desktop bool `yaml:"desktop"`
}

type LogConfig struct {
	Path  string `yaml:"path,omitempty"`
	Level string `yaml:"level,omitempty"`
}

func Default() Config {
	return Config{
		UI: UIConfig{
			Themes:    model.DefaultThemes(),
			Mouse:     true,
			AltScreen: true,
		},
		Timing: TimingConfig{
			CompleteDelayMS: 250,
			NotificationMS:  3000,
			SchedulerBuffer: 16,
			WatchDebounceMS: 200,
		},
		Feedback: FeedbackConfig{
			Sound: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c Config) CompleteDelay() time.Duration {
	return time.Duration(c.Timing.CompleteDelayMS) * time.Millisecond
}

func (c Config) NotificationTTL() time.Duration {
	return time.Duration(c.Timing.NotificationMS) * time.Millisecond
}

func (c Config) WatchDebounce() time.Duration {
	return time.Duration(c.Timing.WatchDebounceMS) * time.Millisecond
}

// Dir returns ~/.config/kapaka, creating it when missing.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func DefaultDBPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kapaka.db"), nil
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg.normalized(), nil
}

func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// normalized drops invalid theme entries and restores non-positive timings.
func (c Config) normalized() Config {
	def := Default()
	themes := make([]model.ThemeOption, 0, len(c.UI.Themes))
	for _, th := range c.UI.Themes {
		if _, err := model.ParseHue(th.Hue); err != nil {
			continue
		}
		if th.Name == "" {
			th.Name = th.Hue
		}
		themes = append(themes, th)
	}
	if len(themes) == 0 {
		themes = def.UI.Themes
	}
	c.UI.Themes = themes
	if c.Timing.CompleteDelayMS <= 0 {
		c.Timing.CompleteDelayMS = def.Timing.CompleteDelayMS
	}
	if c.Timing.NotificationMS <= 0 {
		c.Timing.NotificationMS = def.Timing.NotificationMS
	}
	if c.Timing.SchedulerBuffer <= 0 {
		c.Timing.SchedulerBuffer = def.Timing.SchedulerBuffer
	}
	if c.Timing.WatchDebounceMS <= 0 {
		c.Timing.WatchDebounceMS = def.Timing.WatchDebounceMS
	}
	return c
}
