package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv applies KAPAKA_* overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("KAPAKA_DB"); ok {
		cfg.Storage.Path = v
	}
	if v, ok := getEnvString("KAPAKA_LOG"); ok {
		cfg.Log.Path = v
	}
	if v, ok := getEnvString("KAPAKA_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := getEnvBool("KAPAKA_SOUND"); ok {
		cfg.Feedback.Sound = v
	}
	if v, ok := getEnvBool("KAPAKA_DESKTOP_NOTIFICATIONS"); ok {
		cfg.Feedback.Desktop = v
	}
	if v, ok := getEnvInt("KAPAKA_COMPLETE_DELAY_MS"); ok && v > 0 {
		cfg.Timing.CompleteDelayMS = v
	}
	if v, ok := getEnvInt("KAPAKA_NOTIFICATION_MS"); ok && v > 0 {
		cfg.Timing.NotificationMS = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
