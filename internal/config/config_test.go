package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/kapaka/internal/model"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timing.CompleteDelayMS != 250 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
storage:
  path: /tmp/kapaka.db
ui:
  mouse: false
  themes:
    - name: Sea
      hue: "200"
    - name: Broken
      hue: "teal"
    - hue: "90"
timing:
  complete_delay_ms: 0
  notification_ms: 1000
feedback:
  sound: false
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Path != "/tmp/kapaka.db" || cfg.UI.Mouse || cfg.Feedback.Sound {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if len(cfg.UI.Themes) != 2 || cfg.UI.Themes[0].Name != "Sea" || cfg.UI.Themes[1].Name != "90" {
		t.Fatalf("unexpected themes: %+v", cfg.UI.Themes)
	}
	if cfg.Timing.CompleteDelayMS != 250 || cfg.Timing.NotificationMS != 1000 {
		t.Fatalf("unexpected timing: %+v", cfg.Timing)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [unclosed"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.UI.Themes = []model.ThemeOption{{Name: "Only", Hue: "300"}}
	cfg.Log.Path = "kapaka.log"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.UI.Themes) != 1 || got.UI.Themes[0].Hue != "300" || got.Log.Path != "kapaka.log" {
		t.Fatalf("unexpected roundtrip: %+v", got)
	}
}
