package update

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/kapaka/internal/model"
	"github.com/sandeepkv93/kapaka/internal/persist"
	"github.com/sandeepkv93/kapaka/internal/views"
)

// setThemeButtons replaces the button set, keeping the active mark on
// whichever new button carries the current hue.
func (m *Model) setThemeButtons(opts []model.ThemeOption) {
	if len(opts) == 0 {
		opts = model.DefaultThemes()
	}
	m.Themes = make([]ThemeButton, 0, len(opts))
	for _, o := range opts {
		m.Themes = append(m.Themes, ThemeButton{Name: o.Name, Hue: o.Hue})
	}
	m.markActive(m.ActiveHue)
}

// markActive flags the first button whose hue matches and clears the rest.
func (m *Model) markActive(hue string) {
	found := false
	for i := range m.Themes {
		m.Themes[i].Active = false
		if !found && hue != "" && sameHue(m.Themes[i].Hue, hue) {
			m.Themes[i].Active = true
			found = true
		}
	}
}

func sameHue(a, b string) bool {
	if a == b {
		return true
	}
	ha, errA := model.ParseHue(a)
	hb, errB := model.ParseHue(b)
	return errA == nil && errB == nil && ha == hb
}

func (m *Model) loadTheme() {
	hue, ok, err := persist.LoadTheme(m.ctx, m.store)
	if err != nil {
		m.logger.Warn("stored theme unreadable", "err", err)
		return
	}
	if !ok {
		return
	}
	if _, err := model.ParseHue(hue); err != nil {
		m.logger.Warn("stored theme hue invalid", "hue", hue)
		return
	}
	m.ActiveHue = hue
	m.markActive(hue)
}

// changeTheme activates button i and persists its hue.
func (m *Model) changeTheme(i int) error {
	if i < 0 || i >= len(m.Themes) {
		return fmt.Errorf("no theme button %d", i+1)
	}
	return m.applyHue(m.Themes[i].Hue, i)
}

// applyCustomHue sets a hue that may not belong to any button.
func (m *Model) applyCustomHue(hue string) error {
	if _, err := model.ParseHue(hue); err != nil {
		return err
	}
	return m.applyHue(hue, -1)
}

func (m *Model) applyHue(hue string, button int) error {
	m.ActiveHue = hue
	for j := range m.Themes {
		m.Themes[j].Active = j == button
	}
	if err := persist.SaveTheme(m.ctx, m.store, hue); err != nil {
		m.logger.Error("save theme failed", "err", err)
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return err
	}
	m.logger.Info("theme changed", "hue", hue)
	return nil
}

func (m Model) accent() lipgloss.Color {
	return views.AccentColor(m.ActiveHue)
}

func themeButtonKey(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n - 1, true
}
