package views

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/sandeepkv93/kapaka/internal/model"
)

const (
	accentSaturation = 0.65
	accentLightness  = 0.55
	defaultHue       = 222.0
)

// AccentColor turns a hue value into the accent color used across the UI.
// Unparsable hues fall back to the default accent.
func AccentColor(hue string) lipgloss.Color {
	h, err := model.ParseHue(hue)
	if err != nil {
		h = defaultHue
	}
	return lipgloss.Color(colorful.Hsl(h, accentSaturation, accentLightness).Clamped().Hex())
}
