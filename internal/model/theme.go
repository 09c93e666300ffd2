package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidHue = errors.New("model: invalid hue")

// ThemeOption is one selectable theme button.
type ThemeOption struct {
	Name string `yaml:"name"`
	Hue  string `yaml:"hue"`
}

func DefaultThemes() []ThemeOption {
	return []ThemeOption{
		{Name: "Ocean", Hue: "222"},
		{Name: "Mint", Hue: "160"},
		{Name: "Coral", Hue: "5"},
		{Name: "Violet", Hue: "270"},
		{Name: "Amber", Hue: "40"},
	}
}

// ParseHue validates a numeric hue string and normalizes it into [0, 360).
func ParseHue(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidHue)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHue, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHue, raw)
	}
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	if v >= 360 {
		v = 0
	}
	return v, nil
}
