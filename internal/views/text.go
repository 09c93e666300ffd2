package views

import "github.com/mattn/go-runewidth"

// Truncate shortens s to at most width terminal cells, counting wide runes
// correctly.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
