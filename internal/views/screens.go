package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const headerGap = "  "

// Span is a half-open column range [Start, End) on a single line.
type Span struct {
	Start int
	End   int
}

func (s Span) Contains(x int) bool { return x >= s.Start && x < s.End }

type HeaderData struct {
	Title     string
	Date      string
	MenuOpen  bool
	ModalOpen bool
	Accent    lipgloss.Color
}

type HeaderSpans struct {
	Menu Span
	Info Span
}

func headerSegments(data HeaderData) []string {
	menu := "[≡ menu]"
	if data.MenuOpen {
		menu = "[× menu]"
	}
	info := "[? info]"
	if data.ModalOpen {
		info = "[× info]"
	}
	return []string{data.Title, data.Date, menu, info}
}

func RenderHeader(data HeaderData) string {
	segs := headerSegments(data)
	title := lipgloss.NewStyle().Bold(true).Foreground(data.Accent).Render(segs[0])
	date := mutedStyle.Render(segs[1])
	toggle := lipgloss.NewStyle().Foreground(data.Accent)
	return strings.Join([]string{title, date, toggle.Render(segs[2]), toggle.Render(segs[3])}, headerGap)
}

// LayoutHeader reports where the menu and info toggles sit on the header line.
func LayoutHeader(data HeaderData) HeaderSpans {
	segs := headerSegments(data)
	gap := lipgloss.Width(headerGap)
	x := 0
	spans := make([]Span, len(segs))
	for i, seg := range segs {
		w := lipgloss.Width(seg)
		spans[i] = Span{Start: x, End: x + w}
		x += w + gap
	}
	return HeaderSpans{Menu: spans[2], Info: spans[3]}
}

type ThemeButtonData struct {
	Name   string
	Hue    string
	Active bool
}

type MenuData struct {
	Buttons []ThemeButtonData
	Accent  lipgloss.Color
}

// MenuButtonRow is the row offset of button i from the top of the menu panel:
// one border line and one title line precede the buttons.
func MenuButtonRow(i int) int { return 2 + i }

func RenderMenu(data MenuData) string {
	var b strings.Builder
	b.WriteString("theme:")
	for i, btn := range data.Buttons {
		marker := "○"
		if btn.Active {
			marker = "●"
		}
		swatch := lipgloss.NewStyle().Foreground(AccentColor(btn.Hue)).Render("■■")
		b.WriteString(fmt.Sprintf("\n[%d] %s %s %s %s", i+1, marker, swatch, btn.Name, mutedStyle.Render("hue "+btn.Hue)))
	}
	return panelStyle.BorderForeground(data.Accent).Render(b.String())
}

type TaskRowData struct {
	Text     string
	Complete bool
	Selected bool
}

type TaskPanelData struct {
	InputView   string
	InputActive bool
	Tasks       []TaskRowData
	ShowWelcome bool
	Width       int
	Accent      lipgloss.Color
}

func RenderTaskPanel(data TaskPanelData) string {
	width := data.Width
	if width <= 0 {
		width = 56
	}
	accent := lipgloss.NewStyle().Foreground(data.Accent)
	done := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)

	var b strings.Builder
	b.WriteString(data.InputView)
	b.WriteString("\n")
	if data.ShowWelcome {
		b.WriteString("\n")
		b.WriteString(accent.Render("Welcome!"))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Your list is empty. Type a task above and press enter."))
		return panelStyle.Width(width).BorderForeground(data.Accent).Render(b.String())
	}
	textWidth := width - 12
	for _, row := range data.Tasks {
		cursor := " "
		if row.Selected && !data.InputActive {
			cursor = accent.Render(">")
		}
		check := "[ ]"
		text := Truncate(row.Text, textWidth)
		if row.Complete {
			check = accent.Render("[✓]")
			text = done.Render(text)
		}
		b.WriteString(fmt.Sprintf("\n%s %s %s", cursor, check, text))
	}
	return panelStyle.Width(width).BorderForeground(data.Accent).Render(b.String())
}

type ModalData struct {
	Content string
	Width   int
	Accent  lipgloss.Color
}

func RenderModal(data ModalData) string {
	width := data.Width
	if width <= 0 {
		width = 56
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(data.Accent).Render("about kapaka")
	hint := mutedStyle.Render("[esc/?] close  [j/k] scroll")
	return panelStyle.Width(width).BorderForeground(data.Accent).Render(title + "\n" + data.Content + "\n" + hint)
}

func RenderNotification(body string, accent lipgloss.Color) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return panelStyle.BorderForeground(accent).Render(body)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

// InfoMarkdown is the body of the info modal.
const InfoMarkdown = `## kapaka

A small task list that remembers your tasks and your theme.

- **enter** adds the typed task to the top of the list
- **space** completes the selected task; it disappears a moment later
- **d** removes the selected task immediately
- **m** opens the theme menu, **1-9** picks a theme
- **/** opens the command palette: ` + "`add`, `done N`, `rm N`, `theme HUE`, `menu`, `info`" + `
`
