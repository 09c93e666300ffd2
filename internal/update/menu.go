package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/kapaka/internal/views"
)

// Rect is a screen region in cells; X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const (
	headerRow = 0
	// Task rows start below the panel border and the input line.
	taskRowOffset = 2
	checkboxStart = 4
	checkboxEnd   = 7
)

func (m *Model) toggleMenu() {
	m.MenuOpen = !m.MenuOpen
}

// toggleModal flips the info modal; opening it closes the menu.
func (m *Model) toggleModal() {
	m.ModalOpen = !m.ModalOpen
	if m.ModalOpen {
		m.MenuOpen = false
		m.refreshModal()
		m.modalView.GotoTop()
	}
}

func (m *Model) refreshModal() {
	m.modalView.SetContent(views.RenderMarkdown(views.InfoMarkdown, m.panelWidth()-6) + "\n\n" + m.fullHelpView())
}

func (m Model) headerData() views.HeaderData {
	return views.HeaderData{
		Title:     appTitle,
		Date:      m.Date,
		MenuOpen:  m.MenuOpen,
		ModalOpen: m.ModalOpen,
		Accent:    m.accent(),
	}
}

func (m Model) menuData() views.MenuData {
	buttons := make([]views.ThemeButtonData, 0, len(m.Themes))
	for _, t := range m.Themes {
		buttons = append(buttons, views.ThemeButtonData{Name: t.Name, Hue: t.Hue, Active: t.Active})
	}
	return views.MenuData{Buttons: buttons, Accent: m.accent()}
}

// menuRect is where the open menu panel sits, directly under the header.
func (m Model) menuRect() Rect {
	if !m.MenuOpen {
		return Rect{}
	}
	rendered := views.RenderMenu(m.menuData())
	return Rect{X: 0, Y: headerRow + 1, W: lipgloss.Width(rendered), H: lipgloss.Height(rendered)}
}

func (m Model) bodyTop() int {
	return headerRow + 1 + m.menuRect().H
}

// handleMouse implements the click targets: the header toggles, the theme
// buttons, the task checkboxes, and closing the menu on any click outside
// the dropdown.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	spans := views.LayoutHeader(m.headerData())
	menuToggle := msg.Y == headerRow && spans.Menu.Contains(msg.X)
	if m.MenuOpen && !menuToggle && !m.menuRect().Contains(msg.X, msg.Y) {
		m.MenuOpen = false
		m.logger.Debug("menu closed by outside click", "x", msg.X, "y", msg.Y)
	}

	switch {
	case menuToggle:
		m.toggleMenu()
		return m, nil
	case msg.Y == headerRow && spans.Info.Contains(msg.X):
		m.toggleModal()
		return m, nil
	}

	if rect := m.menuRect(); rect.Contains(msg.X, msg.Y) {
		for i := range m.Themes {
			if msg.Y == rect.Y+views.MenuButtonRow(i) {
				_ = m.changeTheme(i)
				return m, nil
			}
		}
		return m, nil
	}

	if m.ModalOpen || !m.WelcomeHidden {
		return m, nil
	}
	row := msg.Y - m.bodyTop() - taskRowOffset
	if row < 0 || row >= len(m.Tasks) {
		return m, nil
	}
	m.Cursor = row
	if msg.X >= checkboxStart && msg.X < checkboxEnd {
		return m, m.removeTask(row, RemoveComplete)
	}
	return m, nil
}
