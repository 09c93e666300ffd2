package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/kapaka/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return loadedMsg{} },
		waitForTimerCmd(m.timerChannel()),
		waitForConfigCmd(m.cfgUpdate),
		textinput.Blink,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case loadedMsg:
		m.Loaded = true
		return m, nil
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.taskInput.Width = m.panelWidth() - 10
		m.modalView.Width = m.panelWidth() - 4
		if h := typed.Height - 8; h > 4 {
			m.modalView.Height = h
		}
		if m.ModalOpen {
			m.refreshModal()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.MouseMsg:
		if !m.mouseEnabled {
			return m, nil
		}
		return m.handleMouse(typed)
	case TimerFiredMsg:
		return m.onTimerFired(typed)
	case ConfigReloadedMsg:
		mouseWas := m.mouseEnabled
		m.applyConfig(typed.Config)
		m.Status = StatusBar{Text: "config reloaded"}
		m.logger.Info("config reloaded")
		cmds := []tea.Cmd{waitForConfigCmd(m.cfgUpdate)}
		if m.mouseEnabled != mouseWas {
			if m.mouseEnabled {
				cmds = append(cmds, tea.EnableMouseCellMotion)
			} else {
				cmds = append(cmds, tea.DisableMouse)
			}
		}
		return m, tea.Batch(cmds...)
	case AddTaskMsg:
		return m, m.addTask(typed.Text)
	case chimeFailedMsg:
		m.logger.Debug("chime failed", "err", typed.err)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", "err", typed.Err)
		}
		return m, nil
	}
	if m.InputFocused && !m.Palette.Active {
		var cmd tea.Cmd
		m.taskInput, cmd = m.taskInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQ) {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.ModalOpen {
		return m.handleModalKey(msg)
	}
	if m.InputFocused {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleModalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Info):
		m.toggleModal()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.modalView.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.modalView.LineUp(1)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		return m, m.addTask(m.taskInput.Value())
	case key.Matches(msg, m.keys.Leave):
		m.InputFocused = false
		m.taskInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.MenuOpen {
		if i, ok := themeButtonKey(msg.String()); ok {
			_ = m.changeTheme(i)
			return m, nil
		}
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		if m.MenuOpen {
			m.toggleMenu()
		}
	case key.Matches(msg, m.keys.Input):
		m.InputFocused = true
		return m, m.taskInput.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.Cursor < len(m.Tasks)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.keys.Complete):
		return m, m.removeTask(m.Cursor, RemoveComplete)
	case key.Matches(msg, m.keys.Trash):
		return m, m.removeTask(m.Cursor, RemoveTrash)
	case key.Matches(msg, m.keys.Yank):
		return m, m.yankSelected()
	case key.Matches(msg, m.keys.Menu):
		m.toggleMenu()
	case key.Matches(msg, m.keys.Info):
		m.toggleModal()
	case key.Matches(msg, m.keys.Palette):
		return m.openPalette(), nil
	}
	return m, nil
}

func (m *Model) yankSelected() tea.Cmd {
	if m.Cursor < 0 || m.Cursor >= len(m.Tasks) {
		return nil
	}
	text := m.Tasks[m.Cursor].Text
	if err := m.copyText(text); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		return m.showNotification("copy failed: " + err.Error())
	}
	return m.showNotification("copied: " + text)
}

func (m Model) panelWidth() int {
	w := m.width - 4
	if w > maxPanelWidth {
		w = maxPanelWidth
	}
	if w < 24 {
		w = defaultPanelWidth
	}
	return w
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	if !m.Loaded {
		return "loading…"
	}
	accent := m.accent()
	data := views.AppData{
		Header: views.RenderHeader(m.headerData()),
		Footer: m.footerView(),
		Accent: accent,
	}
	if m.MenuOpen {
		data.Menu = views.RenderMenu(m.menuData())
	}
	if m.ModalOpen {
		data.Body = views.RenderModal(views.ModalData{Content: m.modalView.View(), Width: m.panelWidth(), Accent: accent})
	} else {
		data.Body = views.RenderTaskPanel(m.taskPanelData())
	}
	if m.Notification.Visible {
		data.Notification = views.RenderNotification(m.Notification.Text, accent)
	}
	if palette := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()); palette != "" {
		data.StatusLine = palette
	} else if m.Status.Text != "" {
		data.StatusLine = m.Status.Text
		data.StatusError = m.Status.IsError
	}
	return views.RenderApp(data)
}

func (m Model) taskPanelData() views.TaskPanelData {
	rows := make([]views.TaskRowData, 0, len(m.Tasks))
	for i, t := range m.Tasks {
		rows = append(rows, views.TaskRowData{
			Text:     strings.TrimSpace(t.Text),
			Complete: t.Complete,
			Selected: i == m.Cursor,
		})
	}
	return views.TaskPanelData{
		InputView:   m.taskInput.View(),
		InputActive: m.InputFocused,
		Tasks:       rows,
		ShowWelcome: !m.WelcomeHidden,
		Width:       m.panelWidth(),
		Accent:      m.accent(),
	}
}
