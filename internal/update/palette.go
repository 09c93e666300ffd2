package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/kapaka/internal/commands"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.taskInput.Blur()
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	if m.InputFocused {
		m.taskInput.Focus()
	}
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	parsed, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(parsed, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			follow = m.addTask(a.Text)
			return commands.Result{Message: fmt.Sprintf("added: %s", a.Text)}, nil
		},
		Complete: func(a commands.TaskArgs) (commands.Result, error) {
			i, err := m.positionIndex(a.Position)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			follow = m.removeTask(i, RemoveComplete)
			return commands.Result{Message: fmt.Sprintf("completed: %s", m.Tasks[i].Text)}, nil
		},
		Remove: func(a commands.TaskArgs) (commands.Result, error) {
			i, err := m.positionIndex(a.Position)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			text := m.Tasks[i].Text
			follow = m.removeTask(i, RemoveTrash)
			return commands.Result{Message: fmt.Sprintf("removed: %s", text)}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			if a.Button > 0 {
				if err := m.changeTheme(a.Button - 1); err != nil {
					return commands.Result{}, err
				}
				return commands.Result{Message: fmt.Sprintf("theme: %s", m.Themes[a.Button-1].Name)}, nil
			}
			if err := m.applyCustomHue(a.Hue); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("theme hue %s", a.Hue)}, nil
		},
		Menu: func() (commands.Result, error) {
			m.toggleMenu()
			return commands.Result{Message: "menu toggled"}, nil
		},
		Info: func() (commands.Result, error) {
			m.toggleModal()
			return commands.Result{Message: "info toggled"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Debug("command failed", "input", raw, "err", err)
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	m.logger.Debug("command executed", "input", raw)
	return m, follow
}
