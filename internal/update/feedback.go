package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

const (
	chimeFrequency = 523.25
	chimeDuration  = 300
)

// Chime plays the short confirmation sound for a completed task.
type Chime interface {
	Play() error
}

type NoopChime struct{}

func (NoopChime) Play() error { return nil }

// BeeepChime sounds a single C5 tone through the system speaker.
type BeeepChime struct{}

func (BeeepChime) Play() error {
	return beeep.Beep(chimeFrequency, chimeDuration)
}

type chimeFailedMsg struct {
	err error
}

func (m Model) playChimeCmd() tea.Cmd {
	if !m.soundEnabled || m.chime == nil {
		return nil
	}
	c := m.chime
	return func() tea.Msg {
		if err := c.Play(); err != nil {
			return chimeFailedMsg{err: err}
		}
		return nil
	}
}
