package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/kapaka/internal/config"
	"github.com/sandeepkv93/kapaka/internal/scheduler"
)

// schedule arranges for ev to come back as a TimerFiredMsg after d. With an
// engine the event is queued there and surfaces through waitForTimerCmd;
// otherwise a tea.Tick carries it.
func (m *Model) schedule(ev scheduler.Event, d time.Duration) tea.Cmd {
	if m.timers != nil {
		err := m.timers.After(d, ev)
		if err == nil {
			return nil
		}
		m.logger.Warn("schedule on engine failed; using tick", "kind", ev.Kind, "err", err)
	}
	return tea.Tick(d, func(at time.Time) tea.Msg {
		ev.FireAt = at
		return TimerFiredMsg{Event: ev}
	})
}

func waitForTimerCmd(ch <-chan scheduler.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return TimerFiredMsg{Event: ev, fromEngine: true}
	}
}

func waitForConfigCmd(ch <-chan config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

func (m Model) timerChannel() <-chan scheduler.Event {
	if m.timers == nil {
		return nil
	}
	return m.timers.C()
}

func (m Model) onTimerFired(msg TimerFiredMsg) (Model, tea.Cmd) {
	m.logger.Debug("timer fired", "kind", msg.Event.Kind, "node", msg.Event.NodeID)
	switch msg.Event.Kind {
	case scheduler.KindRemoveCompleted:
		m.removeCompletedNode(msg.Event.NodeID)
	case scheduler.KindHideNotification:
		m.hideNotification()
	default:
		m.logger.Debug("unknown timer kind", "kind", msg.Event.Kind)
	}
	if msg.fromEngine {
		return m, waitForTimerCmd(m.timerChannel())
	}
	return m, nil
}
