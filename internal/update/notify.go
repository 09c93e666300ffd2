package update

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/sandeepkv93/kapaka/internal/scheduler"
)

type Notification struct {
	Title string
	Body  string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

// BeeepDesktopNotifier raises a native desktop notification.
type BeeepDesktopNotifier struct {
	Icon string
}

func (b BeeepDesktopNotifier) Send(n Notification) error {
	return beeep.Notify(n.Title, n.Body, b.Icon)
}

// showNotification makes the banner visible with text and schedules it to hide
// after the configured lifetime. Each call schedules its own hide; a hide
// always clears the banner even if a newer message is showing.
func (m *Model) showNotification(text string) tea.Cmd {
	m.Notification = NotificationState{Text: text, Visible: true}
	cmds := []tea.Cmd{m.schedule(scheduler.Event{Kind: scheduler.KindHideNotification}, m.notificationTTL)}
	if m.desktopEnabled {
		cmds = append(cmds, sendDesktopCmd(m.notifier, Notification{Title: appTitle, Body: text, At: m.now()}, m.logger))
	}
	return tea.Batch(cmds...)
}

func (m *Model) hideNotification() {
	m.Notification.Visible = false
}

func sendDesktopCmd(n DesktopNotifier, note Notification, logger *slog.Logger) tea.Cmd {
	if n == nil || strings.TrimSpace(note.Body) == "" {
		return nil
	}
	return func() tea.Msg {
		if err := n.Send(note); err != nil {
			logger.Warn("desktop notification failed", "err", err)
		}
		return nil
	}
}
