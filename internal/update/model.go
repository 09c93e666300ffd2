package update

import (
	"context"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/kapaka/internal/clock"
	"github.com/sandeepkv93/kapaka/internal/config"
	"github.com/sandeepkv93/kapaka/internal/logging"
	"github.com/sandeepkv93/kapaka/internal/scheduler"
	"github.com/sandeepkv93/kapaka/internal/storage"
)

const (
	appTitle          = "kapaka"
	defaultPanelWidth = 56
	maxPanelWidth     = 72
)

type StatusBar struct {
	Text    string
	IsError bool
}

// TaskItem is a rendered task. NodeID identifies the rendered row for the
// lifetime of the process only; persisted identity is positional.
type TaskItem struct {
	NodeID   int
	Text     string
	Complete bool
}

type ThemeButton struct {
	Name   string
	Hue    string
	Active bool
}

type NotificationState struct {
	Text    string
	Visible bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// RemoveControl names which control of a task row was activated.
type RemoveControl int

const (
	// RemoveComplete marks the task complete and removes it after a delay.
	RemoveComplete RemoveControl = iota
	// RemoveTrash removes the task immediately.
	RemoveTrash
)

// Runtime carries the collaborators a Model talks to. Nil fields fall back to
// in-process defaults so a Model is usable without any of them.
type Runtime struct {
	Context       context.Context
	Store         storage.Store
	Timers        *scheduler.Engine
	ConfigUpdates <-chan config.Config
	Chime         Chime
	Notifier      DesktopNotifier
	Clipboard     func(string) error
	Logger        *slog.Logger
	Now           func() time.Time
}

type Model struct {
	Date          string
	Tasks         []TaskItem
	Cursor        int
	WelcomeHidden bool
	InputFocused  bool
	MenuOpen      bool
	ModalOpen     bool
	Loaded        bool
	Themes        []ThemeButton
	ActiveHue     string
	Notification  NotificationState
	Palette       CommandPaletteState
	Status        StatusBar
	LastError     error
	Quitting      bool

	keys      KeyMap
	ctx       context.Context
	store     storage.Store
	timers    *scheduler.Engine
	cfgUpdate <-chan config.Config
	chime     Chime
	notifier  DesktopNotifier
	copyText  func(string) error
	logger    *slog.Logger
	now       func() time.Time

	completeDelay   time.Duration
	notificationTTL time.Duration
	soundEnabled    bool
	desktopEnabled  bool
	mouseEnabled    bool

	nextNodeID   int
	width        int
	height       int
	taskInput    textinput.Model
	commandInput textinput.Model
	modalView    viewport.Model
	helpModel    help.Model
}

type loadedMsg struct{}

// TimerFiredMsg delivers a deferred action whose delay elapsed.
type TimerFiredMsg struct {
	Event      scheduler.Event
	fromEngine bool
}

type ConfigReloadedMsg struct {
	Config config.Config
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AddTaskMsg struct {
	Text string
}

// NewModel returns a model backed by an in-memory store and default config.
func NewModel() Model {
	return NewModelWithConfig(Runtime{}, config.Default())
}

// NewModelWithConfig bootstraps the model: it renders the date, loads the
// persisted tasks and theme, and prepares the input widgets.
func NewModelWithConfig(rt Runtime, cfg config.Config) Model {
	m := Model{
		InputFocused: true,
		keys:         DefaultKeyMap(),
		ctx:          rt.Context,
		store:        rt.Store,
		timers:       rt.Timers,
		cfgUpdate:    rt.ConfigUpdates,
		chime:        rt.Chime,
		notifier:     rt.Notifier,
		copyText:     rt.Clipboard,
		logger:       rt.Logger,
		now:          rt.Now,
		width:        defaultPanelWidth + 4,
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	if m.store == nil {
		m.logger.Warn("no persistent store configured; using memory")
		m.store = storage.NewMemoryStore()
	}
	if m.chime == nil {
		m.chime = NoopChime{}
	}
	if m.notifier == nil {
		m.notifier = NoopDesktopNotifier{}
	}
	if m.copyText == nil {
		m.copyText = clipboard.WriteAll
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.applyConfig(cfg)
	m.initBubbleComponents()
	m.updateDate()
	m.loadTasks()
	return m
}

func (m *Model) applyConfig(cfg config.Config) {
	m.completeDelay = cfg.CompleteDelay()
	m.notificationTTL = cfg.NotificationTTL()
	m.soundEnabled = cfg.Feedback.Sound
	m.desktopEnabled = cfg.Feedback.Desktop
	m.mouseEnabled = cfg.UI.Mouse
	m.setThemeButtons(cfg.UI.Themes)
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Prompt = "task> "
	m.taskInput.Placeholder = "what needs doing?"
	m.taskInput.CharLimit = 256
	m.taskInput.Width = defaultPanelWidth - 10
	m.taskInput.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.modalView = viewport.New(defaultPanelWidth, 14)
	m.helpModel = help.New()
}

func (m *Model) updateDate() {
	m.Date = clock.Format(m.now())
}
