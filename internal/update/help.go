package update

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Add      key.Binding
	Input    key.Binding
	Leave    key.Binding
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Trash    key.Binding
	Yank     key.Binding
	Menu     key.Binding
	Info     key.Binding
	Palette  key.Binding
	Close    key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		Input:    key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("a/tab", "type a task")),
		Leave:    key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "browse list")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete: key.NewBinding(key.WithKeys(" ", "c", "x"), key.WithHelp("space", "complete")),
		Trash:    key.NewBinding(key.WithKeys("d", "delete", "backspace"), key.WithHelp("d", "remove")),
		Yank:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy text")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "theme menu")),
		Info:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "info")),
		Palette:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// helpKeyMap adapts the bindings relevant to the current mode for help.Model.
type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) currentHelp() helpKeyMap {
	k := m.keys
	if m.InputFocused {
		return helpKeyMap{
			short: []key.Binding{k.Add, k.Leave, k.ForceQ},
			full:  [][]key.Binding{{k.Add, k.Leave, k.ForceQ}},
		}
	}
	list := []key.Binding{k.Up, k.Down, k.Complete, k.Trash, k.Yank}
	chrome := []key.Binding{k.Input, k.Menu, k.Info, k.Palette, k.Quit}
	return helpKeyMap{
		short: []key.Binding{k.Complete, k.Trash, k.Input, k.Menu, k.Info, k.Quit},
		full:  [][]key.Binding{list, chrome},
	}
}

func (m Model) footerView() string {
	return m.helpModel.ShortHelpView(m.currentHelp().ShortHelp())
}

func (m Model) fullHelpView() string {
	k := m.keys
	return m.helpModel.FullHelpView([][]key.Binding{
		{k.Add, k.Up, k.Down, k.Complete, k.Trash},
		{k.Yank, k.Menu, k.Info, k.Palette, k.Quit},
	})
}
