package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up              key.Binding
	Down            key.Binding
	Toggle          key.Binding
	Expand          key.Binding
	Delete          key.Binding
	FilterAll       key.Binding
	FilterPending   key.Binding
	FilterCompleted key.Binding
	NextFilter      key.Binding
	Add             key.Binding
	NextField       key.Binding
	Submit          key.Binding
	Back            key.Binding
	Action          key.Binding
	Help            key.Binding
	Quit            key.Binding
	ForceQuit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:              key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:            key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:          key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done/undo")),
		Expand:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Delete:          key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		FilterAll:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterPending:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "pending")),
		FilterCompleted: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		NextFilter:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next filter")),
		Add:             key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "new task")),
		NextField:       key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
		Submit:          key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add")),
		Back:            key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back/dismiss")),
		Action:          key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "notice action")),
		Help:            key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:            key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:       key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Expand, k.Delete, k.NextFilter, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Expand, k.Delete},
		{k.FilterAll, k.FilterPending, k.FilterCompleted, k.NextFilter},
		{k.Add, k.NextField, k.Submit, k.Back},
		{k.Action, k.Help, k.Quit},
	}
}
