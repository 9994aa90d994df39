package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Add       key.Binding
	Focus     key.Binding
	Submit    key.Binding
	Blur      key.Binding
	All       key.Binding
	Active    key.Binding
	Completed key.Binding
	Cycle     key.Binding
	Clear     key.Binding
	Theme     key.Binding
	AnyTheme  key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " ", "x"),
		key.WithHelp("space/x", "toggle task"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete task"),
	),
	Add: key.NewBinding(
		key.WithKeys("a", "n"),
		key.WithHelp("a/n", "new task"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add task"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "go to list"),
	),
	All: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "all"),
	),
	Active: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "active"),
	),
	Completed: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "completed"),
	),
	Cycle: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "next filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear completed"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
	AnyTheme: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp implements help.KeyMap for the list.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Cycle, k.Clear, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the list.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Add},
		{k.Toggle, k.Delete, k.Clear},
		{k.All, k.Active, k.Completed, k.Cycle},
		{k.Theme, k.AnyTheme, k.Help, k.Quit},
	}
}

// inputKeys is the help.KeyMap shown while the add-task field has focus.
type inputKeys struct {
	keyMap
}

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Blur, k.Focus, k.AnyTheme, k.ForceQuit}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
