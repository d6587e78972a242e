package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	FastUp    key.Binding
	FastDown  key.Binding
	FineUp    key.Binding
	FineDown  key.Binding
	HoldUp    key.Binding
	HoldDown  key.Binding
	Commit    key.Binding
	Focus     key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "step up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "step down")),
		FastUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "×10")),
		FastDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "×10")),
		FineUp:    key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "×0.1")),
		FineDown:  key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "×0.1")),
		HoldUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "hold up")),
		HoldDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "hold down")),
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus/blur")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements the help.KeyMap interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.HoldUp, k.Commit, k.Focus, k.Quit}
}

// FullHelp implements the help.KeyMap interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.FastUp, k.FastDown, k.FineUp, k.FineDown},
		{k.HoldUp, k.HoldDown, k.Commit, k.Focus, k.Quit},
	}
}
