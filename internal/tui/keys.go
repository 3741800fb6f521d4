package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit      key.Binding
	Find      key.Binding
	Select    key.Binding
	Clear     key.Binding
	Tab       key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Confirm   key.Binding
	CancelKey key.Binding
}

var Keys = KeyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Find:      key.NewBinding(key.WithKeys("f", "ctrl+f"), key.WithHelp("f", "find in file")),
	Select:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select line")),
	Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
	Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "find")),
	CancelKey: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}
