package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the desk TUI.
type KeyMap struct {
	// Table navigation.
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// View switching.
	AllRooms key.Binding // Show every room.
	Filter   key.Binding // Enter available-rooms filter mode.

	// Operations on the selected room.
	Book     key.Binding
	Checkout key.Binding

	// Filter mode.
	CycleAC  key.Binding
	CycleBed key.Binding

	// Form navigation.
	NextField key.Binding
	PrevField key.Binding

	// Mode control.
	Submit  key.Binding
	Confirm key.Binding
	Cancel  key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first room"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last room"),
	),
	AllRooms: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all rooms"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "find available"),
	),
	Book: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "book"),
	),
	Checkout: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "check out"),
	),
	CycleAC: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "cycle AC"),
	),
	CycleBed: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "cycle bed type"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "yes"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
