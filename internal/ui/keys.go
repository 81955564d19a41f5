package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the normal-mode keyboard bindings, following the
// conventions of less.
type keyMap struct {
	// Global
	Quit            key.Binding
	Help            key.Binding
	Colon           key.Binding
	CycleTheme      key.Binding
	Repaint         key.Binding
	PrintName       key.Binding
	Follow          key.Binding
	ToggleWrap      key.Binding
	ToggleHighlight key.Binding

	// Vertical motion
	Down         key.Binding
	Up           key.Binding
	PageDown     key.Binding
	PageUp       key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	Top          key.Binding
	Bottom       key.Binding

	// Horizontal motion
	Left  key.Binding
	Right key.Binding

	// Marks
	SetMark  key.Binding
	GotoMark key.Binding

	// Search
	Search    key.Binding
	NextMatch key.Binding
	PrevMatch key.Binding
}

// defaultKeyMap returns the default bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "Help"),
		),
		Colon: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "Command mode"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Repaint: key.NewBinding(
			key.WithKeys("ctrl+l", "r", "R"),
			key.WithHelp("r", "Repaint screen"),
		),
		PrintName: key.NewBinding(
			key.WithKeys("=", "ctrl+g"),
			key.WithHelp("=", "Show file name"),
		),
		Follow: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Follow (like tail -f)"),
		),
		ToggleWrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Toggle line wrapping"),
		),
		ToggleHighlight: key.NewBinding(
			key.WithKeys("alt+u"),
			key.WithHelp("alt+u", "Toggle search highlight"),
		),

		Down: key.NewBinding(
			key.WithKeys("j", "e", "ctrl+e", "down", "enter"),
			key.WithHelp("j/e", "Line down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "y", "ctrl+y", "up"),
			key.WithHelp("k/y", "Line up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("f", "ctrl+f", "ctrl+v", " ", "pgdown"),
			key.WithHelp("f/Space", "Page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("b", "ctrl+b", "pgup"),
			key.WithHelp("b", "Page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("d", "ctrl+d"),
			key.WithHelp("d", "Half page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("u", "ctrl+u"),
			key.WithHelp("u", "Half page up"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "<", "home"),
			key.WithHelp("g/<", "Go to start"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", ">", "end"),
			key.WithHelp("G/>", "Go to end"),
		),

		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Scroll right"),
		),

		SetMark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Set mark"),
		),
		GotoMark: key.NewBinding(
			key.WithKeys("'"),
			key.WithHelp("'", "Go to mark"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "Previous match"),
		),
	}
}
