package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Counter
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
	Randomize key.Binding

	// Clock
	ToggleClock key.Binding

	// Color picker
	SelectColor key.Binding
	PrevColor   key.Binding
	NextColor   key.Binding
	PickColor   key.Binding

	// Progress
	StartProgress key.Binding
	ResetProgress key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Increment: key.NewBinding(
			key.WithKeys("up", "+"),
			key.WithHelp("↑/+", "Counter +1"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down", "-"),
			key.WithHelp("↓/-", "Counter -1"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "Reset counter"),
		),
		Randomize: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Random counter"),
		),

		// Space is consumed here; nothing else sees it.
		ToggleClock: key.NewBinding(
			key.WithKeys(" ", "c"),
			key.WithHelp("space", "Start/pause clock"),
		),

		SelectColor: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Pick color"),
		),
		PrevColor: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Previous color"),
		),
		NextColor: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Next color"),
		),
		PickColor: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Pick focused color"),
		),

		StartProgress: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Start loading"),
		),
		ResetProgress: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Reset loading"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Reset, k.ToggleClock, k.SelectColor, k.StartProgress, k.Help, k.Quit}
}

// FullHelp returns key bindings grouped by widget.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.Reset, k.Randomize},
		{k.ToggleClock},
		{k.SelectColor, k.PrevColor, k.NextColor, k.PickColor},
		{k.StartProgress, k.ResetProgress},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// colorIndex maps a digit key to a zero-based swatch index.
func colorIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
