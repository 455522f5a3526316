package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the app-level bindings. Gate hotkeys live on the palette buttons.
type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Press key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←", "prev gate"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→", "next gate"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("⏎", "apply"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	gates := make([]key.Binding, 0, len(paletteButtons))
	for _, b := range paletteButtons {
		gates = append(gates, b.binding())
	}
	return [][]key.Binding{
		gates,
		{k.Left, k.Right, k.Press},
		{k.Reset, k.Help, k.Quit},
	}
}
