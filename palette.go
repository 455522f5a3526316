package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// paletteButton is a single gate choice in the palette.
type paletteButton struct {
	label  string
	gate   string
	hotkey string
}

func (b paletteButton) binding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.hotkey),
		key.WithHelp(b.hotkey, b.label),
	)
}

// paletteButtons is the fixed set of gates the palette offers, in display order.
var paletteButtons = []paletteButton{
	{label: "X Gate", gate: "X", hotkey: "x"},
	{label: "H Gate", gate: "H", hotkey: "h"},
}

// GatePalette renders the gate buttons and reports presses through onSelect.
// It only tracks which button has the cursor; position bookkeeping is the caller's job.
type GatePalette struct {
	cursor   int
	keys     keyMap
	onSelect func(gate string) tea.Cmd
}

// NewGatePalette creates a palette that calls onSelect once per button press.
func NewGatePalette(keys keyMap, onSelect func(gate string) tea.Cmd) GatePalette {
	return GatePalette{keys: keys, onSelect: onSelect}
}

// Update handles palette navigation and presses.
func (p GatePalette) Update(msg tea.Msg) (GatePalette, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	for i, b := range paletteButtons {
		if key.Matches(keyMsg, b.binding()) {
			p.cursor = i
			return p, p.press(b.gate)
		}
	}

	switch {
	case key.Matches(keyMsg, p.keys.Left):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, p.keys.Right):
		if p.cursor < len(paletteButtons)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, p.keys.Press):
		return p, p.press(paletteButtons[p.cursor].gate)
	}
	return p, nil
}

func (p GatePalette) press(gate string) tea.Cmd {
	if p.onSelect == nil {
		return nil
	}
	return p.onSelect(gate)
}

// selected returns the gate under the cursor.
func (p GatePalette) selected() string {
	return paletteButtons[p.cursor].gate
}

// View renders the buttons side by side.
func (p GatePalette) View() string {
	buttons := make([]string, 0, len(paletteButtons))
	for i, b := range paletteButtons {
		style := buttonStyle
		if i == p.cursor {
			style = buttonFocusedStyle
		}
		buttons = append(buttons, style.Render(b.label+" "+dimStyle.Render("("+b.hotkey+")")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
