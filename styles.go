package main

import "github.com/charmbracelet/lipgloss"

// Circuit line geometry in drawing units. One terminal column covers unitsPerCol units.
const (
	lineStartX   = 50
	lineEndX     = 350
	glyphY       = 40
	glyphBaseX   = 50
	glyphSpacing = 100
	unitsPerCol  = 10
)

// Layout constants
const (
	wireLabelW = 5  // visual width of the qubit label left of the wire
	gateNameW  = 3  // width of gate name inside box
	probBarW   = 20 // width of a full probability bar
	qasmPanelW = 30
)

// Lipgloss styles used across the TUI.
var (
	circuitStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1)

	qasmStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bb9af7")).
			Padding(1)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#565f89")).
			Foreground(lipgloss.Color("#c0caf5")).
			Padding(0, 1)

	buttonFocusedStyle = buttonStyle.
				BorderForeground(lipgloss.Color("#ff9e64")).
				Foreground(lipgloss.Color("#ff9e64")).
				Bold(true)

	resetButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("#f7768e")).
				Foreground(lipgloss.Color("#f7768e"))

	activeGateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	qubitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	probBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73daca"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)
