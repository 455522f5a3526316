package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuitPanel renders the circuit line with a position footer.
func (m Model) renderCircuitPanel(width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Circuit"))
	sb.WriteString("\n\n")
	sb.WriteString(m.line.View(m.gates))
	fmt.Fprintf(&sb, "\n\n  Next position: %d  │  Gates: %d", m.position, len(m.gates))
	return circuitStyle.Width(width).Render(sb.String())
}

// renderStatePanel renders the state vector as JSON and as per-basis amplitudes.
func (m Model) renderStatePanel() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Final State:"))
	sb.WriteString("\n")
	raw := stateJSON(m.state)
	amps := renderAmplitudes(m.state)
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, raw, "    ", amps))
	return stateStyle.Render(sb.String())
}
