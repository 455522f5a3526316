package main

import (
	"fmt"
	"strings"
)

// GateRecord is a gate the service has applied, with the position it was clicked at.
type GateRecord struct {
	Gate     string
	Position int
}

// Glyph is a gate label placed along the circuit line, in drawing units.
type Glyph struct {
	Label string
	X     int
	Y     int
}

// glyphOffset returns the horizontal offset of the gate recorded at position.
func glyphOffset(position int) int {
	return glyphBaseX + position*glyphSpacing
}

// CircuitLine draws the qubit wire and one label per applied gate.
// It has no state of its own; the caller passes the gate history on every render.
type CircuitLine struct{}

// Glyphs returns one glyph per gate record, in history order.
// Offsets are not checked against the wire's length.
func (CircuitLine) Glyphs(gates []GateRecord) []Glyph {
	glyphs := make([]Glyph, 0, len(gates))
	for _, g := range gates {
		glyphs = append(glyphs, Glyph{Label: g.Gate, X: glyphOffset(g.Position), Y: glyphY})
	}
	return glyphs
}

// cell is one terminal column of a rendered row.
type cell struct {
	r      rune
	styled bool
}

// View renders the wire as three text rows (box top, wire, box bottom).
// Gates past the end of the wire widen the rows instead of being clipped.
func (l CircuitLine) View(gates []GateRecord) string {
	glyphs := l.Glyphs(gates)

	startCol := lineStartX / unitsPerCol
	endCol := lineEndX / unitsPerCol
	boxW := gateNameW + 2
	half := boxW / 2

	width := endCol
	for _, g := range glyphs {
		width = max(width, g.X/unitsPerCol+boxW-half)
	}

	top := blankRow(width)
	mid := blankRow(width)
	bot := blankRow(width)

	for c := startCol; c < endCol; c++ {
		mid[c] = cell{r: '─'}
	}

	for _, g := range glyphs {
		left := g.X/unitsPerCol - half
		name := []rune(padCenter(g.Label, gateNameW))
		put(top, left, []rune("┌"+strings.Repeat("─", gateNameW)+"┐"))
		put(mid, left, append(append([]rune{'┤'}, name...), '├'))
		put(bot, left, []rune("└"+strings.Repeat("─", gateNameW)+"┘"))
	}

	pad := strings.Repeat(" ", wireLabelW)
	label := qubitLabelStyle.Render(fmt.Sprintf("%-*s", wireLabelW, "q[0]"))
	return strings.Join([]string{
		pad + renderRow(top),
		label + renderRow(mid),
		pad + renderRow(bot),
	}, "\n")
}

func blankRow(width int) []cell {
	row := make([]cell, width)
	for i := range row {
		row[i] = cell{r: ' '}
	}
	return row
}

// put writes runes as a styled span starting at col, skipping anything left of the row.
func put(row []cell, col int, runes []rune) {
	for i, r := range runes {
		c := col + i
		if c < 0 || c >= len(row) {
			continue
		}
		row[c] = cell{r: r, styled: true}
	}
}

// renderRow joins a row's cells, styling runs of gate cells as one span.
func renderRow(row []cell) string {
	var sb strings.Builder
	var run strings.Builder
	styled := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if styled {
			sb.WriteString(gateStyle.Render(run.String()))
		} else {
			sb.WriteString(run.String())
		}
		run.Reset()
	}

	for _, c := range row {
		if c.styled != styled {
			flush()
			styled = c.styled
		}
		run.WriteRune(c.r)
	}
	flush()
	return strings.TrimRight(sb.String(), " ")
}

// historyQASM renders the gate history as an OpenQASM 2.0 program on a single qubit.
func historyQASM(gates []GateRecord) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	sb.WriteString("qreg q[1];\n")
	if len(gates) > 0 {
		sb.WriteString("\n")
	}
	for _, g := range gates {
		fmt.Fprintf(&sb, "%s q[0];\n", strings.ToLower(g.Gate))
	}
	return sb.String()
}
