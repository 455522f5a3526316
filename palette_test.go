package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// recorder counts palette callbacks.
type recorder struct {
	gates []string
}

func (r *recorder) onSelect(gate string) tea.Cmd {
	r.gates = append(r.gates, gate)
	return nil
}

func TestPaletteHotkeyInvokesCallbackOnce(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"h", "H"},
		{"x", "X"},
	}

	for _, tt := range tests {
		rec := &recorder{}
		p := NewGatePalette(defaultKeyMap(), rec.onSelect)

		p, _ = p.Update(keyPress(tt.key))

		if len(rec.gates) != 1 {
			t.Fatalf("key %q: callback ran %d times, want 1", tt.key, len(rec.gates))
		}
		if rec.gates[0] != tt.want {
			t.Errorf("key %q: callback got %q, want %q", tt.key, rec.gates[0], tt.want)
		}
		if p.selected() != tt.want {
			t.Errorf("key %q: cursor on %q, want %q", tt.key, p.selected(), tt.want)
		}
	}
}

func TestPaletteEachClickCallsOnce(t *testing.T) {
	rec := &recorder{}
	p := NewGatePalette(defaultKeyMap(), rec.onSelect)

	for range 3 {
		p, _ = p.Update(keyPress("h"))
	}
	if len(rec.gates) != 3 {
		t.Fatalf("callback ran %d times for 3 clicks", len(rec.gates))
	}
	for _, g := range rec.gates {
		if g != "H" {
			t.Errorf("callback got %q, want H", g)
		}
	}
}

func TestPaletteCursorAndPress(t *testing.T) {
	rec := &recorder{}
	p := NewGatePalette(defaultKeyMap(), rec.onSelect)

	if p.selected() != "X" {
		t.Fatalf("initial selection = %q, want X", p.selected())
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if p.selected() != "X" {
		t.Errorf("left at first button moved cursor to %q", p.selected())
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRight})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRight})
	if p.selected() != "H" {
		t.Errorf("cursor = %q, want H", p.selected())
	}
	if len(rec.gates) != 0 {
		t.Fatalf("navigation should not press buttons, got %v", rec.gates)
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(rec.gates) != 1 || rec.gates[0] != "H" {
		t.Errorf("enter pressed %v, want [H]", rec.gates)
	}
}

func TestPaletteIgnoresOtherMessages(t *testing.T) {
	rec := &recorder{}
	p := NewGatePalette(defaultKeyMap(), rec.onSelect)

	p, cmd := p.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil || len(rec.gates) != 0 {
		t.Error("non-key message should not press anything")
	}
	p, _ = p.Update(keyPress("z"))
	if len(rec.gates) != 0 {
		t.Errorf("unbound key pressed %v", rec.gates)
	}
	_ = p
}

func TestPaletteNilCallback(t *testing.T) {
	p := NewGatePalette(defaultKeyMap(), nil)
	if _, cmd := p.Update(keyPress("x")); cmd != nil {
		t.Error("expected nil command without a callback")
	}
}

func TestPaletteView(t *testing.T) {
	view := NewGatePalette(defaultKeyMap(), nil).View()
	for _, want := range []string{"X Gate", "H Gate"} {
		if !strings.Contains(view, want) {
			t.Errorf("palette view missing %q:\n%s", want, view)
		}
	}
	if strings.Index(view, "X Gate") > strings.Index(view, "H Gate") {
		t.Error("X should render before H")
	}
}
