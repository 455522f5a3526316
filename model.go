package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"qgatedeck/internal/backend"
)

// gateSelectedMsg is sent when a palette button is pressed.
type gateSelectedMsg struct {
	gate string
}

// gateAppliedMsg carries the outcome of one apply request together with the
// history and position captured when the request was sent.
type gateAppliedMsg struct {
	gate     string
	position int
	history  []GateRecord
	state    backend.StateVector
	err      error
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	client    backend.Applier
	logger    *log.Logger
	serialize bool

	state    backend.StateVector
	gates    []GateRecord
	position int
	inFlight int

	palette GatePalette
	line    CircuitLine
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger failed requests are reported to.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithSerialize drops gate presses while an earlier request is still in flight.
func WithSerialize(on bool) Option {
	return func(m *Model) { m.serialize = on }
}

// WithContext sets the context apply requests run under.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// NewModel builds the app around a gate service client.
func NewModel(client backend.Applier, opts ...Option) Model {
	keys := defaultKeyMap()
	m := Model{
		ctx:     context.Background(),
		client:  client,
		logger:  log.New(io.Discard),
		state:   backend.InitialState(),
		palette: NewGatePalette(keys, selectGate),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(activeGateStyle)),
		help:    help.New(),
		keys:    keys,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func selectGate(gate string) tea.Cmd {
	return func() tea.Msg { return gateSelectedMsg{gate: gate} }
}

// applyGate sends gate and the current state vector to the service.
// The command works on values captured now, so overlapping requests each
// build on the state they saw at click time and land in completion order.
func (m Model) applyGate(gate string, position int) tea.Cmd {
	ctx := m.ctx
	client := m.client
	state := m.state.Clone()
	history := slices.Clone(m.gates)
	return func() tea.Msg {
		newState, err := client.ApplyGate(ctx, gate, state)
		return gateAppliedMsg{
			gate:     gate,
			position: position,
			history:  history,
			state:    newState,
			err:      err,
		}
	}
}

// resetCircuit restores the ground state and clears the history.
func (m *Model) resetCircuit() {
	m.state = backend.InitialState()
	m.gates = nil
	m.position = 0
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case spinner.TickMsg:
		if m.inFlight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case gateSelectedMsg:
		if m.serialize && m.inFlight > 0 {
			m.logger.Debug("dropping gate while a request is in flight", "gate", msg.gate)
			return m, nil
		}
		m.inFlight++
		m.logger.Debug("applying gate", "gate", msg.gate, "position", m.position)
		cmd := m.applyGate(msg.gate, m.position)
		if m.inFlight == 1 {
			// spinner ticks stop on their own once nothing is pending
			cmd = tea.Batch(cmd, m.spinner.Tick)
		}
		return m, cmd

	case gateAppliedMsg:
		m.inFlight = max(m.inFlight-1, 0)
		if msg.err != nil {
			m.logger.Error("There was an error applying the gate!", "gate", msg.gate, "position", msg.position, "err", msg.err)
			return m, nil
		}
		m.state = msg.state
		m.gates = append(msg.history, GateRecord{Gate: msg.gate, Position: msg.position})
		m.position = msg.position + 1

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.resetCircuit()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render("Quantum Challenge")
	if m.inFlight > 0 {
		title += "  " + m.spinner.View() + dimStyle.Render(fmt.Sprintf(" %d pending", m.inFlight))
	}

	circuitW := max(m.width-qasmPanelW-4, 40)
	circuitPanel := m.renderCircuitPanel(circuitW)
	qasmPanel := qasmStyle.Width(qasmPanelW).Render(titleStyle.Render("QASM") + "\n\n" + historyQASM(m.gates))
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, qasmPanel)

	controls := lipgloss.JoinHorizontal(lipgloss.Top, m.palette.View(), resetButtonStyle.Render("Reset (r)"))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		topRow,
		controlsStyle.Render(controls),
		m.renderStatePanel(),
		controlsStyle.Render(m.help.View(m.keys)),
	)
}
