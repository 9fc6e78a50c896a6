// Package tui provides an interactive tuner for the estimate constants.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/hg7643/reentrycool/internal/report"
	"github.com/hg7643/reentrycool/internal/thermo"
)

const historyCapacity = 120

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(28)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	reportStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).PaddingLeft(2)
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model lets the user nudge one constant at a time and watch the whole
// breakdown recompute, with a trace of the water mass as it changes.
type Model struct {
	params    thermo.Parameters
	initial   thermo.Parameters
	names     []string
	selected  int
	history   []float64
	breakdown thermo.Breakdown
	err       error
}

func NewModel(p thermo.Parameters) Model {
	m := Model{
		params:  p,
		initial: p,
		names:   thermo.ParamNames(),
		history: make([]float64, 0, historyCapacity),
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "j":
			m.selected = (m.selected + 1) % len(m.names)
		case "shift+tab", "up", "k":
			m.selected = (m.selected - 1 + len(m.names)) % len(m.names)
		case "right", "l", "+":
			m.adjust(1.05)
		case "left", "h", "-":
			m.adjust(0.95)
		case "r":
			m.params = m.initial
			m.history = m.history[:0]
			m.recompute()
		}
	}
	return m, nil
}

func (m *Model) adjust(factor float64) {
	name := m.names[m.selected]
	cur := m.params.GetParams()[name]
	if cur == 0 {
		cur = 1e-6
	}

	next := m.params
	if err := next.SetParam(name, cur*factor); err != nil {
		return
	}
	if err := next.Validate(); err != nil {
		// keep the last valid value rather than stepping out of bounds
		return
	}
	m.params = next
	m.recompute()
}

func (m *Model) recompute() {
	m.breakdown, m.err = thermo.Compute(m.params)
	if m.err != nil && !errors.Is(m.err, thermo.ErrNoWaterRequired) {
		return
	}
	m.history = append(m.history, m.breakdown.WaterMassTonnes)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("reentry water cooling — tune"))
	sb.WriteString("\n")

	values := m.params.GetParams()
	for i, name := range m.names {
		line := fmt.Sprintf("%s %s", labelStyle.Render(name), valueStyle.Render(fmt.Sprintf("%g", values[name])))
		if i == m.selected {
			line = activeParamStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.err != nil && !errors.Is(m.err, thermo.ErrNoWaterRequired) {
		sb.WriteString(warnStyle.Render(m.err.Error()))
	} else {
		sb.WriteString(reportStyle.Render(strings.TrimRight(report.Render(m.params, m.breakdown), "\n")))
	}
	sb.WriteString("\n")

	if len(m.history) >= 2 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("water mass (t) while tuning"),
		)
		sb.WriteString(graphStyle.Render(graph))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("tab/↑↓ select  ←→ adjust ±5%  r reset  q quit"))
	sb.WriteString("\n")

	return sb.String()
}

// Run starts the interactive tuner.
func Run(p thermo.Parameters) error {
	prog := tea.NewProgram(NewModel(p))
	_, err := prog.Run()
	return err
}
