// Package tui is the terminal front end of the calculator.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DipperMason/desk-calculator/internal/keypad"
)

const displayWidth = 34

// layout is the button grid, top to bottom.
var layout = [][]keypad.Key{
	{keypad.KeyClear, keypad.KeyClearEntry, keypad.KeyBackspace, keypad.KeyDivide},
	{keypad.Key7, keypad.Key8, keypad.Key9, keypad.KeyMultiply},
	{keypad.Key4, keypad.Key5, keypad.Key6, keypad.KeySubtract},
	{keypad.Key1, keypad.Key2, keypad.Key3, keypad.KeyAdd},
	{keypad.KeySign, keypad.Key0, keypad.KeyDecimal, keypad.KeyEquals},
	{keypad.KeySquareRoot, keypad.KeyCubeRoot, keypad.KeyPower, keypad.KeySin},
	{keypad.KeyCos, keypad.KeyTan, keypad.KeyPi, keypad.KeyAngle},
}

type buttonGroup int

const (
	groupNumber buttonGroup = iota
	groupOperator
	groupFunction
	groupDanger
	groupSpecial
)

func groupOf(k keypad.Key) buttonGroup {
	if _, ok := k.Digit(); ok || k == keypad.KeyDecimal {
		return groupNumber
	}
	switch k {
	case keypad.KeyAdd, keypad.KeySubtract, keypad.KeyMultiply, keypad.KeyDivide, keypad.KeyPower:
		return groupOperator
	case keypad.KeySquareRoot, keypad.KeyCubeRoot, keypad.KeySin, keypad.KeyCos, keypad.KeyTan, keypad.KeyPi:
		return groupFunction
	case keypad.KeyClear, keypad.KeyClearEntry, keypad.KeyBackspace:
		return groupDanger
	}
	return groupSpecial
}

var (
	buttonBase = lipgloss.NewStyle().Width(7).Align(lipgloss.Center).Foreground(lipgloss.Color("#000000")).MarginRight(1)

	// normal and pressed background per group
	buttonColors = map[buttonGroup][2]lipgloss.Color{
		groupNumber:   {"#d0d0d0", "#b0b0b0"},
		groupOperator: {"#ff9500", "#e68a00"},
		groupFunction: {"#5ac8fa", "#4db8e6"},
		groupDanger:   {"#ff3b30", "#e6352a"},
		groupSpecial:  {"#a1caf1", "#8db4d8"},
	}

	traceStyle   = lipgloss.NewStyle().Width(displayWidth).Align(lipgloss.Right).Foreground(lipgloss.Color("#808080"))
	displayStyle = lipgloss.NewStyle().Width(displayWidth).Align(lipgloss.Right).Bold(true).
			Border(lipgloss.NormalBorder()).Padding(0, 1)
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3b30")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// Model renders a keypad.Panel and feeds it key presses.
type Model struct {
	panel    *keypad.Panel
	last     keypad.Key
	quitting bool
}

func New(panel *keypad.Panel) Model {
	return Model{panel: panel}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}

	k, err := keypad.ParseKey(key.String())
	if err != nil {
		return m, nil
	}
	m.last = k
	m.panel.Press(k)
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(traceStyle.Render(m.panel.Trace()))
	b.WriteString("\n")
	b.WriteString(displayStyle.Render(m.panel.Display()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("angle: " + m.panel.AngleLabel()))
	b.WriteString("\n")
	if alert := m.panel.Alert(); alert != "" {
		b.WriteString(alertStyle.Render("! " + alert))
	}
	b.WriteString("\n")

	for _, row := range layout {
		buttons := make([]string, 0, len(row))
		for _, k := range row {
			buttons = append(buttons, m.renderButton(k))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("* / ^ operators · r √ · s c t trig · p π · n ± · a deg/rad · esc clear · q quit"))
	return b.String()
}

func (m Model) renderButton(k keypad.Key) string {
	colors := buttonColors[groupOf(k)]
	bg := colors[0]
	if k == m.last {
		bg = colors[1]
	}
	return buttonBase.Background(bg).Render(k.Label())
}
