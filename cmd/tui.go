// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/openrzr/nagactl/pkg/naga"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive configuration panel",
	Long: `Configure the device from an interactive terminal UI.

Arrow keys move between settings. Enter toggles an LED, cycles the scan
frequency, or opens a DPI input field. Staged changes are marked until
"commit" pushes them to the device in one frame sequence.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	dev, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	// The claim is held for the whole TUI session; every mutation and
	// commit happens under it.
	dev.Claim()
	defer dev.Release()

	p := tea.NewProgram(newConfigModel(dev), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}

// Row layout: one row per supported LED, then DPI X, DPI Y, rate, commit.
type configModel struct {
	dev      *naga.Device
	leds     []naga.LED
	cursor   int
	editing  bool
	dpiInput textinput.Model
	status   string
	quitting bool
}

func newConfigModel(dev *naga.Device) configModel {
	ti := textinput.New()
	ti.Placeholder = "DPI"
	ti.CharLimit = 4
	ti.Width = 6

	return configModel{
		dev:      dev,
		leds:     dev.LEDs(),
		dpiInput: ti,
	}
}

func (m configModel) rowCount() int {
	return len(m.leds) + 4 // LEDs + DPI X + DPI Y + rate + commit
}

func (m configModel) rowDPIX() int   { return len(m.leds) }
func (m configModel) rowDPIY() int   { return len(m.leds) + 1 }
func (m configModel) rowRate() int   { return len(m.leds) + 2 }
func (m configModel) rowCommit() int { return len(m.leds) + 3 }

func (m configModel) Init() tea.Cmd {
	return nil
}

func (m configModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}

	case "enter", " ":
		return m.activate()
	}
	return m, nil
}

func (m configModel) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.editing = false
		m.dpiInput.Blur()
		return m, nil

	case "enter":
		value, err := strconv.Atoi(m.dpiInput.Value())
		if err != nil {
			m.status = fmt.Sprintf("invalid DPI value %q", m.dpiInput.Value())
			return m, nil
		}
		axis := naga.AxisX
		if m.cursor == m.rowDPIY() {
			axis = naga.AxisY
		}
		if err := m.dev.SetResolution(axis, naga.Resolution(value)); err != nil {
			m.status = fmt.Sprintf("cannot set %s DPI: %v", axis, err)
			return m, nil
		}
		m.status = ""
		m.editing = false
		m.dpiInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.dpiInput, cmd = m.dpiInput.Update(key)
	return m, cmd
}

func (m configModel) activate() (tea.Model, tea.Cmd) {
	switch {
	case m.cursor < len(m.leds):
		led := m.leds[m.cursor]
		state := naga.LEDOn
		if m.dev.LEDs()[m.cursor].State == naga.LEDOn {
			state = naga.LEDOff
		}
		if err := m.dev.SetLED(led.ID, state); err != nil {
			m.status = fmt.Sprintf("cannot toggle %s: %v", led.Name, err)
		} else {
			m.status = ""
			m.leds = m.dev.LEDs()
		}

	case m.cursor == m.rowDPIX() || m.cursor == m.rowDPIY():
		axis := naga.AxisX
		if m.cursor == m.rowDPIY() {
			axis = naga.AxisY
		}
		m.dpiInput.SetValue(strconv.Itoa(int(m.dev.Resolution(axis))))
		m.dpiInput.Focus()
		m.editing = true

	case m.cursor == m.rowRate():
		next := map[naga.Frequency]naga.Frequency{
			naga.Freq125:  naga.Freq500,
			naga.Freq500:  naga.Freq1000,
			naga.Freq1000: naga.Freq125,
		}[m.dev.Frequency()]
		if next == 0 {
			next = naga.Freq1000
		}
		if err := m.dev.SetFrequency(next); err != nil {
			m.status = fmt.Sprintf("cannot set frequency: %v", err)
		} else {
			m.status = ""
		}

	case m.cursor == m.rowCommit():
		if err := m.dev.Commit(false); err != nil {
			m.status = fmt.Sprintf("commit failed: %v", err)
		} else {
			m.status = "committed"
		}
	}
	return m, nil
}

func (m configModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)
	dirtyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("nagactl - %s", m.dev.Model())))
	b.WriteString("\n\n")

	render := func(row int, label, value string) {
		line := fmt.Sprintf("  %-14s %s", label, value)
		if row == m.cursor {
			line = selectedStyle.Render("> " + line[2:])
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	for i, led := range m.dev.LEDs() {
		render(i, led.Name, led.State.String())
	}
	if m.editing && m.cursor == m.rowDPIX() {
		render(m.rowDPIX(), "DPI X", m.dpiInput.View())
	} else {
		render(m.rowDPIX(), "DPI X", fmt.Sprintf("%d", m.dev.Resolution(naga.AxisX)))
	}
	if m.editing && m.cursor == m.rowDPIY() {
		render(m.rowDPIY(), "DPI Y", m.dpiInput.View())
	} else {
		render(m.rowDPIY(), "DPI Y", fmt.Sprintf("%d", m.dev.Resolution(naga.AxisY)))
	}
	render(m.rowRate(), "Rate", m.dev.Frequency().String())

	commitLabel := "commit"
	if m.dev.Dirty() {
		commitLabel = dirtyStyle.Render("commit (pending changes)")
	}
	render(m.rowCommit(), commitLabel, "")

	b.WriteByte('\n')
	if m.status != "" {
		style := helpStyle
		if strings.Contains(m.status, "fail") || strings.Contains(m.status, "cannot") {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("↑/↓ move · enter select · q quit"))
	b.WriteByte('\n')
	return b.String()
}
