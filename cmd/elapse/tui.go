package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/BYTE-6D65/elapse/pkg/clock"
	"github.com/BYTE-6D65/elapse/pkg/duration"
	"github.com/BYTE-6D65/elapse/pkg/journal"
	"github.com/BYTE-6D65/elapse/pkg/stopwatch"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		PaddingLeft(2)

	readoutStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(1, 4).
		MarginLeft(2).
		MarginTop(1).
		Bold(true)

	runningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#50FA7B")).
		PaddingLeft(2)

	stoppedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFB800")).
		PaddingLeft(2)

	idleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		PaddingLeft(2)

	lapStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00A9E0")).
		PaddingLeft(4)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		PaddingTop(1).
		PaddingLeft(2)
)

type tickMsg struct{}

// model holds the TUI state around one library stopwatch.
type model struct {
	clk       *clock.SystemClock
	watch     *stopwatch.Stopwatch
	laps      *journal.Journal
	startedAt clock.MonoTime
	width     int
	height    int
}

func initialModel() model {
	clk := clock.NewSystemClock()
	return model{
		clk:   clk,
		watch: stopwatch.New(stopwatch.WithClock(clk)),
		laps:  journal.New(50),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.watch.State() == stopwatch.StateRunning {
			return m, tick()
		}
	}

	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case " ":
		if m.watch.State() == stopwatch.StateRunning {
			m.recordLap("stop")
			_ = m.watch.Stop()
			return m, nil
		}
		if err := m.watch.Start(); err == nil {
			m.startedAt = m.clk.Now()
		}
		return m, tick()

	case "l":
		if m.watch.State() != stopwatch.StateRunning {
			return m, nil
		}
		// A lap restarts the measurement, discarding the running one
		m.recordLap("lap")
		_ = m.watch.Stop()
		if err := m.watch.Start(); err == nil {
			m.startedAt = m.clk.Now()
		}
		return m, tick()

	case "r":
		m.watch.Reset()
		m.startedAt = 0
		return m, nil
	}

	return m, nil
}

// recordLap journals the elapsed time since the last (re)start. Must be
// called while the watch is running.
func (m model) recordLap(name string) {
	m.laps.Observe(name, stopwatch.Capture{
		ID:      uuid.New().String(),
		Elapsed: duration.Between(m.startedAt, m.clk.Now()),
	})
}

func (m model) elapsed() duration.Duration {
	switch m.watch.State() {
	case stopwatch.StateRunning:
		return duration.Between(m.startedAt, m.clk.Now())
	case stopwatch.StateStopped:
		d, err := m.watch.Duration()
		if err != nil {
			return duration.FromNanoseconds(0)
		}
		return d
	default:
		return duration.FromNanoseconds(0)
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("⏱  Elapse Stopwatch"))
	b.WriteString("\n")
	b.WriteString(readoutStyle.Render(m.elapsed().String()))
	b.WriteString("\n")

	switch m.watch.State() {
	case stopwatch.StateRunning:
		b.WriteString(runningStyle.Render("● running"))
	case stopwatch.StateStopped:
		b.WriteString(stoppedStyle.Render("■ stopped"))
	default:
		b.WriteString(idleStyle.Render("○ idle"))
	}
	b.WriteString("\n")

	entries := m.laps.Entries()
	if len(entries) > 0 {
		b.WriteString(helpStyle.Render("Laps:"))
		b.WriteString("\n")
		// Show the most recent laps, oldest of them first
		first := 0
		if len(entries) > 5 {
			first = len(entries) - 5
		}
		for _, e := range entries[first:] {
			b.WriteString(lapStyle.Render(fmt.Sprintf("#%d  %s  (%s)", e.Ordinal, e.Elapsed, e.Name)))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("space: start/stop  •  l: lap  •  r: reset  •  q: quit"))
	b.WriteString("\n")

	return b.String()
}

func startTUI() error {
	p := tea.NewProgram(initialModel())

	final, err := p.Run()
	if err != nil {
		return err
	}

	// Dump the journaled laps so a session leaves something usable behind
	m, ok := final.(model)
	if !ok || m.laps.Len() == 0 {
		return nil
	}
	fmt.Println("Recorded laps:")
	if err := m.laps.Dump(os.Stdout); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
