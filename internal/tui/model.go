// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/reach/internal/each"
)

const (
	barPadding   = 40
	minBarWidth  = 10
	maxBarWidth  = 60
	tickInterval = time.Second

	iconOK     = "✅"
	iconFailed = "❌"
)

type (
	totalMsg    int
	outcomeMsg  each.Outcome
	finishedMsg struct{}
	tickMsg     time.Time
)

// Model is the bubbletea model for the progress bar.
type Model struct {
	total    int
	done     int
	failed   int
	nonZero  int
	finished bool

	started time.Time
	now     func() time.Time

	bar    progress.Model
	styles *Styles
}

// NewModel creates a model with an empty bar.
func NewModel() *Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth

	return &Model{
		now:     time.Now,
		started: time.Now(),
		bar:     bar,
		styles:  NewStyles(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-barPadding, minBarWidth), maxBarWidth)
		return m, nil

	case totalMsg:
		m.total = int(msg)
		return m, nil

	case outcomeMsg:
		return m, m.recordOutcome(each.Outcome(msg))

	case finishedMsg:
		m.finished = true
		return m, tea.Quit

	case tickMsg:
		if m.finished {
			return m, nil
		}

		return m, tick()
	}

	return m, nil
}

// recordOutcome updates the counters and returns a command printing a line
// above the bar for anything other than a clean exit.
func (m *Model) recordOutcome(o each.Outcome) tea.Cmd {
	m.done++

	switch {
	case !o.Completed():
		m.failed++
		return tea.Printf("%s", m.styles.Failed.Render(fmt.Sprintf("Error: %s: %v", o.Source, o.Err)))

	case o.ExitCode != 0:
		m.nonZero++
		line := fmt.Sprintf("Exit %d: %s", o.ExitCode, o.Source)

		if o.LastStderrLine != "" {
			line += ": " + o.LastStderrLine
		}

		return tea.Printf("%s", m.styles.Warning.Render(line))
	}

	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	icon := iconOK
	if m.failed > 0 || m.nonZero > 0 {
		icon = iconFailed
	}

	elapsed := m.now().Sub(m.started)

	var b strings.Builder

	b.WriteString(icon)
	b.WriteString(" ")
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString(" ")
	b.WriteString(m.styles.Count.Render(fmt.Sprintf("%d/%d", m.done, m.total)))
	b.WriteString(" ")
	b.WriteString(m.styles.Faint.Render(fmt.Sprintf("(%s, %s)", formatElapsed(elapsed), formatRate(m.done, elapsed))))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) percent() float64 {
	if m.total <= 0 {
		if m.finished {
			return 1
		}

		return 0
	}

	return float64(m.done) / float64(m.total)
}

// formatElapsed renders d as HH:MM:SS.
func formatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60) //nolint:mnd
}

func formatRate(done int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "0.00/s"
	}

	return fmt.Sprintf("%.2f/s", float64(done)/elapsed.Seconds())
}
