// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/reach/internal/each"
)

// Runner owns the bubbletea program for one run.
type Runner struct {
	program  *tea.Program
	reporter *Reporter
	done     chan error
}

// NewRunner creates a runner drawing to w. The program ends when ctx is done.
// It reads no input and installs no signal handlers.
func NewRunner(ctx context.Context, w io.Writer) *Runner {
	program := tea.NewProgram(NewModel(),
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	return &Runner{
		program:  program,
		reporter: NewReporter(program),
		done:     make(chan error, 1),
	}
}

// Start runs the program in the background.
func (r *Runner) Start() {
	go func() {
		_, err := r.program.Run()
		r.done <- err
	}()
}

// Reporter returns the reporter feeding this runner.
func (r *Runner) Reporter() each.Reporter {
	return r.reporter
}

// Finish draws the final state, stops the program and waits for it to exit.
// A program ended by its context is not an error.
func (r *Runner) Finish() error {
	r.program.Send(finishedMsg{})
	r.reporter.Close()

	err := <-r.done
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}

	return err //nolint:wrapcheck
}
