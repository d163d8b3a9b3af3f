// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/reach/internal/each"
)

var _ each.Reporter = (*Reporter)(nil)

// Reporter implements each.Reporter and forwards progress to the TUI.
type Reporter struct {
	program *tea.Program
	closed  bool
	mutex   sync.RWMutex
}

// NewReporter creates a reporter sending to program. A nil program drops everything.
func NewReporter(program *tea.Program) *Reporter {
	return &Reporter{
		program: program,
	}
}

// SetNumTasks implements each.Reporter.
func (r *Reporter) SetNumTasks(n int) {
	r.send(totalMsg(n))
}

// TaskCompleted implements each.Reporter.
func (r *Reporter) TaskCompleted(o each.Outcome) {
	r.send(outcomeMsg(o))
}

func (r *Reporter) send(msg tea.Msg) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.closed || r.program == nil {
		return
	}

	r.program.Send(msg)
}

// Close stops forwarding. Later calls are dropped.
func (r *Reporter) Close() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.closed = true
}
