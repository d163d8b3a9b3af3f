// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/matt-FFFFFF/reach/internal/ctxlog"
	"github.com/matt-FFFFFF/reach/internal/each"
)

var _ each.Reporter = (*LogReporter)(nil)

// LogReporter writes one log record per finished task using the context logger.
// Successes are logged at info, non-zero exits at warn and failures at error.
type LogReporter struct {
	logger  *slog.Logger
	counter Counter
}

// NewLogReporter returns a LogReporter using the logger carried by ctx.
func NewLogReporter(ctx context.Context) *LogReporter {
	return &LogReporter{
		logger: ctxlog.Logger(ctx).With("component", "progress"),
	}
}

// SetNumTasks implements each.Reporter.
func (r *LogReporter) SetNumTasks(n int) {
	r.counter.SetNumTasks(n)
	r.logger.Info("processing files", "tasks", n)
}

// TaskCompleted implements each.Reporter.
func (r *LogReporter) TaskCompleted(o each.Outcome) {
	done := r.counter.record(o)
	pos := fmt.Sprintf("[%d/%d]", done, r.counter.total.Load())

	switch {
	case !o.Completed():
		r.logger.Error(pos+" task failed", "source", o.Source, "error", o.Err.Error())
	case o.ExitCode != 0:
		args := []any{"source", o.Source, "exitCode", o.ExitCode}
		if o.LastStderrLine != "" {
			args = append(args, "stderr", o.LastStderrLine)
		}

		r.logger.Warn(pos+" task exited non-zero", args...)
	default:
		r.logger.Info(pos+" task completed", "source", o.Source, "duration", o.Duration.String())
	}
}

// Counts returns the tallies seen so far.
func (r *LogReporter) Counts() Counts {
	return r.counter.Counts()
}
