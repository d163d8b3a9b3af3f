// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

import (
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Outcome is the terminal state of one task.
//
// Err == nil means the process ran and exited with ExitCode (Completed).
// Err != nil means no exit status could be determined (Failed) and ExitCode is -1.
type Outcome struct {
	// Source is the source file name relative to the source directory.
	Source string
	// ExitCode is the child's exit status, or -1.
	ExitCode int
	// Err is the infrastructure error that stopped the task.
	Err error
	// LastStderrLine is the last line the child wrote to standard error.
	LastStderrLine string
	// Duration is the wall time from task start to outcome.
	Duration time.Duration
}

// Completed reports whether the process ran to an exit status.
func (o Outcome) Completed() bool {
	return o.Err == nil
}

// Succeeded reports whether the process ran and exited zero.
func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.ExitCode == 0
}

func failed(source string, err error, started time.Time) Outcome {
	return Outcome{Source: source, ExitCode: -1, Err: err, Duration: time.Since(started)}
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Total       int
	Succeeded   int
	NonZeroExit int
	Failed      int
	// Outcomes are sorted by Source.
	Outcomes []Outcome
}

func newSummary(outcomes []Outcome) *Summary {
	sorted := make([]Outcome, len(outcomes))
	copy(sorted, outcomes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Source < sorted[j].Source })

	s := &Summary{Total: len(sorted), Outcomes: sorted}

	for _, o := range sorted {
		switch {
		case !o.Completed():
			s.Failed++
		case o.ExitCode != 0:
			s.NonZeroExit++
		default:
			s.Succeeded++
		}
	}

	return s
}

// HasFailures reports whether any task failed or exited non-zero.
func (s *Summary) HasFailures() bool {
	return s.Failed > 0 || s.NonZeroExit > 0
}

// Err returns every failed task's error, each prefixed with its source name,
// or nil when all tasks completed. Non-zero exits are not errors.
func (s *Summary) Err() error {
	var result *multierror.Error

	for _, o := range s.Outcomes {
		if o.Err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", o.Source, o.Err))
		}
	}

	return result.ErrorOrNil()
}
