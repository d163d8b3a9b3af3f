// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"sync/atomic"

	"github.com/matt-FFFFFF/reach/internal/each"
)

var _ each.Reporter = (*Counter)(nil)

// Counts is a point-in-time copy of a Counter.
type Counts struct {
	Total       int
	Done        int
	Succeeded   int
	NonZeroExit int
	Failed      int
}

// Counter tallies outcomes without producing output.
type Counter struct {
	total       atomic.Int64
	done        atomic.Int64
	succeeded   atomic.Int64
	nonZeroExit atomic.Int64
	failed      atomic.Int64
}

// SetNumTasks implements each.Reporter.
func (c *Counter) SetNumTasks(n int) {
	c.total.Store(int64(n))
}

// TaskCompleted implements each.Reporter.
func (c *Counter) TaskCompleted(o each.Outcome) {
	c.record(o)
}

func (c *Counter) record(o each.Outcome) int {
	switch {
	case !o.Completed():
		c.failed.Add(1)
	case o.ExitCode != 0:
		c.nonZeroExit.Add(1)
	default:
		c.succeeded.Add(1)
	}

	return int(c.done.Add(1))
}

// Counts returns the current tallies.
func (c *Counter) Counts() Counts {
	return Counts{
		Total:       int(c.total.Load()),
		Done:        int(c.done.Load()),
		Succeeded:   int(c.succeeded.Load()),
		NonZeroExit: int(c.nonZeroExit.Load()),
		Failed:      int(c.failed.Load()),
	}
}
