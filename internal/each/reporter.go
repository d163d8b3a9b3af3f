// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

// Reporter receives progress from a Scheduler.
// Methods are called from concurrently running tasks and must be safe for concurrent use.
type Reporter interface {
	// SetNumTasks is called once, before any task starts, with the number of regular files found.
	SetNumTasks(n int)
	// TaskCompleted is called exactly once per task, whatever its outcome.
	TaskCompleted(o Outcome)
}

type nopReporter struct{}

func (nopReporter) SetNumTasks(int)       {}
func (nopReporter) TaskCompleted(Outcome) {}

// NopReporter discards all progress.
var NopReporter Reporter = nopReporter{}
