// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import "github.com/matt-FFFFFF/reach/internal/each"

type multi []each.Reporter

// Multi returns a Reporter that forwards to every non-nil reporter in order.
func Multi(reporters ...each.Reporter) each.Reporter {
	m := make(multi, 0, len(reporters))

	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}

	return m
}

func (m multi) SetNumTasks(n int) {
	for _, r := range m {
		r.SetNumTasks(n)
	}
}

func (m multi) TaskCompleted(o each.Outcome) {
	for _, r := range m {
		r.TaskCompleted(o)
	}
}
