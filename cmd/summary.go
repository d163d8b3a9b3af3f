// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/matt-FFFFFF/reach/internal/color"
	"github.com/matt-FFFFFF/reach/internal/each"
)

// writeSummary prints the totals and one line per file that did not succeed.
// When quiet is set and everything succeeded nothing is printed.
func writeSummary(w io.Writer, s *each.Summary, destination string, quiet bool) {
	if quiet && !s.HasFailures() {
		return
	}

	for _, o := range s.Outcomes {
		switch {
		case !o.Completed():
			fmt.Fprintf(w, "%s %s: %v\n", color.Colorize("failed ", color.FgRed, color.Bold), o.Source, o.Err) //nolint:errcheck
		case o.ExitCode != 0:
			line := fmt.Sprintf("%s %s", color.Colorize(fmt.Sprintf("exit %-3d", o.ExitCode), color.FgYellow), o.Source)
			if o.LastStderrLine != "" {
				line += ": " + o.LastStderrLine
			}

			fmt.Fprintln(w, line) //nolint:errcheck
		}
	}

	status := color.Colorize("✅", color.FgGreen)
	if s.HasFailures() {
		status = color.Colorize("❌", color.FgRed)
	}

	fmt.Fprintf(w, "%s %d files: %d succeeded, %d exited non-zero, %d failed. Results in %s\n", //nolint:errcheck
		status, s.Total, s.Succeeded, s.NonZeroExit, s.Failed, destination)
}
