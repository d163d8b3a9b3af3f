// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the styling for the TUI.
type Styles struct {
	Count   lipgloss.Style
	Faint   lipgloss.Style
	Failed  lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates the default styling for the TUI.
func NewStyles() *Styles {
	return &Styles{
		Count: lipgloss.NewStyle().
			Bold(true),
		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Failed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")),
	}
}
