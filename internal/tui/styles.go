// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Styles used by the grid.
type Styles struct {
	Title         lipgloss.Style
	Header        lipgloss.Style
	FilteredTitle lipgloss.Style
	Input         lipgloss.Style
	FocusedInput  lipgloss.Style
	Operator      lipgloss.Style
	Affordance    lipgloss.Style
	EvenRow       lipgloss.Style
	OddRow        lipgloss.Style
	Status        lipgloss.Style
}

// DefaultStyles uses the purple accent of the query console.
func DefaultStyles() Styles {
	accent := lipgloss.Color("#623CE4")
	return Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header:        lipgloss.NewStyle(),
		FilteredTitle: lipgloss.NewStyle().Bold(true).Italic(true),
		Input:         lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#aaaaaa"}),
		FocusedInput:  lipgloss.NewStyle().Foreground(accent),
		Operator:      lipgloss.NewStyle().Faint(true),
		Affordance:    lipgloss.NewStyle().Foreground(lipgloss.Color("#d14")),
		EvenRow:       lipgloss.NewStyle(),
		OddRow:        lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0088a0", Dark: "#00c8f0"}),
		Status:        lipgloss.NewStyle().Faint(true),
	}
}

// cell fits text into exactly width cells on one line.
func cell(style lipgloss.Style, text string, width int) string {
	return style.Width(width).MaxWidth(width).MaxHeight(1).Render(text)
}
