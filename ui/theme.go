package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the desk TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Occupancy status.
	StatusAvailable lipgloss.Color
	StatusOccupied  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	ErrorText        lipgloss.Color
	NoticeText       lipgloss.Color
}

// DefaultTheme is a dark-background palette.
func DefaultTheme() Theme {
	return Theme{
		NormalText:         lipgloss.Color("252"),
		FaintText:          lipgloss.Color("243"),
		SelectedBackground: lipgloss.Color("237"),
		SelectedForeground: lipgloss.Color("255"),
		StatusAvailable:    lipgloss.Color("42"),
		StatusOccupied:     lipgloss.Color("214"),
		HeaderForeground:   lipgloss.Color("81"),
		BorderColor:        lipgloss.Color("240"),
		HelpText:           lipgloss.Color("243"),
		ErrorText:          lipgloss.Color("203"),
		NoticeText:         lipgloss.Color("150"),
	}
}
