// Package ui provides terminal output helpers using Charm libraries.
//
// This package holds the styling, message printing and table rendering used
// by every pj command.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	// Accent is the primary highlight color.
	Accent = lipgloss.Color("#14B8A6")

	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	Blue    = lipgloss.Color("#60A5FA")
	DimGray = lipgloss.Color("#9CA3AF")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// CodeStyle for inline commands
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F3F4F6")).
			Background(lipgloss.Color("#374151")).
			Padding(0, 1)
)

// Table styles.
var (
	// TableHeaderStyle for table headers
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Bold(true)

	// TableCellStyle for table cells
	TableCellStyle = lipgloss.NewStyle()
)

// Session status styles, keyed by status.StatusCategory.
var (
	StatusSuccessStyle = lipgloss.NewStyle().Foreground(Green)
	StatusInfoStyle    = lipgloss.NewStyle().Foreground(Blue)
	StatusWarningStyle = lipgloss.NewStyle().Foreground(Amber)
	StatusDimStyle     = lipgloss.NewStyle().Foreground(DimGray)
)
