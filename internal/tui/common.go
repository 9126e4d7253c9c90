// Package tui provides the Bubble Tea project picker for pj.
//
// The picker launches when a human runs bare `pj` in an interactive terminal.
// It is never activated for scripts or piped output: --json, --quiet and a
// non-terminal stdout each prevent it.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/pj-cli/pj/internal/status"
)

// --- TTY gate ---

// ShouldRunTUI returns true if the picker should be launched.
// Returns false when stdout is not a terminal, or --json/--quiet flags are set.
//
// Parameters:
//   - jsonOutput: whether --json was passed
//   - quiet: whether --quiet was passed
//
// Returns:
//   - bool: true if the picker should run
func ShouldRunTUI(jsonOutput, quiet bool) bool {
	if jsonOutput || quiet {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// --- Colors (mirrors internal/ui/styles.go) ---

var (
	teal    = lipgloss.Color("#14B8A6")
	red     = lipgloss.Color("#EF4444")
	amber   = lipgloss.Color("#F59E0B")
	green   = lipgloss.Color("#22C55E")
	blue    = lipgloss.Color("#60A5FA")
	gray    = lipgloss.Color("#6B7280")
	dimGray = lipgloss.Color("#9CA3AF")
	white   = lipgloss.Color("#E5E7EB")
)

// --- Shared TUI styles ---

var (
	// titleStyle renders the header.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(teal)

	// selectedStyle highlights the currently selected list item.
	selectedStyle = lipgloss.NewStyle().
			Foreground(teal).
			Bold(true)

	// normalStyle renders unselected list items.
	normalStyle = lipgloss.NewStyle().
			Foreground(white)

	// dimStyle renders low-priority text.
	dimStyle = lipgloss.NewStyle().
			Foreground(dimGray)

	// errorStyle renders errors.
	errorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	// helpStyle renders the bottom key hint bar.
	helpStyle = lipgloss.NewStyle().
			Foreground(gray)

	// separatorStyle renders horizontal rules.
	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151"))

	// filterPromptStyle renders the filter prompt.
	filterPromptStyle = lipgloss.NewStyle().
				Foreground(teal).
				Bold(true)
)

// statusStyle returns the style for a session status.
func statusStyle(s status.SessionStatus) lipgloss.Style {
	switch status.StatusCategory(string(s)) {
	case "success":
		return lipgloss.NewStyle().Foreground(green)
	case "info":
		return lipgloss.NewStyle().Foreground(blue)
	case "warning":
		return lipgloss.NewStyle().Foreground(amber)
	default:
		return dimStyle
	}
}

// separator returns a horizontal line of the given width.
func separator(width int) string {
	if width <= 0 {
		width = 40
	}
	return separatorStyle.Render(strings.Repeat("─", width))
}

// newSpinner creates a consistently styled braille spinner.
func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(teal)
	return s
}
