package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pj-cli/pj/internal/status"
)

var (
	outMu     sync.Mutex
	out       io.Writer = os.Stdout
	errOut    io.Writer = os.Stderr
	quietMode bool
)

// SetQuietMode suppresses non-essential output (info, success, dim, steps).
// Errors, warnings and data output are always printed.
func SetQuietMode(quiet bool) {
	outMu.Lock()
	defer outMu.Unlock()
	quietMode = quiet
}

// IsQuietMode reports whether quiet mode is enabled.
func IsQuietMode() bool {
	outMu.Lock()
	defer outMu.Unlock()
	return quietMode
}

// SetOutput redirects standard and error output. Used by tests.
//
// Parameters:
//   - stdout: Writer for regular output
//   - stderr: Writer for errors and warnings
//
// Returns:
//   - func(): Restores the previous writers
func SetOutput(stdout, stderr io.Writer) func() {
	outMu.Lock()
	defer outMu.Unlock()
	prevOut, prevErr := out, errOut
	out, errOut = stdout, stderr
	return func() {
		outMu.Lock()
		defer outMu.Unlock()
		out, errOut = prevOut, prevErr
	}
}

// Stdout returns the writer used for regular output.
func Stdout() io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	return out
}

func writeLine(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}

func chatty(s string) {
	if IsQuietMode() {
		return
	}
	writeLine(Stdout(), s)
}

// Println prints an empty line.
func Println() {
	chatty("")
}

// PrintSuccess prints a success message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintSuccess(format string, args ...interface{}) {
	chatty(SuccessStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error message to stderr.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintError(format string, args ...interface{}) {
	outMu.Lock()
	w := errOut
	outMu.Unlock()
	writeLine(w, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message to stderr.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintWarning(format string, args ...interface{}) {
	outMu.Lock()
	w := errOut
	outMu.Unlock()
	writeLine(w, WarningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// PrintInfo prints an informational message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintInfo(format string, args ...interface{}) {
	chatty(InfoStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintDim prints a dimmed message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintDim(format string, args ...interface{}) {
	chatty(DimStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintStep prints a numbered progress line such as "[2/3] api  ~/code/api".
//
// Parameters:
//   - index: 0-based step index
//   - total: Total number of steps
//   - label: Step label
//   - detail: Dimmed detail text, may be empty
func PrintStep(index, total int, label, detail string) {
	line := fmt.Sprintf("%s %s", DimStyle.Render(fmt.Sprintf("[%d/%d]", index+1, total)), label)
	if detail != "" {
		line += "  " + DimStyle.Render(detail)
	}
	chatty(line)
}

// PrintData prints a line of command output. Not affected by quiet mode.
func PrintData(s string) {
	writeLine(Stdout(), s)
}

// StyledStatus renders a session status with its icon and category color.
//
// Parameters:
//   - s: The status string
//
// Returns:
//   - string: Icon and status, styled
func StyledStatus(s string) string {
	text := status.StatusIcon(s) + " " + s
	switch status.StatusCategory(s) {
	case "success":
		return StatusSuccessStyle.Render(text)
	case "info":
		return StatusInfoStyle.Render(text)
	case "warning":
		return StatusWarningStyle.Render(text)
	default:
		return StatusDimStyle.Render(text)
	}
}
