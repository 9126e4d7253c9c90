// Package status provides the project session states shared by the CLI and picker.
//
// A session is never tracked between invocations. Its state is inferred from
// tmux on every run, so only Absent and Running are ever observed; Starting
// and Stopping describe the transitions pj drives itself.
package status

import "strings"

// SessionStatus represents the lifecycle state of a project's tmux session.
type SessionStatus string

const (
	// StatusAbsent indicates no tmux session exists for the project.
	StatusAbsent SessionStatus = "stopped"

	// StatusStarting indicates pj is materializing the session's windows.
	StatusStarting SessionStatus = "starting"

	// StatusRunning indicates a tmux session with the project's name exists.
	StatusRunning SessionStatus = "running"

	// StatusStopping indicates pj is interrupting panes and killing the session.
	StatusStopping SessionStatus = "stopping"

	// StatusUnknown indicates tmux could not be queried.
	StatusUnknown SessionStatus = "unknown"
)

// transitionStatuses are states that only exist while pj is acting on a session.
var transitionStatuses = map[string]bool{
	string(StatusStarting): true,
	string(StatusStopping): true,
}

// FromRunning maps a running-session probe to a status.
//
// Parameters:
//   - running: The result of the running-session check
//
// Returns:
//   - SessionStatus: StatusRunning or StatusAbsent
func FromRunning(running bool) SessionStatus {
	if running {
		return StatusRunning
	}
	return StatusAbsent
}

// IsTransition checks if a status string is a transitional state.
//
// Parameters:
//   - status: The status string to check (case-insensitive)
//
// Returns:
//   - bool: True for starting and stopping
func IsTransition(status string) bool {
	return transitionStatuses[strings.ToLower(status)]
}

// IsLive checks if a status string means a session exists in tmux.
//
// Parameters:
//   - status: The status string to check (case-insensitive)
//
// Returns:
//   - bool: True for running, starting and stopping
func IsLive(status string) bool {
	s := strings.ToLower(status)
	return s == string(StatusRunning) || transitionStatuses[s]
}

// StatusIcon returns the appropriate icon for a status.
//
// Icons:
//   - running: ● (filled bullet)
//   - starting/stopping: ▶ (play)
//   - stopped: ○ (hollow bullet)
//   - unknown: ? (question mark)
//
// Parameters:
//   - status: The status string
//
// Returns:
//   - string: The icon character for the status
func StatusIcon(status string) string {
	switch strings.ToLower(status) {
	case string(StatusRunning):
		return "●"
	case string(StatusStarting), string(StatusStopping):
		return "▶"
	case string(StatusAbsent):
		return "○"
	default:
		return "?"
	}
}

// StatusCategory returns the category of a status for styling purposes.
//
// Categories:
//   - "success": running
//   - "info": starting, stopping
//   - "dim": stopped
//   - "warning": unknown
//
// Parameters:
//   - status: The status string
//
// Returns:
//   - string: The category name for styling
func StatusCategory(status string) string {
	switch strings.ToLower(status) {
	case string(StatusRunning):
		return "success"
	case string(StatusStarting), string(StatusStopping):
		return "info"
	case string(StatusAbsent):
		return "dim"
	default:
		return "warning"
	}
}
