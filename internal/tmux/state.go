package tmux

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
)

// paneFormat is the list-panes format parsed by parsePanes.
const paneFormat = "#{pane_id},#{session_name}"

// RunningPane is one pane reported by tmux.
type RunningPane struct {
	PaneID      string `json:"pane_id"`
	SessionName string `json:"session_name"`
}

// IsRunning reports whether a session named name exists.
//
// A missing tmux server is not an error: it means nothing is running.
//
// Parameters:
//   - ctx: Context for the tmux call
//   - name: The session name
//
// Returns:
//   - bool: True if "tmux ls" lists the session
//   - error: *CommandError for any other tmux failure, or ErrMultiplexerNotFound
func (c *Client) IsRunning(ctx context.Context, name string) (bool, error) {
	out, _, err := c.output(ctx, "ls")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && serverAbsent(cmdErr.Stderr) {
			log.Debug("tmux server not running", "stderr", cmdErr.Stderr)
			return false, nil
		}
		return false, err
	}
	return sessionListed(out, name), nil
}

// ListPanesForProject returns every pane belonging to session name, in listed order.
//
// Parameters:
//   - ctx: Context for the tmux call
//   - name: The session name to filter on
//
// Returns:
//   - []RunningPane: Matching panes
//   - error: *CommandError if tmux fails
func (c *Client) ListPanesForProject(ctx context.Context, name string) ([]RunningPane, error) {
	out, _, err := c.output(ctx, "list-panes", "-a", "-F", paneFormat)
	if err != nil {
		return nil, err
	}
	var matched []RunningPane
	for _, pane := range parsePanes(out) {
		if pane.SessionName == name {
			matched = append(matched, pane)
		}
	}
	return matched, nil
}

// sessionListed reports whether "tmux ls" output contains name's "<name>: " prefix.
func sessionListed(out, name string) bool {
	prefix := name + ": "
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// parsePanes parses list-panes output. Lines without a comma are skipped;
// the session name is everything after the first comma.
func parsePanes(out string) []RunningPane {
	var panes []RunningPane
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		id, session, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		panes = append(panes, RunningPane{PaneID: id, SessionName: session})
	}
	return panes
}

// serverAbsent classifies tmux stderr that means no server is listening.
func serverAbsent(stderr string) bool {
	msg := strings.ToLower(strings.TrimSpace(stderr))
	return strings.HasPrefix(msg, "no server running") ||
		strings.HasPrefix(msg, "error connecting to") ||
		strings.HasPrefix(msg, "no sessions")
}
