package tmux

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"

	"github.com/pj-cli/pj/internal/config"
)

// DefaultKillGrace is how long Kill waits after interrupting each pane.
const DefaultKillGrace = 500 * time.Millisecond

// WindowEvent reports a window that Start has finished materializing.
type WindowEvent struct {
	Index int
	Name  string
	Dir   string
	Total int
}

// Driver creates, attaches to and tears down project sessions.
type Driver struct {
	client *Client

	// Sleep waits between pane interrupts. Defaults to time.Sleep.
	Sleep func(time.Duration)

	// Grace is the wait after each pane interrupt. Defaults to DefaultKillGrace.
	Grace time.Duration

	// Progress, when set, is called after each window is materialized.
	Progress func(WindowEvent)
}

// NewDriver returns a Driver that issues commands through client.
//
// Parameters:
//   - client: The tmux client to use
//
// Returns:
//   - *Driver: A driver with the default grace period
func NewDriver(client *Client) *Driver {
	return &Driver{
		client: client,
		Sleep:  time.Sleep,
		Grace:  DefaultKillGrace,
	}
}

// Client returns the underlying tmux client.
func (d *Driver) Client() *Client {
	return d.client
}

// Start creates a detached session for project and materializes its windows.
//
// Windows are created strictly in order, each with a horizontal split. The
// left pane runs the window's command, the right pane is left at a prompt.
// Both panes cd to the window directory and source the start script first.
// The first failing tmux call aborts; windows already created are left in place.
//
// Parameters:
//   - ctx: Context for the tmux calls
//   - project: The resolved project; must not already be running
//
// Returns:
//   - error: *CommandError wrapping ErrMultiplexerUnavailable on failure
func (d *Driver) Start(ctx context.Context, project *config.Project) error {
	name := project.Name
	log.Debug("Starting session", "project", name, "windows", len(project.Windows))

	if err := d.client.do(ctx, "new-session", "-d", "-s", name, "-t", name); err != nil {
		return fmt.Errorf("create session %q: %w", name, err)
	}

	for i, w := range project.Windows {
		display := w.DisplayName(i)
		target := windowTarget(name, i)

		if i == 0 {
			if err := d.client.do(ctx, "rename-window", "-t", target, display); err != nil {
				return fmt.Errorf("rename window %s: %w", target, err)
			}
		} else {
			if err := d.client.do(ctx, "new-window", "-t", target, "-n", display); err != nil {
				return fmt.Errorf("create window %s: %w", target, err)
			}
		}

		if err := d.client.do(ctx, "split-window", "-h", "-t", target); err != nil {
			return fmt.Errorf("split window %s: %w", target, err)
		}

		dir := project.WindowDir(w)
		script := project.StartScript(w)
		command := w.Command
		if command == "" {
			command = "echo " + shellquote.Join(display)
		}

		if err := d.sendLine(ctx, target+".0", keystrokeLine(dir, script, command)); err != nil {
			return err
		}
		if err := d.sendLine(ctx, target+".1", keystrokeLine(dir, script, "")); err != nil {
			return err
		}

		if d.Progress != nil {
			d.Progress(WindowEvent{Index: i, Name: display, Dir: dir, Total: len(project.Windows)})
		}
	}
	return nil
}

// Attach connects the current terminal to project's session and blocks until
// the tmux client exits. Inside tmux it switches the current client instead.
//
// Parameters:
//   - ctx: Context for the tmux call
//   - project: The project whose session to attach
//
// Returns:
//   - error: *CommandError if tmux exits non-zero
func (d *Driver) Attach(ctx context.Context, project *config.Project) error {
	var args []string
	if insideTmux() {
		args = []string{"switch-client", "-t", project.Name}
	} else {
		args = []string{"-2", "attach-session", "-t", project.Name}
	}
	if err := d.client.interactive(ctx, args...); err != nil {
		return fmt.Errorf("attach %q: %w", project.Name, err)
	}
	return nil
}

// Kill interrupts every pane of project's session, then kills the session.
//
// Each pane receives C-c followed by the grace wait, in listed order. The
// first pane that cannot be interrupted aborts the teardown and the session
// is left running. kill-session is issued even when no panes match.
//
// Parameters:
//   - ctx: Context for the tmux calls
//   - project: The project whose session to kill
//
// Returns:
//   - error: *CommandError if listing, interrupting or killing fails
func (d *Driver) Kill(ctx context.Context, project *config.Project) error {
	panes, err := d.client.ListPanesForProject(ctx, project.Name)
	if err != nil {
		return fmt.Errorf("list panes for %q: %w", project.Name, err)
	}
	log.Debug("Stopping session", "project", project.Name, "panes", len(panes))

	for _, pane := range panes {
		if err := d.client.do(ctx, "send-keys", "-t", pane.PaneID, "C-c"); err != nil {
			return fmt.Errorf("interrupt pane %s: %w", pane.PaneID, err)
		}
		d.sleep(d.grace())
	}

	if err := d.client.do(ctx, "kill-session", "-t", project.Name); err != nil {
		return fmt.Errorf("kill session %q: %w", project.Name, err)
	}
	return nil
}

// List returns the names of registered projects that have a running session.
//
// Parameters:
//   - ctx: Context for the tmux calls
//   - defs: Registry entries in registry order
//
// Returns:
//   - []string: Running project names, in registry order
//   - error: The first running-check failure
func (d *Driver) List(ctx context.Context, defs []config.ProjectDefinition) ([]string, error) {
	running := []string{}
	for _, def := range defs {
		ok, err := d.client.IsRunning(ctx, def.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			running = append(running, def.Name)
		}
	}
	return running, nil
}

func (d *Driver) sendLine(ctx context.Context, target, line string) error {
	if err := d.client.do(ctx, "send-keys", "-t", target, line, "Enter"); err != nil {
		return fmt.Errorf("send keys to %s: %w", target, err)
	}
	return nil
}

func (d *Driver) sleep(dur time.Duration) {
	if d.Sleep == nil {
		time.Sleep(dur)
		return
	}
	d.Sleep(dur)
}

func (d *Driver) grace() time.Duration {
	if d.Grace <= 0 {
		return DefaultKillGrace
	}
	return d.Grace
}

func windowTarget(session string, index int) string {
	return session + ":" + strconv.Itoa(index)
}

// keystrokeLine builds the shell line typed into a pane.
func keystrokeLine(dir, script, command string) string {
	parts := []string{"cd " + shellquote.Join(dir), "clear"}
	if script != "" {
		parts = append(parts, "source "+shellquote.Join(script))
	}
	if command != "" {
		parts = append(parts, command)
	}
	return strings.Join(parts, " && ")
}
