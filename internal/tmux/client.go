// Package tmux is the boundary between pj and the tmux binary.
//
// Client runs tmux subcommands and classifies their output. Driver builds on
// Client to materialize, attach to and tear down project sessions.
package tmux

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrMultiplexerUnavailable indicates a tmux command failed.
	ErrMultiplexerUnavailable = errors.New("tmux command failed")

	// ErrMultiplexerNotFound indicates the tmux binary could not be located.
	ErrMultiplexerNotFound = errors.New("tmux not found")
)

// CommandError describes a failed tmux invocation.
type CommandError struct {
	// Args are the arguments passed to tmux, without the binary.
	Args []string

	// ExitCode is the process exit code, or -1 if it never ran.
	ExitCode int

	// Stderr is the trimmed standard error output.
	Stderr string

	// Err is the underlying exec error.
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	sub := "tmux"
	if len(e.Args) > 0 {
		sub = "tmux " + e.Args[0]
	}
	msg := fmt.Sprintf("%s: exit code %d", sub, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap exposes ErrMultiplexerUnavailable and the exec error.
func (e *CommandError) Unwrap() []error {
	return []error{ErrMultiplexerUnavailable, e.Err}
}

// Client invokes a tmux binary.
type Client struct {
	bin    string
	run    func(ctx context.Context, name string, args ...string) *exec.Cmd
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewClient resolves the tmux binary and returns a Client.
//
// Parameters:
//   - tmuxPath: Explicit binary path; empty means look up "tmux" in PATH
//
// Returns:
//   - *Client: A client bound to the resolved binary
//   - error: ErrMultiplexerNotFound if no binary can be found
func NewClient(tmuxPath string) (*Client, error) {
	if tmuxPath == "" {
		var err error
		tmuxPath, err = exec.LookPath("tmux")
		if err != nil {
			return nil, fmt.Errorf("%w in PATH: %w", ErrMultiplexerNotFound, err)
		}
	}
	return &Client{
		bin:    tmuxPath,
		run:    exec.CommandContext,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}, nil
}

// WithExec allows tests to override the exec implementation.
func (c *Client) WithExec(fn func(context.Context, string, ...string) *exec.Cmd) {
	c.run = fn
}

// WithIO overrides the streams handed to interactive commands.
func (c *Client) WithIO(stdin io.Reader, stdout, stderr io.Writer) {
	c.stdin = stdin
	c.stdout = stdout
	c.stderr = stderr
}

// Binary returns the tmux binary path.
func (c *Client) Binary() string {
	return c.bin
}

// output runs tmux with args and captures stdout and stderr separately.
// A non-zero exit is returned as *CommandError along with the captured output.
func (c *Client) output(ctx context.Context, args ...string) (string, string, error) {
	log.Debug("tmux", "args", args)
	cmd := c.run(ctx, c.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		return stdout.String(), stderr.String(), c.wrapErr(args, err, stderr.String())
	}
	return stdout.String(), stderr.String(), nil
}

// do runs tmux with args, discarding output.
func (c *Client) do(ctx context.Context, args ...string) error {
	_, _, err := c.output(ctx, args...)
	return err
}

// interactive runs tmux attached to the client's terminal streams and waits for it to exit.
func (c *Client) interactive(ctx context.Context, args ...string) error {
	log.Debug("tmux (interactive)", "args", args)
	cmd := c.run(ctx, c.bin, args...)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	if err := cmd.Run(); err != nil {
		return c.wrapErr(args, err, "")
	}
	return nil
}

func (c *Client) wrapErr(args []string, err error, stderr string) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrMultiplexerNotFound, c.bin, err)
	}
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &CommandError{
		Args:     append([]string(nil), args...),
		ExitCode: code,
		Stderr:   strings.TrimSpace(stderr),
		Err:      err,
	}
}

// Version returns the output of "tmux -V".
func (c *Client) Version(ctx context.Context) (string, error) {
	out, _, err := c.output(ctx, "-V")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func insideTmux() bool {
	return os.Getenv("TMUX") != ""
}
