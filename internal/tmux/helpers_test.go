package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"strconv"
	"testing"
)

type cmdSpec struct {
	args   []string
	stdout string
	stderr string
	exit   int
}

// fakeRunner asserts tmux is invoked with exactly the expected argv, in order.
type fakeRunner struct {
	t     *testing.T
	specs []cmdSpec
	idx   int
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) *exec.Cmd {
	f.t.Helper()
	if f.idx >= len(f.specs) {
		f.t.Fatalf("unexpected command: %s %#v", name, args)
	}
	want := f.specs[f.idx]
	f.idx++
	if name != "tmux" {
		f.t.Fatalf("command name = %q, want tmux", name)
	}
	if !reflect.DeepEqual(args, want.args) {
		f.t.Fatalf("command %d args = %#v, want %#v", f.idx, args, want.args)
	}
	return helperCmd(ctx, want.stdout, want.stderr, want.exit)
}

func (f *fakeRunner) assertDone() {
	f.t.Helper()
	if f.idx != len(f.specs) {
		f.t.Fatalf("not all commands consumed: %d of %d", f.idx, len(f.specs))
	}
}

func newTestClient(t *testing.T, specs ...cmdSpec) (*Client, *fakeRunner) {
	t.Helper()
	runner := &fakeRunner{t: t, specs: specs}
	client := &Client{bin: "tmux", run: runner.run}
	return client, runner
}

func ok(args ...string) cmdSpec {
	return cmdSpec{args: args}
}

func helperCmd(ctx context.Context, stdout, stderr string, exit int) *exec.Cmd {
	cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
	cmd.Env = append(os.Environ(),
		"GO_WANT_HELPER_PROCESS=1",
		"PJ_HELPER_STDOUT="+stdout,
		"PJ_HELPER_STDERR="+stderr,
		"PJ_HELPER_EXIT="+strconv.Itoa(exit),
	)
	return cmd
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	stdout := os.Getenv("PJ_HELPER_STDOUT")
	stderr := os.Getenv("PJ_HELPER_STDERR")
	exitCode := 0
	if raw := os.Getenv("PJ_HELPER_EXIT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			exitCode = parsed
		}
	}
	if stdout != "" {
		_, _ = fmt.Fprint(os.Stdout, stdout)
	}
	if stderr != "" {
		_, _ = fmt.Fprint(os.Stderr, stderr)
	}
	os.Exit(exitCode)
}
