package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pj-cli/pj/internal/config"
	"github.com/pj-cli/pj/internal/status"
	"github.com/pj-cli/pj/internal/tmux"
	"github.com/pj-cli/pj/internal/ui"
)

var startDetach bool

// startCmd starts a project session if needed and attaches to it.
var startCmd = &cobra.Command{
	Use:   "start <project>",
	Short: "Start or join a project session",
	Long: `Start a tmux session for a registered project and attach to it.

If the session is already running, pj attaches without touching it.
Otherwise every window in <project>/.pjconfig is created in order, each
split into a command pane and a shell pane.

EXAMPLES:
  pj start web             # Start (if needed) and attach
  pj start web --detach    # Start without attaching`,
	Args:              requireProjectArg,
	ValidArgsFunction: completeProjectNames,
	RunE:              runStart,
}

func init() {
	startCmd.Flags().BoolVarP(&startDetach, "detach", "d", false, "Start the session without attaching")
}

func runStart(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	project, err := app.store.ResolveProject(args[0])
	if err != nil {
		return err
	}
	return startProject(cmd.Context(), app, project, startDetach)
}

// startProject materializes project's session unless it is running, then attaches.
//
// Parameters:
//   - ctx: Context for tmux calls
//   - a: The wired collaborators
//   - project: The resolved project
//   - detach: Skip attaching when true
//
// Returns:
//   - error: Any tmux failure
func startProject(ctx context.Context, a *app, project *config.Project, detach bool) error {
	running, err := a.client.IsRunning(ctx, project.Name)
	if err != nil {
		return err
	}

	if running {
		log.Debug("Session already running", "project", project.Name)
	} else {
		ui.PrintInfo("%s %s", ui.StyledStatus(string(status.StatusStarting)), project.Name)
		a.driver.Progress = func(ev tmux.WindowEvent) {
			ui.PrintStep(ev.Index, ev.Total, ev.Name, config.ShortenUser(ev.Dir, a.store.Home()))
		}
		if err := a.driver.Start(ctx, project); err != nil {
			return err
		}
		ui.PrintSuccess("Started %s", project.Name)
	}

	if detach {
		return nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && os.Getenv("TMUX") == "" {
		ui.PrintWarning("stdin is not a terminal; tmux may refuse to attach")
	}
	return a.driver.Attach(ctx, project)
}
