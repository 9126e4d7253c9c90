package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pj-cli/pj/internal/config"
	"github.com/pj-cli/pj/internal/status"
	"github.com/pj-cli/pj/internal/ui"
)

// endCmd tears down a project session.
var endCmd = &cobra.Command{
	Use:     "end <project>",
	Aliases: []string{"stop"},
	Short:   "End a project session",
	Long: `Interrupt every pane of a project's session with C-c, then kill it.

Each pane gets half a second to exit before the next one is interrupted.
Ending a project that is not running does nothing.

EXAMPLES:
  pj end web
  pj stop web`,
	Args:              requireProjectArg,
	ValidArgsFunction: completeProjectNames,
	RunE:              runEnd,
}

func runEnd(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	project, err := app.store.ResolveProject(args[0])
	if err != nil {
		return err
	}
	return endProject(cmd.Context(), app, project)
}

// endProject kills project's session if it is running.
func endProject(ctx context.Context, a *app, project *config.Project) error {
	running, err := a.client.IsRunning(ctx, project.Name)
	if err != nil {
		return err
	}
	if !running {
		ui.PrintDim("%s is not running", project.Name)
		return nil
	}

	ui.PrintInfo("%s %s", ui.StyledStatus(string(status.StatusStopping)), project.Name)
	if err := a.driver.Kill(ctx, project); err != nil {
		return err
	}
	ui.PrintSuccess("Ended %s", project.Name)
	return nil
}
