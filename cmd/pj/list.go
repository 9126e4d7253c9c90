package main

import (
	"github.com/spf13/cobra"

	"github.com/pj-cli/pj/internal/config"
	"github.com/pj-cli/pj/internal/status"
	"github.com/pj-cli/pj/internal/ui"
)

var listAll bool

// listCmd prints running projects.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List running projects",
	Long: `List registered projects that have a running tmux session, one per line.

With --all, every registered project is shown with its status and path.

EXAMPLES:
  pj ls
  pj ls --all
  pj ls --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show every registered project with its status")
}

// projectRow is the JSON shape of one "list --all" entry.
type projectRow struct {
	Name   string               `json:"name"`
	Path   string               `json:"path"`
	Status status.SessionStatus `json:"status"`
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defs, err := app.store.ResolveHomeRegistry()
	if err != nil {
		return err
	}

	if listAll {
		return listAllProjects(cmd, app, defs)
	}

	running, err := app.driver.List(cmd.Context(), defs)
	if err != nil {
		return err
	}
	if jsonOutput(cmd) {
		return printJSON(running)
	}
	for _, name := range running {
		ui.PrintData(name)
	}
	return nil
}

func listAllProjects(cmd *cobra.Command, a *app, defs []config.ProjectDefinition) error {
	rows := make([]projectRow, 0, len(defs))
	for _, def := range defs {
		running, err := a.client.IsRunning(cmd.Context(), def.Name)
		if err != nil {
			return err
		}
		rows = append(rows, projectRow{
			Name:   def.Name,
			Path:   config.ExpandUser(def.Path, a.store.Home()),
			Status: status.FromRunning(running),
		})
	}

	if jsonOutput(cmd) {
		return printJSON(rows)
	}
	if len(rows) == 0 {
		ui.PrintDim("No projects registered. Run 'pj add <name>' inside a project directory.")
		return nil
	}

	table := ui.NewTable("NAME", "STATUS", "PATH")
	for _, row := range rows {
		table.AddRow(row.Name, ui.StyledStatus(string(row.Status)), config.ShortenUser(row.Path, a.store.Home()))
	}
	table.Render()
	return nil
}
