package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pj-cli/pj/internal/config"
	"github.com/pj-cli/pj/internal/ui"
	"github.com/pj-cli/pj/internal/util"
)

// addCmd registers a project in the home registry.
var addCmd = &cobra.Command{
	Use:   "add [name] [path]",
	Short: "Register a project",
	Long: `Register a project directory under <name> in ~/.pjconfig.

The path defaults to the current directory. Without a name, one is derived
from the directory name. An existing entry with the same name is replaced.

EXAMPLES:
  pj add                   # Register the current directory under its own name
  pj add web               # Register the current directory as "web"
  pj add api ~/code/api    # Register another directory`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := config.DefaultStore()
	if err != nil {
		return err
	}

	path := "."
	if len(args) == 2 {
		path = config.ExpandUser(args[1], store.Home())
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", path, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", abs)
	}

	name := util.ProjectNameFromDir(abs)
	if len(args) > 0 {
		name = args[0]
	}
	if err := store.PersistProject(name, abs); err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(config.ProjectDefinition{Name: name, Path: abs})
	}
	ui.PrintSuccess("Registered %s → %s", name, config.ShortenUser(abs, store.Home()))
	if _, err := os.Stat(config.LayoutPath(abs)); err != nil {
		ui.PrintDim("No %s in %s yet; add [[window]] tables to lay out the session.", config.FileName, config.ShortenUser(abs, store.Home()))
	}
	return nil
}
