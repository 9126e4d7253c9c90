// Package main provides shared helpers for pj commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pj-cli/pj/internal/config"
	"github.com/pj-cli/pj/internal/tmux"
	"github.com/pj-cli/pj/internal/ui"
)

// tmuxEnvVar overrides the tmux binary when --tmux is not given.
const tmuxEnvVar = "PJ_TMUX"

// app bundles the collaborators a command needs.
type app struct {
	store  *config.Store
	client *tmux.Client
	driver *tmux.Driver
}

// newApp builds the config store and tmux driver from global flags.
//
// Parameters:
//   - cmd: The cobra command being executed
//
// Returns:
//   - *app: The wired collaborators
//   - error: config.ErrHomeUnset or tmux.ErrMultiplexerNotFound
func newApp(cmd *cobra.Command) (*app, error) {
	store, err := config.DefaultStore()
	if err != nil {
		return nil, err
	}
	client, err := newTmuxClient(cmd)
	if err != nil {
		return nil, err
	}
	return &app{store: store, client: client, driver: tmux.NewDriver(client)}, nil
}

// newTmuxClient resolves the tmux binary from --tmux, $PJ_TMUX or PATH.
func newTmuxClient(cmd *cobra.Command) (*tmux.Client, error) {
	tmuxPath, _ := cmd.Flags().GetString("tmux")
	return tmux.NewClient(tmuxPath)
}

// jsonOutput reports whether the global --json flag is set.
func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// printJSON writes v as indented JSON to the ui output writer.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	ui.PrintData(string(data))
	return nil
}

// requireProjectArg accepts exactly one project argument. With none, it
// prints the command's help and fails.
func requireProjectArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		return errHelpShown
	}
	return cobra.ExactArgs(1)(cmd, args)
}

// completeProjectNames offers registered project names for shell completion.
func completeProjectNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store, err := config.DefaultStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defs, err := store.ResolveHomeRegistry()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
