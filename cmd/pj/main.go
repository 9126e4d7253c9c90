// Package main provides the entry point for the pj CLI.
//
// pj starts, attaches to and ends tmux sessions laid out from a per-project
// .pjconfig file. Projects are registered in ~/.pjconfig.
package main

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pj-cli/pj/internal/tui"
	"github.com/pj-cli/pj/internal/ui"
)

// Version information set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "pj",
	Short:         "Project sessions for tmux",
	Long:          ui.GetCondensedHelp(),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(log.WarnLevel)
		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug logging enabled")
		}

		// Set quiet mode from global flag
		quiet, _ := cmd.Flags().GetBool("quiet")
		ui.SetQuietMode(quiet)
	},
	RunE: runRoot,
}

// errHelpShown marks a usage error whose help text was already printed.
var errHelpShown = errors.New("missing required argument")

// Execute runs the root command and renders any error once on stderr.
//
// Unknown commands that name a registered project get a "did you mean"
// suggestion (e.g. "pj web" instead of "pj start web").
//
// Returns:
//   - int: The process exit code
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, errHelpShown) {
		ui.PrintError("%s", err)
	}

	errStr := err.Error()
	if start := strings.Index(errStr, `unknown command "`); start != -1 {
		start += len(`unknown command "`)
		if end := strings.Index(errStr[start:], `"`); end != -1 {
			unknownCmd := errStr[start : start+end]
			if suggestion, found := suggestCorrectCommand(unknownCmd, os.Args[1:]); found {
				printCommandSuggestion(suggestion)
			}
		}
	}
	return 1
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON (where supported)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().String("tmux", os.Getenv(tmuxEnvVar), "Path to the tmux binary (env "+tmuxEnvVar+")")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(doctorCmd)
}

// runRoot opens the project picker in an interactive terminal, otherwise prints help.
func runRoot(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	if !tui.ShouldRunTUI(jsonOutput, quiet) {
		return cmd.Help()
	}

	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defs, err := app.store.ResolveHomeRegistry()
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		ui.PrintInfo("No projects registered yet.")
		ui.PrintDim("Run 'pj add <name>' inside a project directory.")
		return nil
	}

	choice, err := tui.RunPicker(version, defs, app.store.Home(), app.client)
	if err != nil {
		return err
	}

	switch choice.Action {
	case tui.ActionStart:
		project, err := app.store.ResolveProject(choice.Project)
		if err != nil {
			return err
		}
		return startProject(cmd.Context(), app, project, false)
	case tui.ActionEnd:
		project, err := app.store.ResolveProject(choice.Project)
		if err != nil {
			return err
		}
		return endProject(cmd.Context(), app, project)
	}
	return nil
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput(cmd) {
			return printJSON(map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
			})
		}
		ui.PrintData("pj " + version)
		ui.PrintDim("Commit: %s", commit)
		ui.PrintDim("Built: %s", date)
		return nil
	},
}

func main() {
	os.Exit(Execute())
}
