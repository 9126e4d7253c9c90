// Package main provides command suggestion functionality for the CLI.
//
// This file implements "did you mean" suggestions when users type a project
// name where a command is expected (e.g., "pj web" instead of "pj start web").
package main

import (
	"strings"

	"github.com/pj-cli/pj/internal/config"
	"github.com/pj-cli/pj/internal/ui"
)

// suggestCorrectCommand checks if the unknown command is a registered
// project and returns the start command for it.
//
// Parameters:
//   - unknownCmd: The command that was not recognized by Cobra
//   - allArgs: All command line arguments (excluding program name)
//
// Returns:
//   - string: A suggested command line, or empty if no suggestion found
//   - bool: True if a valid suggestion was found
func suggestCorrectCommand(unknownCmd string, allArgs []string) (string, bool) {
	store, err := config.DefaultStore()
	if err != nil {
		return "", false
	}
	defs, err := store.ResolveHomeRegistry()
	if err != nil {
		return "", false
	}
	return suggestFromRegistry(unknownCmd, allArgs, defs)
}

// suggestFromRegistry builds "pj [flags] start <project>" when unknownCmd
// names a registered project.
func suggestFromRegistry(unknownCmd string, allArgs []string, defs []config.ProjectDefinition) (string, bool) {
	if _, ok := config.FindProject(defs, unknownCmd); !ok {
		return "", false
	}

	parts := []string{"pj"}
	for _, arg := range allArgs {
		if arg == unknownCmd {
			break
		}
		if strings.HasPrefix(arg, "-") {
			parts = append(parts, arg)
		}
	}
	parts = append(parts, "start", unknownCmd)
	return strings.Join(parts, " "), true
}

// printCommandSuggestion prints a "did you mean" suggestion to stderr.
func printCommandSuggestion(suggestion string) {
	ui.PrintWarning("Did you mean: %s", suggestion)
}
