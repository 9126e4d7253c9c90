package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pj-cli/pj/internal/config"
	"github.com/pj-cli/pj/internal/ui"
)

// showCmd prints a project's resolved layout.
var showCmd = &cobra.Command{
	Use:   "show <project>",
	Short: "Show a project's resolved layout",
	Long: `Print the project as pj sees it: absolute path and every window with
defaults applied. YAML by default, JSON with --json.

EXAMPLES:
  pj show web
  pj show web --json`,
	Args:              requireProjectArg,
	ValidArgsFunction: completeProjectNames,
	RunE:              runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := config.DefaultStore()
	if err != nil {
		return err
	}
	project, err := store.ResolveProject(args[0])
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(project)
	}
	out, err := marshalYAML(project)
	if err != nil {
		return err
	}
	ui.PrintData(strings.TrimRight(out, "\n"))
	return nil
}

// marshalYAML encodes v with two-space indentation.
func marshalYAML(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return buf.String(), nil
}
