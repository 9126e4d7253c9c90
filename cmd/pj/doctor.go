// Package main provides the doctor command for installation diagnostics.
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pj-cli/pj/internal/config"
	"github.com/pj-cli/pj/internal/tmux"
	"github.com/pj-cli/pj/internal/ui"
)

// DoctorCheck represents a single diagnostic check result.
type DoctorCheck struct {
	// Name is the check name (e.g., "tmux", "Registry").
	Name string `json:"name"`

	// Status is the check status: "ok", "warning", "error".
	Status string `json:"status"`

	// Message is the human-readable result message.
	Message string `json:"message"`

	// Details contains additional information (optional).
	Details string `json:"details,omitempty"`
}

// DoctorResult contains all diagnostic check results.
type DoctorResult struct {
	// Checks contains all individual check results.
	Checks []DoctorCheck `json:"checks"`

	// Issues is the count of checks with status "error" or "warning".
	Issues int `json:"issues"`

	// Healthy is true if no errors were found.
	Healthy bool `json:"healthy"`
}

// add records a check and updates the issue counters.
func (r *DoctorResult) add(check DoctorCheck) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case "error":
		r.Healthy = false
		r.Issues++
	case "warning":
		r.Issues++
	}
}

// doctorCmd runs diagnostic checks.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check tmux and project configuration",
	Long: `Run diagnostic checks on the pj setup.

CHECKS PERFORMED:
  - tmux binary (found and runnable?)
  - Home registry (~/.pjconfig exists and parses?)
  - Each registered project's .pjconfig layout

OUTPUT:
  Human-readable by default, JSON with --json flag.

EXAMPLES:
  pj doctor              # Run all checks
  pj doctor --json       # Output as JSON for scripting`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// runDoctor executes all diagnostic checks.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Non-nil if any check failed
func runDoctor(cmd *cobra.Command, args []string) error {
	store, err := config.DefaultStore()
	if err != nil {
		return err
	}
	client, clientErr := newTmuxClient(cmd)

	result := collectDoctorChecks(cmd.Context(), store, client, clientErr)

	if jsonOutput(cmd) {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		printDoctorResults(result)
	}

	if !result.Healthy {
		return fmt.Errorf("health check failed")
	}
	return nil
}

// collectDoctorChecks runs every check against the given store and tmux client.
//
// Parameters:
//   - ctx: Context for tmux calls
//   - store: The config store to inspect
//   - client: The tmux client, nil if it could not be created
//   - clientErr: The error from creating the client
//
// Returns:
//   - DoctorResult: All check results
func collectDoctorChecks(ctx context.Context, store *config.Store, client *tmux.Client, clientErr error) DoctorResult {
	result := DoctorResult{
		Checks:  make([]DoctorCheck, 0),
		Healthy: true,
	}

	result.add(checkVersion())
	result.add(checkTmux(ctx, client, clientErr))

	defs, registryCheck := checkRegistry(store)
	result.add(registryCheck)
	for _, def := range defs {
		result.add(checkProjectLayout(store, def))
	}
	return result
}

// checkVersion reports the pj build.
func checkVersion() DoctorCheck {
	check := DoctorCheck{Name: "Version", Status: "ok"}
	if version == "dev" {
		check.Message = "Development build"
		return check
	}
	check.Message = "v" + version
	check.Details = fmt.Sprintf("Commit: %s, Built: %s", commit, date)
	return check
}

// checkTmux verifies the tmux binary can be run.
func checkTmux(ctx context.Context, client *tmux.Client, clientErr error) DoctorCheck {
	check := DoctorCheck{Name: "tmux", Status: "ok"}
	if clientErr != nil {
		check.Status = "error"
		check.Message = "Not found"
		check.Details = "Install tmux or point --tmux / $" + tmuxEnvVar + " at it"
		return check
	}

	v, err := client.Version(ctx)
	if err != nil {
		check.Status = "error"
		check.Message = "Failed to run " + client.Binary()
		check.Details = err.Error()
		return check
	}
	check.Message = v
	check.Details = client.Binary()
	return check
}

// checkRegistry loads the home registry.
func checkRegistry(store *config.Store) ([]config.ProjectDefinition, DoctorCheck) {
	check := DoctorCheck{Name: "Registry", Status: "ok"}
	defs, err := store.ResolveHomeRegistry()
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		check.Status = "warning"
		check.Message = "No registry at " + store.RegistryPath()
		check.Details = "Run 'pj add <name>' inside a project directory"
		return nil, check
	case err != nil:
		check.Status = "error"
		check.Message = "Cannot load " + store.RegistryPath()
		check.Details = err.Error()
		return nil, check
	}
	check.Message = fmt.Sprintf("%d project(s) registered", len(defs))
	return defs, check
}

// checkProjectLayout resolves one project's layout file.
func checkProjectLayout(store *config.Store, def config.ProjectDefinition) DoctorCheck {
	check := DoctorCheck{Name: def.Name, Status: "ok"}
	if err := config.ValidateProjectName(def.Name); err != nil {
		check.Status = "error"
		check.Message = "Invalid name"
		check.Details = err.Error()
		return check
	}
	project, err := store.ResolveProjectLayout(def)
	if err != nil {
		check.Status = "error"
		check.Message = "Invalid layout"
		check.Details = err.Error()
		return check
	}
	check.Message = fmt.Sprintf("%d window(s)", len(project.Windows))
	check.Details = config.ShortenUser(project.Path, store.Home())
	return check
}

// printDoctorResults prints check results in human-readable form.
func printDoctorResults(result DoctorResult) {
	out := ui.Stdout()
	for _, check := range result.Checks {
		var icon string
		switch check.Status {
		case "ok":
			icon = ui.SuccessStyle.Render("✓")
		case "warning":
			icon = ui.WarningStyle.Render("⚠")
		case "error":
			icon = ui.ErrorStyle.Render("✗")
		}

		// Print check name and message
		_, _ = fmt.Fprintf(out, "  %s %-16s %s\n", icon, check.Name+":", check.Message)

		// Print details if present
		if check.Details != "" {
			_, _ = fmt.Fprintf(out, "    %s\n", ui.DimStyle.Render(check.Details))
		}
	}

	ui.Println()
	if result.Issues > 0 {
		ui.PrintWarning("%d issue(s) found", result.Issues)
	} else {
		ui.PrintSuccess("All checks passed")
	}
}
