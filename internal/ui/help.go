package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// tagline is the one-line product description.
const tagline = "Project sessions for tmux"

// GetCondensedHelp returns a compact cheat-sheet, shown when pj runs with no
// arguments outside an interactive terminal.
func GetCondensedHelp() string {
	accent := lipgloss.NewStyle().Foreground(Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	return fmt.Sprintf(`%s

%s
  %s        Register the current directory as a project
  %s      Start (if needed) and attach to a project session
  %s        Interrupt every pane and kill the session
  %s                Show running projects

%s
  %s       Print a project's resolved layout
  %s              Check tmux and every project layout

%s
`,
		accent.Render("pj")+" - "+dim.Render(tagline),
		accent.Render("Sessions:"),
		accent.Render("pj add <name>"),
		accent.Render("pj start <name>"),
		accent.Render("pj end <name>"),
		accent.Render("pj ls"),
		accent.Render("Inspect:"),
		accent.Render("pj show <name>"),
		accent.Render("pj doctor"),
		hint.Render(`Use "pj --help" for a full list of commands.`),
	)
}
