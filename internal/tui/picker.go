package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pj-cli/pj/internal/config"
	"github.com/pj-cli/pj/internal/status"
)

// statusTimeout bounds a full status refresh.
const statusTimeout = 5 * time.Second

// StatusChecker reports whether a project session is running.
type StatusChecker interface {
	IsRunning(ctx context.Context, name string) (bool, error)
}

// Action is what the user asked the picker to do.
type Action int

const (
	// ActionNone means the user quit without choosing.
	ActionNone Action = iota

	// ActionStart starts (if needed) and attaches the selected project.
	ActionStart

	// ActionEnd ends the selected project's session.
	ActionEnd
)

// Selection is the picker's result.
type Selection struct {
	Action  Action
	Project string
}

// ProjectItem is one row of the picker.
type ProjectItem struct {
	Name   string
	Path   string
	Status status.SessionStatus
}

// ProjectStatusMsg carries refreshed session statuses.
type ProjectStatusMsg struct {
	Statuses map[string]status.SessionStatus
	Err      error
}

// pickerModel is the Bubble Tea model for the project picker.
type pickerModel struct {
	version string
	checker StatusChecker

	projects []ProjectItem
	cursor   int

	filterMode  bool
	filterInput textinput.Model
	filtered    []ProjectItem

	loading bool
	spinner spinner.Model
	err     error
	width   int
	height  int

	choice Selection
}

// newPickerModel creates the initial picker model.
//
// Parameters:
//   - version: the CLI version string for display
//   - defs: registered projects in registry order
//   - home: the home directory, used to shorten displayed paths
//   - checker: session status source
//
// Returns:
//   - pickerModel: the initialized model
func newPickerModel(version string, defs []config.ProjectDefinition, home string, checker StatusChecker) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "filter projects..."
	ti.CharLimit = 64

	items := make([]ProjectItem, len(defs))
	for i, def := range defs {
		items[i] = ProjectItem{
			Name:   def.Name,
			Path:   config.ShortenUser(config.ExpandUser(def.Path, home), home),
			Status: status.StatusUnknown,
		}
	}

	return pickerModel{
		version:     version,
		checker:     checker,
		projects:    items,
		filterInput: ti,
		loading:     true,
		spinner:     newSpinner(),
	}
}

// refreshStatusCmd queries tmux for every project's session state.
func refreshStatusCmd(checker StatusChecker, items []ProjectItem) tea.Cmd {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
		defer cancel()

		statuses := make(map[string]status.SessionStatus, len(names))
		for _, name := range names {
			running, err := checker.IsRunning(ctx, name)
			if err != nil {
				return ProjectStatusMsg{Err: fmt.Errorf("check %s: %w", name, err)}
			}
			statuses[name] = status.FromRunning(running)
		}
		return ProjectStatusMsg{Statuses: statuses}
	}
}

// Init starts the spinner and the first status refresh.
func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refreshStatusCmd(m.checker, m.projects))
}

// Update handles messages.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProjectStatusMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			for i := range m.projects {
				if s, ok := msg.Statuses[m.projects[i].Name]; ok {
					m.projects[i].Status = s
				}
			}
			m.applyFilter()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes key events.
func (m pickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterMode {
		switch msg.String() {
		case "esc":
			m.filterMode = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.filtered = nil
			m.cursor = 0
			return m, nil
		case "enter":
			m.filterMode = false
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.applyFilter()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.choice = Selection{Action: ActionNone}
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visibleProjects())-1 {
			m.cursor++
		}

	case "/":
		m.filterMode = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case "enter":
		if item, ok := m.selected(); ok {
			m.choice = Selection{Action: ActionStart, Project: item.Name}
			return m, tea.Quit
		}

	case "x":
		if item, ok := m.selected(); ok && status.IsLive(string(item.Status)) {
			m.choice = Selection{Action: ActionEnd, Project: item.Name}
			return m, tea.Quit
		}

	case "r":
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, refreshStatusCmd(m.checker, m.projects))
	}
	return m, nil
}

// applyFilter recomputes the filtered list from the filter input.
func (m *pickerModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		m.filtered = nil
		m.clampCursor()
		return
	}
	m.filtered = m.filtered[:0]
	for _, item := range m.projects {
		if strings.Contains(strings.ToLower(item.Name), query) {
			m.filtered = append(m.filtered, item)
		}
	}
	m.clampCursor()
}

func (m *pickerModel) clampCursor() {
	n := len(m.visibleProjects())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// visibleProjects returns the filtered list when a filter is active.
func (m pickerModel) visibleProjects() []ProjectItem {
	if m.filterInput.Value() != "" {
		return m.filtered
	}
	return m.projects
}

func (m pickerModel) selected() (ProjectItem, bool) {
	items := m.visibleProjects()
	if m.cursor < 0 || m.cursor >= len(items) {
		return ProjectItem{}, false
	}
	return items[m.cursor], true
}

// View renders the picker.
func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pj"))
	b.WriteString(dimStyle.Render(" " + m.version))
	b.WriteString("\n")
	b.WriteString(separator(m.width))
	b.WriteString("\n")

	if m.filterMode || m.filterInput.Value() != "" {
		b.WriteString(filterPromptStyle.Render("/ "))
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}

	items := m.visibleProjects()
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("  no matching projects"))
		b.WriteString("\n")
	}

	nameWidth := 0
	for _, item := range items {
		nameWidth = max(nameWidth, len(item.Name))
	}

	for i, item := range items {
		cursor := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = selectedStyle.Render("› ")
			nameStyle = selectedStyle
		}
		icon := statusStyle(item.Status).Render(status.StatusIcon(string(item.Status)))
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, item.Name))
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, icon, name, dimStyle.Render(item.Path))
	}

	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + dimStyle.Render(" checking sessions..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter start/attach • x end • / filter • r refresh • q quit"))
	return b.String()
}

// RunPicker launches the project picker and returns the user's choice.
//
// Parameters:
//   - version: the CLI version string for display
//   - defs: registered projects in registry order
//   - home: the home directory, used to shorten displayed paths
//   - checker: session status source
//
// Returns:
//   - Selection: what the user chose; Action is ActionNone if they quit
//   - error: any error from the Bubble Tea runtime
func RunPicker(version string, defs []config.ProjectDefinition, home string, checker StatusChecker) (Selection, error) {
	p := tea.NewProgram(
		newPickerModel(version, defs, home, checker),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return Selection{}, err
	}
	m, ok := final.(pickerModel)
	if !ok {
		return Selection{}, nil
	}
	return m.choice, nil
}
