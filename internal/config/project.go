package config

import (
	"path/filepath"
	"strconv"
)

// WindowSpec declares one tmux window of a project layout.
//
// Every field is optional; the empty string means unset.
type WindowSpec struct {
	// Name is the window name. Falls back to Folder, then the window index.
	Name string `toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`

	// Folder is the working directory relative to the project root.
	Folder string `toml:"folder,omitempty" json:"folder,omitempty" yaml:"folder,omitempty"`

	// Command runs in the window's first pane. Falls back to echoing the name.
	Command string `toml:"command,omitempty" json:"command,omitempty" yaml:"command,omitempty"`

	// Start is a script, relative to the project root, sourced in both panes.
	Start string `toml:"start,omitempty" json:"start,omitempty" yaml:"start,omitempty"`
}

// DisplayName returns the effective window name for position index.
//
// Parameters:
//   - index: 0-based window position in the layout
//
// Returns:
//   - string: Name, else Folder, else the index as a decimal string
func (w WindowSpec) DisplayName(index int) string {
	if w.Name != "" {
		return w.Name
	}
	if w.Folder != "" {
		return w.Folder
	}
	return strconv.Itoa(index)
}

// LayoutDefaults holds project-wide fallbacks for windows.
type LayoutDefaults struct {
	// Start is applied to every window that has no start script of its own.
	Start string `toml:"start,omitempty" json:"start,omitempty" yaml:"start,omitempty"`
}

// layoutFile is the on-disk shape of <project>/.pjconfig.
type layoutFile struct {
	Windows []WindowSpec    `toml:"window"`
	Default *LayoutDefaults `toml:"default"`
}

// Project is a fully resolved project, ready to be materialized in tmux.
type Project struct {
	// Name is the registry name and the tmux session name.
	Name string `json:"name" yaml:"name"`

	// Path is the absolute, tilde-expanded project root.
	Path string `json:"path" yaml:"path"`

	// Windows are the declared windows in order, defaults already merged.
	Windows []WindowSpec `json:"windows" yaml:"windows"`
}

// LayoutPath returns the layout file location for a project root.
func LayoutPath(projectPath string) string {
	return filepath.Join(projectPath, FileName)
}

// WindowDir returns the absolute working directory of w.
func (p *Project) WindowDir(w WindowSpec) string {
	if w.Folder == "" {
		return p.Path
	}
	return filepath.Join(p.Path, w.Folder)
}

// StartScript returns the absolute path of w's start script, or "" if unset.
func (p *Project) StartScript(w WindowSpec) string {
	if w.Start == "" {
		return ""
	}
	return filepath.Join(p.Path, w.Start)
}

// ResolveProjectLayout loads the layout file of def and returns the resolved project.
//
// A leading "~/" in def.Path is expanded against the store's home directory
// and the result is made absolute. Window defaults are merged once here.
//
// Parameters:
//   - def: The registry entry to resolve
//
// Returns:
//   - *Project: The resolved project
//   - error: ErrConfigNotFound, ErrConfigUnreadable or ErrConfigMalformed
func (s *Store) ResolveProjectLayout(def ProjectDefinition) (*Project, error) {
	root, err := resolveProjectPath(def.Path, s.home)
	if err != nil {
		return nil, configErr(ErrConfigMalformed, def.Path, err)
	}

	path := LayoutPath(root)
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	var layout layoutFile
	if err := decodeStrict(data, &layout); err != nil {
		return nil, configErr(ErrConfigMalformed, path, err)
	}

	return &Project{
		Name:    def.Name,
		Path:    root,
		Windows: Merge(layout.Default, layout.Windows),
	}, nil
}
