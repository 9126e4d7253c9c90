// Package config resolves the home registry of projects and per-project
// window layouts.
//
// Both live in TOML files named .pjconfig: the registry in the user's home
// directory, the layout at the root of each registered project.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// maxProjectNameLen is the maximum allowed length for a project name.
const maxProjectNameLen = 128

// ProjectDefinition is one entry of the home registry.
type ProjectDefinition struct {
	// Name identifies the project and doubles as the tmux session name.
	Name string `toml:"name" json:"name" yaml:"name"`

	// Path is the project root as written in the registry (may start with ~/).
	Path string `toml:"path" json:"path" yaml:"path"`
}

// registryFile is the on-disk shape of <home>/.pjconfig.
type registryFile struct {
	Project []ProjectDefinition `toml:"project,omitempty"`
}

// Store reads and writes configuration relative to a home directory.
type Store struct {
	home string
}

// NewStore creates a Store rooted at home.
//
// Parameters:
//   - home: The directory holding the registry file
//
// Returns:
//   - *Store: A new Store instance
func NewStore(home string) *Store {
	return &Store{home: home}
}

// DefaultStore creates a Store rooted at the current user's home directory.
//
// Returns:
//   - *Store: A Store for $HOME
//   - error: ErrHomeUnset if the home directory cannot be determined
func DefaultStore() (*Store, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}
	return NewStore(home), nil
}

// Home returns the home directory the store is bound to.
func (s *Store) Home() string {
	return s.home
}

// RegistryPath returns the path of the home registry file.
func (s *Store) RegistryPath() string {
	return filepath.Join(s.home, FileName)
}

// ResolveHomeRegistry reads every project definition from the home registry.
//
// Returns:
//   - []ProjectDefinition: Registry entries in file order
//   - error: ErrConfigNotFound, ErrConfigUnreadable or ErrConfigMalformed
func (s *Store) ResolveHomeRegistry() ([]ProjectDefinition, error) {
	path := s.RegistryPath()
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	return decodeRegistry(path, data)
}

// ResolveProject looks up name in the registry and resolves its layout.
//
// Parameters:
//   - name: The registered project name
//
// Returns:
//   - *Project: The resolved project
//   - error: Registry or layout errors, ErrProjectNotRegistered, or
//     ErrInvalidProjectName for a hand-edited entry tmux cannot address
func (s *Store) ResolveProject(name string) (*Project, error) {
	defs, err := s.ResolveHomeRegistry()
	if err != nil {
		return nil, err
	}
	def, ok := FindProject(defs, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (run 'pj add %s' inside the project)", ErrProjectNotRegistered, name, name)
	}
	if err := ValidateProjectName(def.Name); err != nil {
		return nil, fmt.Errorf("registry entry in %s: %w", s.RegistryPath(), err)
	}
	return s.ResolveProjectLayout(def)
}

// FindProject returns the first definition named name.
func FindProject(defs []ProjectDefinition, name string) (ProjectDefinition, bool) {
	for _, def := range defs {
		if def.Name == name {
			return def, true
		}
	}
	return ProjectDefinition{}, false
}

// PersistProject upserts {name, path} into the home registry.
//
// Any existing entry with the same name is removed and the new entry is
// appended, then the whole registry is rewritten. The read-modify-write runs
// under an exclusive lock on <home>/.pjconfig.lock and the file is replaced
// atomically, so concurrent pj processes serialize. Writers that do not take
// the lock are not coordinated with.
//
// Parameters:
//   - name: The project name
//   - path: The project root to record
//
// Returns:
//   - error: ErrInvalidProjectName, ErrConfigUnreadable or ErrConfigMalformed
func (s *Store) PersistProject(name, path string) error {
	if err := ValidateProjectName(name); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return configErr(ErrConfigMalformed, s.RegistryPath(), errors.New("project path cannot be empty"))
	}

	registryPath := s.RegistryPath()
	lock := flock.New(registryPath + ".lock")
	if err := lock.Lock(); err != nil {
		return configErr(ErrConfigUnreadable, registryPath, fmt.Errorf("acquire registry lock: %w", err))
	}
	defer func() { _ = lock.Unlock() }()
	log.Debug("Acquired registry lock", "path", lock.Path())

	defs, err := s.ResolveHomeRegistry()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return err
	}

	kept := make([]ProjectDefinition, 0, len(defs)+1)
	for _, def := range defs {
		if def.Name != name {
			kept = append(kept, def)
		}
	}
	kept = append(kept, ProjectDefinition{Name: name, Path: path})

	data, err := toml.Marshal(registryFile{Project: kept})
	if err != nil {
		return configErr(ErrConfigMalformed, registryPath, err)
	}
	if err := writeFileAtomic(registryPath, data, 0o644); err != nil {
		return configErr(ErrConfigUnreadable, registryPath, err)
	}
	log.Debug("Wrote registry", "path", registryPath, "projects", len(kept))
	return nil
}

// ValidateProjectName checks that name is usable as a registry key and a
// tmux session name.
//
// Rules:
//   - Must be non-empty
//   - Max 128 characters
//   - No whitespace or control characters
//   - No ':' or '.' (tmux target separators)
//   - No path separators
//
// Parameters:
//   - name: The name to validate
//
// Returns:
//   - error: An ErrInvalidProjectName error describing the problem, nil otherwise
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProjectName)
	}
	if len(name) > maxProjectNameLen {
		return fmt.Errorf("%w: name too long (%d chars, max %d)", ErrInvalidProjectName, len(name), maxProjectNameLen)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q cannot contain whitespace", ErrInvalidProjectName, name)
		}
	}
	if strings.ContainsAny(name, ":.") {
		return fmt.Errorf("%w: %q cannot contain ':' or '.' (tmux uses them to address windows and panes)", ErrInvalidProjectName, name)
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: %q cannot contain path separators", ErrInvalidProjectName, name)
	}
	return nil
}

func decodeRegistry(path string, data []byte) ([]ProjectDefinition, error) {
	var reg registryFile
	if err := decodeStrict(data, &reg); err != nil {
		return nil, configErr(ErrConfigMalformed, path, err)
	}
	for i, def := range reg.Project {
		if strings.TrimSpace(def.Name) == "" {
			return nil, configErr(ErrConfigMalformed, path, fmt.Errorf("project #%d has no name", i+1))
		}
		if strings.TrimSpace(def.Path) == "" {
			return nil, configErr(ErrConfigMalformed, path, fmt.Errorf("project %q has no path", def.Name))
		}
	}
	return reg.Project, nil
}

// readConfigFile reads path, classifying failures into the config taxonomy.
func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, configErr(ErrConfigNotFound, path, nil)
		}
		return nil, configErr(ErrConfigUnreadable, path, err)
	}
	if info.IsDir() {
		return nil, configErr(ErrConfigNotFound, path, errors.New("is a directory"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configErr(ErrConfigUnreadable, path, err)
	}
	return data, nil
}

// decodeStrict decodes TOML, rejecting keys that no field accepts.
func decodeStrict(data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
