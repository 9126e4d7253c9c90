package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
)

const sampleRegistry = `
[[project]]
name = "web"
path = "/repo/web"

[[project]]
name = "api"
path = "~/code/api"
`

// TestResolveHomeRegistry verifies entries are read in file order.
func TestResolveHomeRegistry(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, FileName), sampleRegistry)

	defs, err := NewStore(home).ResolveHomeRegistry()
	if err != nil {
		t.Fatalf("ResolveHomeRegistry() error: %v", err)
	}

	want := []ProjectDefinition{
		{Name: "web", Path: "/repo/web"},
		{Name: "api", Path: "~/code/api"},
	}
	if !reflect.DeepEqual(defs, want) {
		t.Errorf("ResolveHomeRegistry() = %#v, want %#v", defs, want)
	}
}

// TestResolveHomeRegistryErrors verifies the registry error taxonomy.
func TestResolveHomeRegistryErrors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantErr error
	}{
		{name: "missing", content: nil, wantErr: ErrConfigNotFound},
		{name: "bad toml", content: ptr("[[project]\n"), wantErr: ErrConfigMalformed},
		{name: "missing name", content: ptr("[[project]]\npath = \"/x\"\n"), wantErr: ErrConfigMalformed},
		{name: "missing path", content: ptr("[[project]]\nname = \"x\"\n"), wantErr: ErrConfigMalformed},
		{name: "unknown key", content: ptr("[[project]]\nname = \"x\"\npath = \"/x\"\nlayout = \"grid\"\n"), wantErr: ErrConfigMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			if tt.content != nil {
				writeFile(t, filepath.Join(home, FileName), *tt.content)
			}
			_, err := NewStore(home).ResolveHomeRegistry()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ResolveHomeRegistry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestResolveHomeRegistryUnreadable verifies I/O errors map to ErrConfigUnreadable.
func TestResolveHomeRegistryUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of permissions")
	}
	home := t.TempDir()
	path := filepath.Join(home, FileName)
	writeFile(t, path, sampleRegistry)
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	_, err := NewStore(home).ResolveHomeRegistry()
	if !errors.Is(err, ErrConfigUnreadable) {
		t.Fatalf("ResolveHomeRegistry() error = %v, want ErrConfigUnreadable", err)
	}
}

// TestResolveProject verifies registry lookup followed by layout resolution.
func TestResolveProject(t *testing.T) {
	home := t.TempDir()
	root := filepath.Join(home, "code", "api")
	writeFile(t, filepath.Join(home, FileName), sampleRegistry)
	writeFile(t, LayoutPath(root), "[[window]]\nname = \"server\"\n")

	store := NewStore(home)
	project, err := store.ResolveProject("api")
	if err != nil {
		t.Fatalf("ResolveProject() error: %v", err)
	}
	if project.Path != root {
		t.Errorf("Path = %q, want %q", project.Path, root)
	}

	_, err = store.ResolveProject("missing")
	if !errors.Is(err, ErrProjectNotRegistered) {
		t.Errorf("ResolveProject(missing) error = %v, want ErrProjectNotRegistered", err)
	}
}

func TestResolveProjectRejectsInvalidName(t *testing.T) {
	tests := []struct {
		name    string
		project string
	}{
		{name: "dot", project: "a.b"},
		{name: "colon", project: "web:0"},
		{name: "whitespace", project: "my web"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			root := filepath.Join(home, "proj")
			writeFile(t, filepath.Join(home, FileName), "[[project]]\nname = \""+tt.project+"\"\npath = \""+root+"\"\n")
			writeFile(t, LayoutPath(root), "[[window]]\nname = \"a\"\n")

			_, err := NewStore(home).ResolveProject(tt.project)
			if !errors.Is(err, ErrInvalidProjectName) {
				t.Fatalf("ResolveProject(%q) error = %v, want ErrInvalidProjectName", tt.project, err)
			}
		})
	}
}

// TestPersistProjectUpsert verifies persist is an idempotent upsert that
// preserves unrelated entries.
func TestPersistProjectUpsert(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, FileName), sampleRegistry)
	store := NewStore(home)

	for i := 0; i < 2; i++ {
		if err := store.PersistProject("web", "/elsewhere/web"); err != nil {
			t.Fatalf("PersistProject() error: %v", err)
		}
	}

	defs, err := store.ResolveHomeRegistry()
	if err != nil {
		t.Fatalf("ResolveHomeRegistry() error: %v", err)
	}

	want := []ProjectDefinition{
		{Name: "api", Path: "~/code/api"},
		{Name: "web", Path: "/elsewhere/web"},
	}
	if !reflect.DeepEqual(defs, want) {
		t.Errorf("registry after upsert = %#v, want %#v", defs, want)
	}
}

// TestPersistProjectCreatesRegistry verifies a missing registry is created.
func TestPersistProjectCreatesRegistry(t *testing.T) {
	home := t.TempDir()
	store := NewStore(home)

	if err := store.PersistProject("new", "/repo/new"); err != nil {
		t.Fatalf("PersistProject() error: %v", err)
	}

	defs, err := store.ResolveHomeRegistry()
	if err != nil {
		t.Fatalf("ResolveHomeRegistry() error: %v", err)
	}
	if len(defs) != 1 || defs[0].Name != "new" || defs[0].Path != "/repo/new" {
		t.Errorf("registry = %#v", defs)
	}

	entries, err := os.ReadDir(home)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

// TestPersistProjectRejectsMalformedRegistry verifies a corrupt registry is not overwritten.
func TestPersistProjectRejectsMalformedRegistry(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, FileName)
	writeFile(t, path, "not toml [[")

	err := NewStore(home).PersistProject("web", "/repo/web")
	if !errors.Is(err, ErrConfigMalformed) {
		t.Fatalf("PersistProject() error = %v, want ErrConfigMalformed", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "not toml [[" {
		t.Errorf("registry was rewritten: %q", data)
	}
}

// TestPersistProjectConcurrent verifies locked writers do not lose entries.
func TestPersistProjectConcurrent(t *testing.T) {
	home := t.TempDir()
	store := NewStore(home)

	names := []string{"a", "b", "c", "d", "e", "f"}
	var wg sync.WaitGroup
	errs := make(chan error, len(names))
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			errs <- NewStore(home).PersistProject(name, "/repo/"+name)
		}(name)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("PersistProject() error: %v", err)
		}
	}

	defs, err := store.ResolveHomeRegistry()
	if err != nil {
		t.Fatalf("ResolveHomeRegistry() error: %v", err)
	}
	if len(defs) != len(names) {
		t.Errorf("registry has %d entries, want %d: %#v", len(defs), len(names), defs)
	}
}

// TestValidateProjectName verifies project name rules.
func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "web", wantErr: false},
		{name: "mixed case and dashes", input: "My-Project_2", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "space", input: "my project", wantErr: true},
		{name: "colon", input: "web:0", wantErr: true},
		{name: "dot", input: "web.app", wantErr: true},
		{name: "slash", input: "team/web", wantErr: true},
		{name: "too long", input: strings.Repeat("a", maxProjectNameLen+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidProjectName) {
					t.Errorf("ValidateProjectName(%q) error = %v, want ErrInvalidProjectName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateProjectName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func ptr(s string) *string { return &s }
