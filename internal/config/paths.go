package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the name of both the home registry and the per-project layout file.
const FileName = ".pjconfig"

// HomeDir returns the current user's home directory.
//
// Returns:
//   - string: The home directory
//   - error: ErrHomeUnset if $HOME is empty or unresolvable
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", fmt.Errorf("%w: %v", ErrHomeUnset, err)
	}
	return home, nil
}

// ExpandUser expands a leading "~" or "~/" against home.
// Other paths, including "~user/...", are returned unchanged.
//
// Parameters:
//   - path: The path to expand
//   - home: The home directory to substitute
//
// Returns:
//   - string: The expanded path
func ExpandUser(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// ShortenUser replaces a home directory prefix with "~" for display.
func ShortenUser(path, home string) string {
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}

// resolveProjectPath expands ~ and makes the result absolute.
func resolveProjectPath(path, home string) (string, error) {
	expanded := ExpandUser(strings.TrimSpace(path), home)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve project path %q: %w", path, err)
	}
	return abs, nil
}
