// Package util provides shared utility functions for the CLI.
package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// disallowedChars matches anything not in [a-z0-9-_].
	disallowedChars = regexp.MustCompile(`[^a-z0-9\-_]`)
	// separators become hyphens before stripping.
	separators = regexp.MustCompile(`[\s.:]+`)
	// multiHyphen collapses consecutive hyphens.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// SanitizeProjectName converts a string to a name usable as a registry key
// and a tmux session name.
//   - Lowercases
//   - Replaces whitespace, '.' and ':' with hyphens
//   - Strips all characters not in [a-z0-9-_]
//   - Collapses consecutive hyphens
//   - Trims leading/trailing hyphens
//
// Example: "My App.v2" → "my-app-v2"
func SanitizeProjectName(name string) string {
	s := strings.ToLower(name)
	s = separators.ReplaceAllString(s, "-")
	s = disallowedChars.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// ProjectNameFromDir derives a project name from the last element of dir.
// Returns "" when nothing usable is left.
func ProjectNameFromDir(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return SanitizeProjectName(base)
}
