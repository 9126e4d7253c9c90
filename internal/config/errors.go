package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration resolution. Every failure returned by
// this package matches exactly one of them via errors.Is.
var (
	// ErrConfigNotFound means the registry or layout file does not exist.
	ErrConfigNotFound = errors.New("config not found")

	// ErrConfigUnreadable means the file exists but could not be read or written.
	ErrConfigUnreadable = errors.New("config unreadable")

	// ErrConfigMalformed means the file could not be decoded or has invalid entries.
	ErrConfigMalformed = errors.New("config malformed")

	// ErrProjectNotRegistered means no registry entry carries the requested name.
	ErrProjectNotRegistered = errors.New("project not registered")

	// ErrHomeUnset means the home directory could not be determined.
	ErrHomeUnset = errors.New("home directory is not set")

	// ErrInvalidProjectName means a name was rejected by ValidateProjectName.
	ErrInvalidProjectName = errors.New("invalid project name")
)

// ConfigError describes a failure tied to a specific config file.
type ConfigError struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// Path is the file the failure relates to.
	Path string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the taxonomy sentinel and the cause to errors.Is/As.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func configErr(kind error, path string, err error) error {
	return &ConfigError{Kind: kind, Path: path, Err: err}
}
