package pctoolbox

import (
	"errors"
	"fmt"
)

// Common errors returned by the settings resolver and utilities.
var (
	// ErrMissingArguments is returned when only some of the three required
	// credential arguments (username, password, api) are supplied.
	ErrMissingArguments = errors.New("access key (--username), secret key (--password), and API/UI base URL (--api) are all required together")

	// ErrSettingsNotFound is returned when the settings file does not exist.
	ErrSettingsNotFound = errors.New("settings file not found")

	// ErrUserDeclined is returned when an interactive confirmation prompt
	// is answered with anything other than "y" or "yes".
	ErrUserDeclined = errors.New("confirmation declined")
)

// NotFoundError reports a missing settings file.
// Extractable via errors.As(); matches ErrSettingsNotFound via errors.Is().
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find settings file %s (run pc configure first)", e.Path)
}

func (e *NotFoundError) Unwrap() error { return ErrSettingsNotFound }

// ParseError is returned when a file exists but does not contain
// well-formed data. Supports Unwrap().
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("settings file %s exists but cannot be read: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// VersionError is returned when a settings file declares a version other
// than the one this release writes.
type VersionError struct {
	Path  string
	Found int
	Want  int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("settings file %s is out-of-date (version %d, want %d): rerun pc configure", e.Path, e.Found, e.Want)
}

// IOError wraps a file read/write failure. Supports Unwrap().
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
