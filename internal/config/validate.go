package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/xrpick/internal/errors"
)

// Format is a machine- or human-readable rendering of the runtime list.
type Format string

// Supported list formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// Formats returns every supported list format.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML, FormatTOML}
}

// ValidFormat reports whether s names a supported list format.
func ValidFormat(s string) bool {
	return slices.Contains(Formats(), Format(s))
}

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a config version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidFormat indicates an unrecognized list format.
	ErrInvalidFormat = errors.New("invalid list format")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrUnknownKey indicates a configuration key that does not exist.
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrInvalidValue indicates a value of the wrong type for its key.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, errors.Mark(errors.Newf("unsupported config version: %d", cfg.Version), ErrUnsupportedVersion))
	}

	if !ValidFormat(cfg.ListFormat) {
		errs = append(errs, &FieldError{Field: KeyListFormat, Value: cfg.ListFormat, Err: ErrInvalidFormat})
	}

	if err := validatePath(cfg.StateFile); err != nil {
		errs = append(errs, &FieldError{Field: KeyStateFile, Value: cfg.StateFile, Err: err})
	}

	return errs
}

// validatePath checks that a path is syntactically usable. Existence is
// not checked.
func validatePath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	if cleaned := filepath.Clean(path); cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}

// FieldError is a validation failure of one configuration field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
