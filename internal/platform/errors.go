package platform

import (
	"github.com/thoreinstein/xrpick/internal/errors"
)

var (
	// ErrEnumeration means runtime discovery itself failed, for example
	// because a required registry key could not be opened.
	ErrEnumeration = errors.New("failed to enumerate available runtimes")

	// ErrSetActive means an activation attempt failed. Previously
	// enumerated state remains valid.
	ErrSetActive = errors.New("failed to set active runtime")
)

// ManifestError is a non-fatal failure tied to one manifest (or, during
// bitness probing, one library) path.
type ManifestError struct {
	Path string
	Err  error
}

// NewManifestError pairs path with err.
func NewManifestError(path string, err error) ManifestError {
	return ManifestError{Path: path, Err: err}
}

func (e ManifestError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e ManifestError) Unwrap() error {
	return e.Err
}
