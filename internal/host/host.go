// Package host selects the platform implementation for the build target.
// host_unix.go serves every non-Windows build and host_windows.go serves
// Windows; both export the same names.
package host

import (
	"time"

	"github.com/thoreinstein/xrpick/internal/baseruntime"
)

// LabeledManifest is one of a runtime's manifests with a short label
// naming the width or architecture it serves.
type LabeledManifest struct {
	Label string
	Base  *baseruntime.BaseRuntime
}

// Backup is an active-runtime file moved aside by a previous activation.
type Backup struct {
	Path string
	Time time.Time
}
