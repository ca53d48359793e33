package platform

import (
	"slices"
	"strings"
)

// Runtime is one logical OpenXR runtime as seen by a platform. It may own
// more than one manifest (one per bit width on Windows).
type Runtime interface {
	// MakeActive makes this runtime the active one. Failures wrap
	// ErrSetActive.
	MakeActive() error

	// Name returns a display name, preferably the manifest's declared name.
	// Names are not guaranteed unique.
	Name() string

	// Manifests returns the manifest paths this runtime owns.
	Manifests() []string

	// Libraries returns the resolved library path of every owned manifest.
	Libraries() []string

	// Describe renders the manifests and libraries for display.
	Describe() string
}

// Platform discovers runtimes and reports which are active on one host
// OS. Exactly one implementation is compiled into a given build; see the
// host package.
//
// R is the platform's runtime type and D its opaque snapshot of active
// runtime data.
type Platform[R Runtime, D any] interface {
	// FindAvailableRuntimes enumerates runtimes, including any manifests
	// named in extraPaths. Per-manifest failures are returned as the second
	// value and do not stop enumeration. A non-nil error wraps
	// ErrEnumeration and means discovery as a whole failed.
	FindAvailableRuntimes(extraPaths []string) ([]R, []ManifestError, error)

	// ActiveRuntimeManifests returns the manifest path(s) currently
	// configured as active, at most one per width or architecture.
	ActiveRuntimeManifests() []string

	// ActiveData takes a snapshot of the active runtime configuration.
	ActiveData() D

	// RuntimeActiveState compares r against a snapshot from ActiveData.
	RuntimeActiveState(r R, d D) ActiveState
}

// Key returns the identity of a runtime: its manifest paths, sorted, joined
// with NUL. Two runtimes with the same key are the same runtime.
func Key(r Runtime) string {
	m := append([]string(nil), r.Manifests()...)
	slices.Sort(m)
	return strings.Join(m, "\x00")
}
