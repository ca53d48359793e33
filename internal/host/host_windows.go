//go:build windows

package host

import (
	"log/slog"
	"strconv"

	"github.com/thoreinstein/xrpick/internal/platform/windows"
)

// OS names the platform implementation compiled into this build.
const OS = "windows"

type (
	Platform   = windows.Platform
	Runtime    = windows.Runtime
	ActiveData = windows.ActiveData
)

// New returns the Windows platform backed by the system registry.
func New(logger *slog.Logger) *Platform {
	return windows.New(windows.WithLogger(logger))
}

// Manifests returns r's manifests, native width first.
func Manifests(r *Runtime) []LabeledManifest {
	var out []LabeledManifest
	if b := r.Native(); b != nil {
		out = append(out, LabeledManifest{Label: strconv.Itoa(strconv.IntSize) + "-bit", Base: b})
	}
	if b := r.Narrow(); b != nil {
		out = append(out, LabeledManifest{Label: "32-bit", Base: b})
	}
	return out
}

// Backups is always empty on Windows: activation only rewrites registry
// values.
func Backups(*Platform) ([]Backup, error) {
	return nil, nil
}
