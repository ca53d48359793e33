//go:build !windows

package host

import (
	"log/slog"

	"github.com/thoreinstein/xrpick/internal/arch"
	"github.com/thoreinstein/xrpick/internal/platform/linux"
)

// OS names the platform implementation compiled into this build.
const OS = "linux"

type (
	Platform   = linux.Platform
	Runtime    = linux.Runtime
	ActiveData = linux.ActiveData
)

// New returns the Linux platform rooted at the user's XDG directories.
func New(logger *slog.Logger) *Platform {
	return linux.New(linux.WithLogger(logger))
}

// Manifests returns r's single manifest, labeled with the current ABI.
func Manifests(r *Runtime) []LabeledManifest {
	label := "native"
	if abi, ok := arch.Current(); ok {
		label = string(abi)
	}
	return []LabeledManifest{{Label: label, Base: r.Base()}}
}

// Backups lists relocated active-runtime files, newest first.
func Backups(p *Platform) ([]Backup, error) {
	found, err := p.Backups()
	if err != nil {
		return nil, err
	}
	out := make([]Backup, len(found))
	for i, b := range found {
		out[i] = Backup{Path: b.Path, Time: b.Time}
	}
	return out, nil
}
