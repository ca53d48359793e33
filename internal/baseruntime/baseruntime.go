// Package baseruntime pairs a manifest path with its parsed contents. The
// platform packages build their runtimes out of one or more BaseRuntimes.
package baseruntime

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/manifest"
	"github.com/thoreinstein/xrpick/internal/paths"
)

// BaseRuntime is an immutable (manifest path, parsed manifest) pair.
type BaseRuntime struct {
	manifestPath string
	manifest     manifest.RuntimeManifest
}

// New loads the manifest at path from the host filesystem.
func New(path string) (*BaseRuntime, error) {
	return NewFromFs(afero.NewOsFs(), path)
}

// NewFromFs reads, parses and validates the manifest at path. It does not
// check that the named library exists or is loadable.
func NewFromFs(fsys afero.Fs, path string) (*BaseRuntime, error) {
	m, err := manifest.Parse(fsys, path)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &BaseRuntime{manifestPath: path, manifest: *m}, nil
}

// FromManifest wraps an already-parsed manifest.
func FromManifest(path string, m manifest.RuntimeManifest) *BaseRuntime {
	return &BaseRuntime{manifestPath: path, manifest: m}
}

// ManifestPath returns the path the manifest was loaded from.
func (b *BaseRuntime) ManifestPath() string { return b.manifestPath }

// Manifest returns a copy of the parsed manifest.
func (b *BaseRuntime) Manifest() manifest.RuntimeManifest { return b.manifest }

// LibraryPath returns the library path as written in the manifest.
func (b *BaseRuntime) LibraryPath() string { return b.manifest.LibraryPath() }

// LibraryKind classifies the manifest's library path.
func (b *BaseRuntime) LibraryKind() manifest.LibraryPathKind { return b.manifest.LibraryKind() }

// NegotiateFunctionName returns the loader negotiation symbol.
func (b *BaseRuntime) NegotiateFunctionName() string { return b.manifest.NegotiateFunction() }

// Describe renders the manifest and library for display.
func (b *BaseRuntime) Describe() string {
	return manifest.Describe(b.manifestPath, b.manifest.LibraryPath())
}

// nameHeuristics map library path fragments to display names for manifests
// that do not declare one. First match wins.
var nameHeuristics = []struct {
	fragment string
	name     string
}{
	{"MixedRealityRuntime", "Windows Mixed Reality"},
	{"monado", "Monado"},
	{"VarjoOpenXR", "Varjo"},
	{"vrclient", "SteamVR"},
	{"SteamVR", "SteamVR"},
	{"LibOVRRT", "Oculus"},
	{"oculus", "Oculus"},
	{"wivrn", "WiVRn"},
}

// Name returns a display name: the declared name if any, else a name
// guessed from the library path, else the manifest path. Names are not
// guaranteed unique.
func (b *BaseRuntime) Name() string {
	if b.manifest.Runtime.Name != "" {
		return b.manifest.Runtime.Name
	}
	lib := b.manifest.LibraryPath()
	for _, h := range nameHeuristics {
		if strings.Contains(lib, h.fragment) {
			return h.name
		}
	}
	if b.manifestPath != "" {
		return b.manifestPath
	}
	return lib
}

// ResolveLibraryPath returns the best-effort location of the library.
// Search-path libraries are returned unchanged. Other paths are
// canonicalized when possible and returned uncanonicalized otherwise.
func (b *BaseRuntime) ResolveLibraryPath() string {
	lib := b.manifest.LibraryPath()
	switch b.manifest.LibraryKind() {
	case manifest.DynamicLibrarySearchPath:
		return lib
	case manifest.RelativeToManifest:
		lib = filepath.Join(filepath.Dir(b.manifestPath), lib)
	}
	if canon, err := paths.Canonical(lib); err == nil {
		return canon
	}
	return lib
}
