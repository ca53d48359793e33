package linux

import (
	"github.com/thoreinstein/xrpick/internal/baseruntime"
	"github.com/thoreinstein/xrpick/internal/paths"
	"github.com/thoreinstein/xrpick/internal/platform"
)

// Runtime is a runtime discovered on Linux: one manifest, loaded from its
// canonical path, plus the path it was discovered under.
type Runtime struct {
	base     *baseruntime.BaseRuntime
	origPath string
	platform *Platform
}

var _ platform.Runtime = (*Runtime)(nil)

func (p *Platform) newRuntime(origPath, canonical string) (*Runtime, error) {
	base, err := baseruntime.NewFromFs(p.fs, canonical)
	if err != nil {
		return nil, err
	}
	return &Runtime{base: base, origPath: origPath, platform: p}, nil
}

// Base returns the underlying manifest.
func (r *Runtime) Base() *baseruntime.BaseRuntime { return r.base }

// OriginalPath returns the path the manifest was discovered under, which
// may be a symlink to ManifestPath.
func (r *Runtime) OriginalPath() string { return r.origPath }

// MakeActive points the user's active_runtime.json at this runtime.
func (r *Runtime) MakeActive() error {
	return r.platform.activate(r.base.ManifestPath())
}

func (r *Runtime) Name() string { return r.base.Name() }

func (r *Runtime) Manifests() []string { return []string{r.base.ManifestPath()} }

func (r *Runtime) Libraries() []string { return []string{r.base.ResolveLibraryPath()} }

// Describe renders the manifest and library, prefixed with the discovery
// path when it differs from the canonical one.
func (r *Runtime) Describe() string {
	desc := r.base.Describe()
	if r.origPath != r.base.ManifestPath() {
		return paths.Simplify(r.origPath) + " -> " + desc
	}
	return desc
}
