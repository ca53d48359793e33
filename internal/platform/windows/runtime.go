package windows

import (
	"strconv"
	"strings"

	"github.com/thoreinstein/xrpick/internal/baseruntime"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/platform"
)

// Runtime is a logical runtime with a manifest for the native width, the
// narrow width, or both.
type Runtime struct {
	native   *baseruntime.BaseRuntime
	narrow   *baseruntime.BaseRuntime
	platform *Platform
}

var _ platform.Runtime = (*Runtime)(nil)

// Native returns the native-width manifest, or nil.
func (r *Runtime) Native() *baseruntime.BaseRuntime { return r.native }

// Narrow returns the 32-bit WOW64 manifest, or nil.
func (r *Runtime) Narrow() *baseruntime.BaseRuntime { return r.narrow }

func (r *Runtime) bases() []*baseruntime.BaseRuntime {
	out := make([]*baseruntime.BaseRuntime, 0, 2)
	if r.native != nil {
		out = append(out, r.native)
	}
	if r.narrow != nil {
		out = append(out, r.narrow)
	}
	return out
}

// MakeActive sets the ActiveRuntime value for each width this runtime
// provides. The other width is left untouched.
func (r *Runtime) MakeActive() error {
	set := func(v View, b *baseruntime.BaseRuntime) error {
		if b == nil {
			return nil
		}
		if err := r.platform.reg.SetActiveRuntime(v, b.ManifestPath()); err != nil {
			return errors.Mark(errors.Wrapf(err, "activating %s for the %s view", b.ManifestPath(), v), platform.ErrSetActive)
		}
		r.platform.logger.Debug("set active runtime", "view", v.String(), "manifest", b.ManifestPath())
		return nil
	}
	if err := set(Native, r.native); err != nil {
		return err
	}
	return set(Narrow, r.narrow)
}

// Name prefers the native manifest's name.
func (r *Runtime) Name() string {
	return r.bases()[0].Name()
}

func (r *Runtime) Manifests() []string {
	bases := r.bases()
	out := make([]string, len(bases))
	for i, b := range bases {
		out[i] = b.ManifestPath()
	}
	return out
}

func (r *Runtime) Libraries() []string {
	bases := r.bases()
	out := make([]string, len(bases))
	for i, b := range bases {
		out[i] = b.ResolveLibraryPath()
	}
	return out
}

// Describe lists each width's manifest and library on its own line.
func (r *Runtime) Describe() string {
	var lines []string
	if r.native != nil {
		lines = append(lines, strconv.Itoa(r.platform.nativeBits())+"-bit: "+r.native.Describe())
	}
	if r.narrow != nil {
		lines = append(lines, "32-bit: "+r.narrow.Describe())
	}
	return strings.Join(lines, "\n")
}
