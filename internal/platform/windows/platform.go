package windows

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/baseruntime"
	"github.com/thoreinstein/xrpick/internal/bitness"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/platform"
)

// Well-known runtimes that do not register themselves under
// AvailableRuntimes.
const (
	mixedRealityManifest = "MixedRealityRuntime.json"
	varjoManifest        = `Varjo\varjo-openxr\VarjoOpenXR.json`
)

// Platform implements platform.Platform for Windows.
type Platform struct {
	fs           afero.Fs
	reg          Registry
	logger       *slog.Logger
	is64         bool
	systemRoot   string
	programFiles string
}

var _ platform.Platform[*Runtime, ActiveData] = (*Platform)(nil)

// Option configures a Platform.
type Option func(*Platform)

// WithFs sets the filesystem manifests and libraries are read from.
func WithFs(fsys afero.Fs) Option {
	return func(p *Platform) { p.fs = fsys }
}

// WithRegistry replaces the system registry.
func WithRegistry(r Registry) Option {
	return func(p *Platform) { p.reg = r }
}

// WithLogger sets the logger used for discovery and activation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Platform) { p.logger = l }
}

// With64Bit overrides whether the process is treated as 64-bit, which
// decides whether the narrow view exists.
func With64Bit(is64 bool) Option {
	return func(p *Platform) { p.is64 = is64 }
}

// WithSystemRoot overrides %SystemRoot%.
func WithSystemRoot(dir string) Option {
	return func(p *Platform) { p.systemRoot = dir }
}

// WithProgramFiles overrides %ProgramFiles%.
func WithProgramFiles(dir string) Option {
	return func(p *Platform) { p.programFiles = dir }
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// New returns a Platform backed by the system registry.
func New(opts ...Option) *Platform {
	p := &Platform{
		fs:           afero.NewOsFs(),
		reg:          defaultRegistry(),
		logger:       slog.Default(),
		is64:         strconv.IntSize == 64,
		systemRoot:   envOr("SystemRoot", `C:\Windows`),
		programFiles: envOr("ProgramFiles", `C:\Program Files`),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Platform) nativeBits() int {
	if p.is64 {
		return 64
	}
	return 32
}

func winJoin(dir string, elem ...string) string {
	return strings.TrimRight(dir, `\/`) + `\` + strings.Join(elem, `\`)
}

// FindAvailableRuntimes enumerates registry-declared runtimes, then the
// well-known unregistered ones, then extraPaths. Only failure to open the
// native AvailableRuntimes key for a reason other than its absence is
// fatal.
func (p *Platform) FindAvailableRuntimes(extraPaths []string) ([]*Runtime, []platform.ManifestError, error) {
	nativePaths, err := p.reg.AvailableRuntimes(Native)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		p.logger.Debug("no native AvailableRuntimes key")
		nativePaths = nil
	case err != nil:
		return nil, nil, errors.Mark(errors.Wrap(err, "enumerating native runtimes"), platform.ErrEnumeration)
	}

	var narrowPaths []string
	if p.is64 {
		narrowPaths, err = p.reg.AvailableRuntimes(Narrow)
		if err != nil {
			p.logger.Debug("no usable narrow AvailableRuntimes key", "error", err)
			narrowPaths = nil
		}
	}

	e := &enumeration{p: p, coll: NewRuntimeCollection(p)}
	e.addRegistered(nativePaths, narrowPaths)
	e.addWellKnown()
	e.addExtra(extraPaths)

	p.logger.Debug("runtime enumeration complete", "runtimes", len(e.coll.Runtimes()), "errors", len(e.errs))
	return e.coll.Runtimes(), e.errs, nil
}

type enumeration struct {
	p    *Platform
	coll *RuntimeCollection
	errs []platform.ManifestError
}

func (e *enumeration) fail(path string, err error) {
	e.p.logger.Warn("failed to load runtime manifest", "path", path, "error", err)
	e.errs = append(e.errs, platform.NewManifestError(path, err))
}

func (e *enumeration) load(path string) *baseruntime.BaseRuntime {
	b, err := baseruntime.NewFromFs(e.p.fs, path)
	if err != nil {
		e.fail(path, err)
		return nil
	}
	return b
}

// addRegistered pairs each native path with the first unpaired narrow path
// in the same directory. Leftover narrow paths stand alone.
func (e *enumeration) addRegistered(nativePaths, narrowPaths []string) {
	paired := make([]bool, len(narrowPaths))
	for _, np := range nativePaths {
		if e.coll.Claimed(np) {
			continue
		}
		native := e.load(np)
		var narrow *baseruntime.BaseRuntime
		for j, wp := range narrowPaths {
			if paired[j] || parentKey(wp) != parentKey(np) {
				continue
			}
			paired[j] = true
			narrow = e.load(wp)
			break
		}
		e.coll.Add(native, narrow)
	}
	for j, wp := range narrowPaths {
		if paired[j] || e.coll.Claimed(wp) {
			continue
		}
		e.coll.Add(nil, e.load(wp))
	}
}

// probe loads path if it exists. Absence is not an error.
func (e *enumeration) probe(path string) *baseruntime.BaseRuntime {
	if e.coll.Claimed(path) {
		return nil
	}
	if _, err := e.p.fs.Stat(path); err != nil {
		return nil
	}
	return e.load(path)
}

func (e *enumeration) addWellKnown() {
	wmrNative := e.probe(winJoin(e.p.systemRoot, "System32", mixedRealityManifest))
	var wmrNarrow *baseruntime.BaseRuntime
	if e.p.is64 {
		wmrNarrow = e.probe(winJoin(e.p.systemRoot, "SysWOW64", mixedRealityManifest))
	}
	e.coll.Add(wmrNative, wmrNarrow)

	if e.p.is64 {
		e.coll.Add(e.probe(winJoin(e.p.programFiles, varjoManifest)), nil)
	}
}

// addExtra places each caller-supplied manifest by the bitness of its
// library: native width, narrow width, or both for search-path libraries.
func (e *enumeration) addExtra(extraPaths []string) {
	for _, path := range extraPaths {
		if e.coll.Claimed(path) {
			continue
		}
		b := e.load(path)
		if b == nil {
			continue
		}
		width, err := bitness.ForRuntime(e.p.fs, b)
		if err != nil {
			e.fail(path, err)
			continue
		}
		switch {
		case width == bitness.Universal:
			if e.p.is64 {
				e.coll.Add(b, b)
			} else {
				e.coll.Add(b, nil)
			}
		case width == bitness.BitWidth64 && e.p.is64, width == bitness.BitWidth32 && !e.p.is64:
			e.coll.Add(b, nil)
		case width == bitness.BitWidth32 && e.p.is64:
			e.coll.Add(nil, b)
		default:
			e.fail(path, errors.Newf("%s runtime cannot be used by a %d-bit process", width, e.p.nativeBits()))
		}
	}
}

// ActiveData is the ActiveRuntime value of each view, "" when unset.
type ActiveData struct {
	Native string
	Narrow string
}

func (p *Platform) readActive(v View) string {
	if v == Narrow && !p.is64 {
		return ""
	}
	path, err := p.reg.ActiveRuntime(v)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			p.logger.Debug("cannot read active runtime", "view", v.String(), "error", err)
		}
		return ""
	}
	return path
}

// ActiveData reads both views' ActiveRuntime values.
func (p *Platform) ActiveData() ActiveData {
	return ActiveData{Native: p.readActive(Native), Narrow: p.readActive(Narrow)}
}

// ActiveRuntimeManifests returns the non-empty ActiveRuntime values,
// native first.
func (p *Platform) ActiveRuntimeManifests() []string {
	d := p.ActiveData()
	var out []string
	for _, path := range []string{d.Native, d.Narrow} {
		if path != "" {
			out = append(out, path)
		}
	}
	return out
}

func matches(active string, b *baseruntime.BaseRuntime) bool {
	return active != "" && b != nil && pathKey(active) == pathKey(b.ManifestPath())
}

// RuntimeActiveState combines per-view matches into an ActiveState.
func (p *Platform) RuntimeActiveState(r *Runtime, d ActiveData) platform.ActiveState {
	return platform.FromWidths(matches(d.Native, r.native), matches(d.Narrow, r.narrow))
}
