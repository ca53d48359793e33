package linux

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/arch"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/manifest"
	"github.com/thoreinstein/xrpick/internal/paths"
	"github.com/thoreinstein/xrpick/internal/platform"
)

// Platform implements platform.Platform for Linux.
type Platform struct {
	fs         afero.Fs
	configHome string
	configDirs []string
	sysConfDir string
	logger     *slog.Logger
	now        func() time.Time
}

var _ platform.Platform[*Runtime, ActiveData] = (*Platform)(nil)

// Option configures a Platform.
type Option func(*Platform)

// WithConfigHome overrides the XDG config home (default xdg.ConfigHome).
func WithConfigHome(dir string) Option {
	return func(p *Platform) { p.configHome = dir }
}

// WithConfigDirs overrides the XDG system config directories, highest
// priority first (default xdg.ConfigDirs).
func WithConfigDirs(dirs []string) Option {
	return func(p *Platform) { p.configDirs = dirs }
}

// WithSysConfDir overrides the system configuration directory (default /etc).
func WithSysConfDir(dir string) Option {
	return func(p *Platform) { p.sysConfDir = dir }
}

// WithLogger sets the logger used for discovery and activation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Platform) { p.logger = l }
}

// WithClock sets the time source used to name backups.
func WithClock(now func() time.Time) Option {
	return func(p *Platform) { p.now = now }
}

// New returns a Platform rooted at the user's XDG directories.
func New(opts ...Option) *Platform {
	p := &Platform{
		fs:         afero.NewOsFs(),
		configHome: paths.ConfigHome(),
		configDirs: paths.ConfigDirs(),
		sysConfDir: paths.SysConfDir,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ManifestDirs returns the directories scanned for manifests, in scan order:
// XDG config directories highest priority first, then the system directory.
func (p *Platform) ManifestDirs() []string {
	dirs := paths.SearchDirs(p.configHome, p.configDirs)
	out := make([]string, 0, len(dirs)+1)
	for _, d := range dirs {
		out = append(out, filepath.Join(d, paths.Suffix()))
	}
	return append(out, filepath.Join(p.sysConfDir, paths.Suffix()))
}

// ActiveRuntimePath is where MakeActive places the active-runtime symlink.
func (p *Platform) ActiveRuntimePath() string {
	return filepath.Join(p.configHome, paths.Suffix(), paths.ActiveRuntimeFilename)
}

type candidate struct {
	path  string
	extra bool
}

// FindAvailableRuntimes enumerates manifests from the XDG directories, the
// system directory, the active runtime, and extraPaths, in that order. A
// manifest reachable by several paths (for example through a symlink) is
// reported once, under the first path that reached it. It never returns a
// non-nil error.
func (p *Platform) FindAvailableRuntimes(extraPaths []string) ([]*Runtime, []platform.ManifestError, error) {
	var candidates []candidate
	for _, dir := range p.ManifestDirs() {
		for _, path := range p.listManifests(dir) {
			candidates = append(candidates, candidate{path: path})
		}
	}
	if active := p.activeManifest(); active != "" {
		candidates = append(candidates, candidate{path: active})
	}
	for _, path := range extraPaths {
		candidates = append(candidates, candidate{path: path, extra: true})
	}

	known := make(map[string]struct{}, len(candidates))
	var (
		runtimes []*Runtime
		errs     []platform.ManifestError
	)
	for _, c := range candidates {
		canonical, err := paths.Canonical(c.path)
		if err != nil {
			if c.extra {
				errs = append(errs, platform.NewManifestError(c.path, errors.Mark(err, manifest.ErrRead)))
			} else {
				p.logger.Debug("skipping unresolvable manifest", "path", c.path, "error", err)
			}
			continue
		}
		if _, ok := known[c.path]; ok {
			continue
		}
		if _, ok := known[canonical]; ok {
			continue
		}

		rt, err := p.newRuntime(c.path, canonical)
		if err != nil {
			p.logger.Warn("failed to load runtime manifest", "path", c.path, "canonical", canonical, "error", err)
			errs = append(errs, platform.NewManifestError(c.path, err))
			continue
		}
		runtimes = append(runtimes, rt)
		known[c.path] = struct{}{}
		known[canonical] = struct{}{}
	}
	p.logger.Debug("runtime enumeration complete", "runtimes", len(runtimes), "errors", len(errs))
	return runtimes, errs, nil
}

// listManifests returns the regular files and symlinks in dir, excluding
// active-runtime markers. A missing directory yields nothing.
func (p *Platform) listManifests(dir string) []string {
	entries, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug("cannot list manifest directory", "dir", dir, "error", err)
		}
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.Mode().IsRegular() && e.Mode()&os.ModeSymlink == 0 {
			continue
		}
		if arch.IsActiveRuntimeFilename(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out
}

// activeManifest returns the canonical path of the first resolvable
// active-runtime marker, or "" if none.
func (p *Platform) activeManifest() string {
	for _, dir := range p.ManifestDirs() {
		candidate := filepath.Join(dir, paths.ActiveRuntimeFilename)
		info, err := p.fs.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		canonical, err := paths.Canonical(candidate)
		if err != nil {
			continue
		}
		return canonical
	}
	return ""
}

// ActiveData is a snapshot of the active runtime: the canonical path of
// its manifest, or "" when none is configured.
type ActiveData struct {
	Manifest string
}

// ActiveRuntimeManifests returns the canonical active manifest path, if any.
func (p *Platform) ActiveRuntimeManifests() []string {
	if active := p.activeManifest(); active != "" {
		return []string{active}
	}
	return nil
}

// ActiveData snapshots the active runtime.
func (p *Platform) ActiveData() ActiveData {
	return ActiveData{Manifest: p.activeManifest()}
}

// RuntimeActiveState reports ActiveIndependentRuntime when r's canonical
// manifest path is the active one.
func (p *Platform) RuntimeActiveState(r *Runtime, d ActiveData) platform.ActiveState {
	if d.Manifest != "" && d.Manifest == r.base.ManifestPath() {
		return platform.ActiveIndependentRuntime
	}
	return platform.NotActive
}
