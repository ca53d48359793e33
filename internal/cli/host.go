// Package cli provides CLI-specific types and utilities for the xrpick
// command.
package cli

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/appstate"
	"github.com/thoreinstein/xrpick/internal/bitness"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/host"
	"github.com/thoreinstein/xrpick/internal/platform"
)

// ErrNotLoaded is returned when runtimes are accessed before Refresh.
var ErrNotLoaded = errors.New("runtimes have not been enumerated")

// RuntimeInfo is a platform-neutral view of one runtime for display.
// Index is 1-based and stable across refreshes within one Host.
type RuntimeInfo struct {
	Index       int                  `json:"index" yaml:"index" toml:"index"`
	Name        string               `json:"name" yaml:"name" toml:"name"`
	State       platform.ActiveState `json:"state" yaml:"state" toml:"state"`
	Description string               `json:"description" yaml:"description" toml:"description"`
	Manifests   []string             `json:"manifests" yaml:"manifests" toml:"manifests"`
	Libraries   []string             `json:"libraries" yaml:"libraries" toml:"libraries"`
}

// ManifestDetail describes one manifest of a runtime in depth.
type ManifestDetail struct {
	Label             string `json:"label" yaml:"label" toml:"label"`
	Path              string `json:"path" yaml:"path" toml:"path"`
	FileFormatVersion string `json:"file_format_version" yaml:"file_format_version" toml:"file_format_version"`
	LibraryPath       string `json:"library_path" yaml:"library_path" toml:"library_path"`
	LibraryKind       string `json:"library_kind" yaml:"library_kind" toml:"library_kind"`
	ResolvedLibrary   string `json:"resolved_library" yaml:"resolved_library" toml:"resolved_library"`
	Bitness           string `json:"bitness" yaml:"bitness" toml:"bitness"`
	NegotiateFunction string `json:"negotiate_function" yaml:"negotiate_function" toml:"negotiate_function"`
}

// Host is the consumer interface CLI commands use to reach the platform
// compiled into this build.
type Host interface {
	// OS names the platform implementation.
	OS() string

	// Refresh enumerates runtimes, merging with any earlier result so
	// indices stay stable.
	Refresh(extraPaths []string) error

	// Runtimes returns the runtimes from the last Refresh.
	Runtimes() []RuntimeInfo

	// Errors returns the non-fatal manifest errors from the last Refresh.
	Errors() []platform.ManifestError

	// ActiveManifests returns the manifest paths configured as active.
	ActiveManifests() []string

	// Activate makes the runtime at the 1-based index active and
	// re-reads the active configuration.
	Activate(index int) error

	// Details describes every manifest of the runtime at index.
	Details(index int) ([]ManifestDetail, error)

	// Backups lists active-runtime files moved aside by activation.
	Backups() ([]host.Backup, error)

	// PlatformRuntimes exposes the runtimes from the last Refresh.
	PlatformRuntimes() []platform.Runtime
}

// session adapts a platform and its AppState to Host.
type session[R platform.Runtime, D any] struct {
	os        string
	fs        afero.Fs
	platform  platform.Platform[R, D]
	state     *appstate.AppState[R, D]
	manifests func(R) []host.LabeledManifest
	backups   func() ([]host.Backup, error)
}

var _ Host = (*session[*host.Runtime, host.ActiveData])(nil)

// NewHost returns the Host for the platform compiled into this build.
func NewHost(logger *slog.Logger) Host {
	p := host.New(logger)
	return &session[*host.Runtime, host.ActiveData]{
		os:        host.OS,
		fs:        afero.NewOsFs(),
		platform:  p,
		manifests: host.Manifests,
		backups:   func() ([]host.Backup, error) { return host.Backups(p) },
	}
}

func (s *session[R, D]) OS() string { return s.os }

func (s *session[R, D]) Refresh(extraPaths []string) error {
	if s.state == nil {
		st, err := appstate.New(s.platform, extraPaths)
		if err != nil {
			return err
		}
		s.state = st
		return nil
	}
	return s.state.Refresh(s.platform, extraPaths)
}

func (s *session[R, D]) Runtimes() []RuntimeInfo {
	if s.state == nil {
		return nil
	}
	out := make([]RuntimeInfo, len(s.state.Runtimes))
	for i, r := range s.state.Runtimes {
		out[i] = RuntimeInfo{
			Index:       i + 1,
			Name:        r.Name(),
			State:       s.state.ActiveState(s.platform, r),
			Description: r.Describe(),
			Manifests:   r.Manifests(),
			Libraries:   r.Libraries(),
		}
	}
	return out
}

func (s *session[R, D]) Errors() []platform.ManifestError {
	if s.state == nil {
		return nil
	}
	return s.state.Errors
}

func (s *session[R, D]) ActiveManifests() []string {
	return s.platform.ActiveRuntimeManifests()
}

func (s *session[R, D]) runtime(index int) (R, error) {
	var zero R
	if s.state == nil {
		return zero, ErrNotLoaded
	}
	if index < 1 || index > len(s.state.Runtimes) {
		return zero, errors.Wrapf(errors.ErrInvalidSelection, "%d is out of range [1-%d]", index, len(s.state.Runtimes))
	}
	return s.state.Runtimes[index-1], nil
}

func (s *session[R, D]) Activate(index int) error {
	r, err := s.runtime(index)
	if err != nil {
		return err
	}
	if err := r.MakeActive(); err != nil {
		return err
	}
	s.state.ActiveData = s.platform.ActiveData()
	return nil
}

func (s *session[R, D]) Details(index int) ([]ManifestDetail, error) {
	r, err := s.runtime(index)
	if err != nil {
		return nil, err
	}
	labeled := s.manifests(r)
	out := make([]ManifestDetail, len(labeled))
	for i, lm := range labeled {
		b := lm.Base
		width, err := bitness.ForRuntime(s.fs, b)
		bits := width.String()
		if err != nil {
			bits = "unknown (" + err.Error() + ")"
		}
		out[i] = ManifestDetail{
			Label:             lm.Label,
			Path:              b.ManifestPath(),
			FileFormatVersion: b.Manifest().FileFormatVersion,
			LibraryPath:       b.LibraryPath(),
			LibraryKind:       b.LibraryKind().String(),
			ResolvedLibrary:   b.ResolveLibraryPath(),
			Bitness:           bits,
			NegotiateFunction: b.NegotiateFunctionName(),
		}
	}
	return out, nil
}

func (s *session[R, D]) Backups() ([]host.Backup, error) {
	return s.backups()
}

func (s *session[R, D]) PlatformRuntimes() []platform.Runtime {
	if s.state == nil {
		return nil
	}
	out := make([]platform.Runtime, len(s.state.Runtimes))
	for i, r := range s.state.Runtimes {
		out[i] = r
	}
	return out
}
