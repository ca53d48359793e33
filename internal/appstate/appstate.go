// Package appstate holds the runtime list a front end displays and keeps
// its order stable across refreshes.
package appstate

import (
	"github.com/thoreinstein/xrpick/internal/platform"
)

// AppState is the result of one or more discovery passes on a platform.
type AppState[R platform.Runtime, D any] struct {
	Runtimes   []R
	Errors     []platform.ManifestError
	ActiveData D
}

// New runs discovery on p, including extraPaths, and snapshots the active
// runtime configuration.
func New[R platform.Runtime, D any](p platform.Platform[R, D], extraPaths []string) (*AppState[R, D], error) {
	runtimes, errs, err := p.FindAvailableRuntimes(extraPaths)
	if err != nil {
		return nil, err
	}
	return &AppState[R, D]{
		Runtimes:   runtimes,
		Errors:     errs,
		ActiveData: p.ActiveData(),
	}, nil
}

// Refresh re-runs discovery and merges the result into s. Runtimes already
// listed keep their position and newly found ones are appended. Errors and
// active data are replaced. On failure s is left unchanged.
func (s *AppState[R, D]) Refresh(p platform.Platform[R, D], extraPaths []string) error {
	fresh, err := New(p, extraPaths)
	if err != nil {
		return err
	}
	s.Runtimes = Merge(s.Runtimes, fresh.Runtimes)
	s.Errors = fresh.Errors
	s.ActiveData = fresh.ActiveData
	return nil
}

// ActiveState reports whether r is active according to the last snapshot.
func (s *AppState[R, D]) ActiveState(p platform.Platform[R, D], r R) platform.ActiveState {
	return p.RuntimeActiveState(r, s.ActiveData)
}

// Merge concatenates existing and found and drops every runtime whose
// manifest set was already seen, keeping the first occurrence.
func Merge[R platform.Runtime](existing, found []R) []R {
	all := make([]R, 0, len(existing)+len(found))
	all = append(all, existing...)
	all = append(all, found...)

	seen := make(map[string]struct{}, len(all))
	out := all[:0]
	for _, r := range all {
		k := platform.Key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
