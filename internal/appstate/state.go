package appstate

import (
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/pkg/fileutil"
)

// PersistentState is what xrpick remembers between runs.
type PersistentState struct {
	// ExtraPaths are manifests to include in discovery beyond the
	// platform's own locations. Absolute, unique, in insertion order.
	ExtraPaths []string `yaml:"extra_paths"`
}

// LoadState reads the state file at path. A missing file is an empty state.
func LoadState(path string) (*PersistentState, error) {
	return LoadStateFromFs(afero.NewOsFs(), path)
}

// LoadStateFromFs is LoadState on an arbitrary filesystem.
func LoadStateFromFs(fsys afero.Fs, path string) (*PersistentState, error) {
	data, err := fileutil.ReadFileWithLimit(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return &PersistentState{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading state file %s", path)
	}

	var s PersistentState
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parsing state file %s", path)
	}
	s.ExtraPaths = dedup(s.ExtraPaths)
	return &s, nil
}

// Save writes the state to path atomically, creating parent directories.
func (s *PersistentState) Save(path string) error {
	return s.SaveToFs(afero.NewOsFs(), path)
}

// SaveToFs is Save on an arbitrary filesystem.
func (s *PersistentState) SaveToFs(fsys afero.Fs, path string) error {
	if err := fileutil.WriteYAML(fsys, path, s); err != nil {
		return errors.Wrapf(err, "writing state file %s", path)
	}
	return nil
}

// AddExtraPath records p as an absolute path. It reports false if the path
// was already present.
func (s *PersistentState) AddExtraPath(p string) (bool, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return false, errors.Wrapf(err, "resolving %s", p)
	}
	if slices.Contains(s.ExtraPaths, abs) {
		return false, nil
	}
	s.ExtraPaths = append(s.ExtraPaths, abs)
	return true, nil
}

// RemoveExtraPath forgets p, given either as recorded or relative to the
// working directory. It reports whether anything was removed.
func (s *PersistentState) RemoveExtraPath(p string) bool {
	candidates := []string{p}
	if abs, err := filepath.Abs(p); err == nil {
		candidates = append(candidates, abs)
	}
	before := len(s.ExtraPaths)
	s.ExtraPaths = slices.DeleteFunc(s.ExtraPaths, func(e string) bool {
		return slices.Contains(candidates, e)
	})
	return len(s.ExtraPaths) != before
}

func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, p := range in {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
