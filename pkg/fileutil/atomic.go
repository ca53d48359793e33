// Package fileutil provides bounded reads and atomic writes on top of an
// afero filesystem.
package fileutil

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/paths"
)

// DefaultFilePerm is the mode of files written by WriteYAML.
const DefaultFilePerm os.FileMode = 0o600

// WriteFile replaces path with data through a sibling temp file and a
// rename, so readers see either the old or the new content. Missing parent
// directories are created with paths.DefaultDirPerm.
func WriteFile(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, paths.DefaultDirPerm); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	name := tmp.Name()

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = fsys.Chmod(name, perm)
	}
	if err == nil {
		err = fsys.Rename(name, path)
	}
	if err != nil {
		_ = fsys.Remove(name)
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// WriteYAML encodes v with two-space indentation and writes it with
// WriteFile and DefaultFilePerm.
func WriteYAML(fsys afero.Fs, path string, v any) (err error) {
	// yaml.v3 panics on values it cannot represent, such as channels
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("encoding %s: %v", path, r)
		}
	}()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	return WriteFile(fsys, path, buf.Bytes(), DefaultFilePerm)
}
