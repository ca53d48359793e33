package validator

import (
	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/baseruntime"
	"github.com/thoreinstein/xrpick/internal/bitness"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/manifest"
)

// Manifest fields named in issues.
const (
	FieldFileFormatVersion = "file_format_version"
	FieldName              = "runtime.name"
	FieldLibraryPath       = "runtime.library_path"
	FieldFunctions         = "runtime.functions"
)

// ValidateManifest checks the runtime manifest at path. Problems are
// reported as issues; the returned Result is never nil.
func ValidateManifest(fsys afero.Fs, path string) *Result {
	r := &Result{Path: path, Issues: []Issue{}}

	m, err := manifest.Parse(fsys, path)
	switch {
	case errors.Is(err, manifest.ErrRead):
		r.AddError("", "cannot read manifest", err.Error())
		return r
	case err != nil:
		r.AddError("", "not a valid runtime manifest", err.Error())
		return r
	}

	if !m.FileFormatVersionOK() {
		r.AddError(FieldFileFormatVersion, "unsupported, want "+manifest.SupportedFileFormatVersion, m.FileFormatVersion)
	}
	if m.Runtime.Name == "" {
		r.AddWarning(FieldName, "not set; the runtime is shown under its library name", nil)
	}
	if nf := m.NegotiateFunction(); nf != manifest.DefaultNegotiateFunction {
		r.AddInfo(FieldFunctions, "negotiate function is renamed", nf)
	}

	if m.LibraryPath() == "" {
		r.AddError(FieldLibraryPath, "is empty", nil)
		return r
	}
	if m.LibraryKind() == manifest.DynamicLibrarySearchPath {
		r.AddInfo(FieldLibraryPath, "resolved by the dynamic loader search path", m.LibraryPath())
		return r
	}

	rt := baseruntime.FromManifest(path, *m)
	lib := rt.ResolveLibraryPath()
	if _, err := fsys.Stat(lib); err != nil {
		r.AddError(FieldLibraryPath, "library not found", lib)
		return r
	}

	width, err := bitness.ForRuntime(fsys, rt)
	if err != nil {
		r.AddWarning(FieldLibraryPath, "not a recognized shared library", lib)
		return r
	}
	r.AddInfo(FieldLibraryPath, width.String()+" library", lib)
	return r
}
