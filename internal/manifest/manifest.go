package manifest

import (
	"encoding/json"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/pkg/fileutil"
)

// SupportedFileFormatVersion is the only manifest file_format_version accepted.
const SupportedFileFormatVersion = "1.0.0"

// DefaultNegotiateFunction is the loader entry point used when a manifest
// does not rename it.
const DefaultNegotiateFunction = "xrNegotiateLoaderRuntimeInterface"

// Per-manifest failure kinds. Each is attached with errors.Mark, so both the
// kind and the underlying cause remain matchable with errors.Is.
var (
	// ErrRead indicates the manifest file could not be read.
	ErrRead = errors.New("manifest read failed")

	// ErrParse indicates the manifest is not a valid runtime manifest document.
	ErrParse = errors.New("manifest parse failed")

	// ErrVersionMismatch indicates an unsupported file_format_version.
	ErrVersionMismatch = errors.New("unsupported manifest file format version")
)

// Functions is the optional symbol-renaming table of a runtime manifest.
type Functions struct {
	NegotiateLoaderRuntimeInterface string `json:"xrNegotiateLoaderRuntimeInterface,omitempty"`
}

// Runtime is the "runtime" object of a manifest.
type Runtime struct {
	LibraryPath string     `json:"library_path"`
	Name        string     `json:"name,omitempty"`
	Functions   *Functions `json:"functions,omitempty"`
}

// RuntimeManifest is a parsed runtime manifest.
type RuntimeManifest struct {
	FileFormatVersion string  `json:"file_format_version"`
	Runtime           Runtime `json:"runtime"`
}

// wireManifest detects required members that are absent, which a plain
// decode into RuntimeManifest would silently zero.
type wireManifest struct {
	FileFormatVersion *string `json:"file_format_version"`
	Runtime           *struct {
		LibraryPath *string    `json:"library_path"`
		Name        string     `json:"name"`
		Functions   *Functions `json:"functions"`
	} `json:"runtime"`
}

// Parse reads and decodes the manifest at path. It does not check the file
// format version; see FileFormatVersionOK.
func Parse(fsys afero.Fs, path string) (*RuntimeManifest, error) {
	data, err := fileutil.ReadFileWithLimit(fsys, path)
	if err != nil {
		return nil, errors.Mark(err, ErrRead)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return m, nil
}

// Decode decodes manifest JSON. Errors are marked ErrParse.
func Decode(data []byte) (*RuntimeManifest, error) {
	var w wireManifest
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Mark(err, ErrParse)
	}
	switch {
	case w.FileFormatVersion == nil:
		return nil, errors.Mark(errors.New("missing file_format_version"), ErrParse)
	case w.Runtime == nil:
		return nil, errors.Mark(errors.New("missing runtime object"), ErrParse)
	case w.Runtime.LibraryPath == nil:
		return nil, errors.Mark(errors.New("missing runtime.library_path"), ErrParse)
	}
	return &RuntimeManifest{
		FileFormatVersion: *w.FileFormatVersion,
		Runtime: Runtime{
			LibraryPath: *w.Runtime.LibraryPath,
			Name:        w.Runtime.Name,
			Functions:   w.Runtime.Functions,
		},
	}, nil
}

// FileFormatVersionOK reports whether the manifest declares the supported
// file format version.
func (m *RuntimeManifest) FileFormatVersionOK() bool {
	return m.FileFormatVersion == SupportedFileFormatVersion
}

// Validate returns ErrVersionMismatch for unsupported manifests.
func (m *RuntimeManifest) Validate() error {
	if !m.FileFormatVersionOK() {
		return errors.Wrapf(ErrVersionMismatch, "got %q, want %q", m.FileFormatVersion, SupportedFileFormatVersion)
	}
	return nil
}

// LibraryPath returns the library path exactly as written in the manifest.
func (m *RuntimeManifest) LibraryPath() string {
	return m.Runtime.LibraryPath
}

// LibraryKind classifies the manifest's library path.
func (m *RuntimeManifest) LibraryKind() LibraryPathKind {
	return ClassifyLibraryPath(m.Runtime.LibraryPath)
}

// NegotiateFunction returns the loader negotiation symbol, honoring the
// manifest's renaming table.
func (m *RuntimeManifest) NegotiateFunction() string {
	if f := m.Runtime.Functions; f != nil && f.NegotiateLoaderRuntimeInterface != "" {
		return f.NegotiateLoaderRuntimeInterface
	}
	return DefaultNegotiateFunction
}
