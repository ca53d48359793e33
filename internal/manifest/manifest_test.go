package manifest

import (
	"os"
	"testing"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/errors"
)

const monadoManifest = `{
  "file_format_version": "1.0.0",
  "runtime": {
    "name": "Monado",
    "library_path": "../../lib/libopenxr_monado.so",
    "functions": {"xrNegotiateLoaderRuntimeInterface": "monadoNegotiate"},
    "MND_libmonado_path": "ignored"
  }
}`

func TestParse(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/usr/share/openxr/1/monado.json", []byte(monadoManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Parse(fsys, "/usr/share/openxr/1/monado.json")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Runtime.Name != "Monado" {
		t.Errorf("Name = %q, want %q", m.Runtime.Name, "Monado")
	}
	if m.LibraryPath() != "../../lib/libopenxr_monado.so" {
		t.Errorf("LibraryPath() = %q", m.LibraryPath())
	}
	if m.LibraryKind() != RelativeToManifest {
		t.Errorf("LibraryKind() = %v, want %v", m.LibraryKind(), RelativeToManifest)
	}
	if got := m.NegotiateFunction(); got != "monadoNegotiate" {
		t.Errorf("NegotiateFunction() = %q, want %q", got, "monadoNegotiate")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"/bad.json":        `{"file_format_version": "1.0.0", "runtime": `,
		"/no-runtime.json": `{"file_format_version": "1.0.0"}`,
		"/no-library.json": `{"file_format_version": "1.0.0", "runtime": {"name": "x"}}`,
		"/no-version.json": `{"runtime": {"library_path": "x.so"}}`,
		"/wrong-type.json": `{"file_format_version": 1, "runtime": {"library_path": "x.so"}}`,
		"/not-object.json": `[]`,
	}
	for p, c := range files {
		if err := afero.WriteFile(fsys, p, []byte(c), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		path string
		want error
	}{
		{"/missing.json", ErrRead},
		{"/bad.json", ErrParse},
		{"/no-runtime.json", ErrParse},
		{"/no-library.json", ErrParse},
		{"/no-version.json", ErrParse},
		{"/wrong-type.json", ErrParse},
		{"/not-object.json", ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := Parse(fsys, tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestParse_ReadErrorKeepsCause(t *testing.T) {
	_, err := Parse(afero.NewMemMapFs(), "/missing.json")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestValidate_VersionMismatch(t *testing.T) {
	m, err := Decode([]byte(`{"file_format_version": "1.0.1", "runtime": {"library_path": "x.so"}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if m.FileFormatVersionOK() {
		t.Error("FileFormatVersionOK() = true for 1.0.1")
	}
	if err := m.Validate(); !errors.Is(err, ErrVersionMismatch) {
		t.Errorf("Validate() error = %v, want ErrVersionMismatch", err)
	}
}

func TestNegotiateFunction_Default(t *testing.T) {
	m, err := Decode([]byte(`{"file_format_version": "1.0.0", "runtime": {"library_path": "x.so", "functions": {}}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := m.NegotiateFunction(); got != DefaultNegotiateFunction {
		t.Errorf("NegotiateFunction() = %q, want %q", got, DefaultNegotiateFunction)
	}
}
