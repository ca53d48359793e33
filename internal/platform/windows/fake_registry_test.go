package windows

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"strconv"
	"testing"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/logging"
)

type registryWrite struct {
	view View
	path string
}

// fakeRegistry is an in-memory Registry. Views absent from available
// behave like a missing key.
type fakeRegistry struct {
	available    map[View][]string
	availableErr map[View]error
	active       map[View]string
	setErr       error
	writes       []registryWrite
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		available:    map[View][]string{},
		availableErr: map[View]error{},
		active:       map[View]string{},
	}
}

func (r *fakeRegistry) AvailableRuntimes(v View) ([]string, error) {
	if err := r.availableErr[v]; err != nil {
		return nil, err
	}
	paths, ok := r.available[v]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return paths, nil
}

func (r *fakeRegistry) ActiveRuntime(v View) (string, error) {
	p, ok := r.active[v]
	if !ok {
		return "", ErrKeyNotFound
	}
	return p, nil
}

func (r *fakeRegistry) SetActiveRuntime(v View, path string) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.writes = append(r.writes, registryWrite{view: v, path: path})
	r.active[v] = path
	return nil
}

func newTestPlatform(t *testing.T, fsys afero.Fs, reg Registry, opts ...Option) *Platform {
	t.Helper()
	base := []Option{
		WithFs(fsys),
		WithRegistry(reg),
		WithLogger(logging.ForTest(t)),
		With64Bit(true),
		WithSystemRoot(`C:\Windows`),
		WithProgramFiles(`C:\Program Files`),
	}
	return New(append(base, opts...)...)
}

func writeManifest(t *testing.T, fsys afero.Fs, path, name, library string) {
	t.Helper()
	body := `{"file_format_version": "1.0.0", "runtime": {"name": ` + strconv.Quote(name) +
		`, "library_path": ` + strconv.Quote(library) + `}}`
	if err := afero.WriteFile(fsys, path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

// elfHeader returns a minimal ELF shared object header of the given class.
func elfHeader(t *testing.T, class elf.Class) []byte {
	t.Helper()
	var ident [elf.EI_NIDENT]byte
	copy(ident[:], elf.ELFMAG)
	ident[elf.EI_CLASS] = byte(class)
	ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	var hdr any
	if class == elf.ELFCLASS64 {
		hdr = &elf.Header64{Ident: ident, Type: uint16(elf.ET_DYN), Machine: uint16(elf.EM_X86_64), Version: uint32(elf.EV_CURRENT), Ehsize: 64}
	} else {
		hdr = &elf.Header32{Ident: ident, Type: uint16(elf.ET_DYN), Machine: uint16(elf.EM_386), Version: uint32(elf.EV_CURRENT), Ehsize: 52}
	}
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, hdr); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
