// Package bitness classifies the runtime library a manifest points at as
// 32-bit, 64-bit, or universal (resolved through the loader search path).
package bitness

import (
	"debug/elf"
	"debug/macho"
	"debug/pe"
	"io"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/baseruntime"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/manifest"
)

// Bitness is the pointer width of a runtime library.
type Bitness int

const (
	// Universal libraries are located by the OS loader per architecture,
	// or ship several architectures in one file.
	Universal Bitness = iota
	// BitWidth32 is a 32-bit library.
	BitWidth32
	// BitWidth64 is a 64-bit library.
	BitWidth64
)

func (b Bitness) String() string {
	switch b {
	case BitWidth32:
		return "32-bit"
	case BitWidth64:
		return "64-bit"
	default:
		return "universal"
	}
}

// ErrBinaryLoad indicates the runtime library could not be read or is not a
// recognized executable format.
var ErrBinaryLoad = errors.New("runtime binary could not be loaded")

// ForManifest loads the manifest at manifestPath and classifies its library.
func ForManifest(fsys afero.Fs, manifestPath string) (Bitness, error) {
	rt, err := baseruntime.NewFromFs(fsys, manifestPath)
	if err != nil {
		return Universal, err
	}
	return ForRuntime(fsys, rt)
}

// ForRuntime classifies the library of an already-loaded runtime.
func ForRuntime(fsys afero.Fs, rt *baseruntime.BaseRuntime) (Bitness, error) {
	if rt.LibraryKind() == manifest.DynamicLibrarySearchPath {
		return Universal, nil
	}
	lib := rt.ResolveLibraryPath()
	f, err := fsys.Open(lib)
	if err != nil {
		return Universal, errors.Mark(errors.Wrapf(err, "opening %s", lib), ErrBinaryLoad)
	}
	defer f.Close()

	b, ok := classify(f)
	if !ok {
		return Universal, errors.Wrapf(ErrBinaryLoad, "%s is not an ELF, PE or Mach-O binary", lib)
	}
	return b, nil
}

func classify(r io.ReaderAt) (Bitness, bool) {
	if f, err := elf.NewFile(r); err == nil {
		if f.Class == elf.ELFCLASS64 {
			return BitWidth64, true
		}
		return BitWidth32, true
	}
	if f, err := pe.NewFile(r); err == nil {
		switch f.OptionalHeader.(type) {
		case *pe.OptionalHeader64:
			return BitWidth64, true
		case *pe.OptionalHeader32:
			return BitWidth32, true
		}
		switch f.Machine {
		case pe.IMAGE_FILE_MACHINE_AMD64, pe.IMAGE_FILE_MACHINE_ARM64, pe.IMAGE_FILE_MACHINE_IA64:
			return BitWidth64, true
		}
		return BitWidth32, true
	}
	if f, err := macho.NewFile(r); err == nil {
		if f.Magic == macho.Magic64 {
			return BitWidth64, true
		}
		return BitWidth32, true
	}
	if _, err := macho.NewFatFile(r); err == nil {
		return Universal, true
	}
	return Universal, false
}
