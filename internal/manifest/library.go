package manifest

import (
	"strings"

	"github.com/thoreinstein/xrpick/internal/paths"
)

// IndirectionMarker separates a manifest path from the library it points at
// in multi-line descriptions.
const IndirectionMarker = "\n    ⮩ "

// LibraryPathKind says how the loader locates a manifest's library.
type LibraryPathKind int

const (
	// DynamicLibrarySearchPath means a bare filename resolved by the OS loader.
	DynamicLibrarySearchPath LibraryPathKind = iota
	// RelativeToManifest means a path joined onto the manifest's directory.
	RelativeToManifest
	// Absolute means a rooted path, either Unix-style or with a drive letter.
	Absolute
)

func (k LibraryPathKind) String() string {
	switch k {
	case DynamicLibrarySearchPath:
		return "search-path"
	case RelativeToManifest:
		return "relative"
	case Absolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// ClassifyLibraryPath classifies a raw library path string. Both '/' and '\'
// count as separators regardless of host OS.
func ClassifyLibraryPath(raw string) LibraryPathKind {
	if !strings.ContainsAny(raw, `/\`) {
		return DynamicLibrarySearchPath
	}
	if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, `\`) {
		return Absolute
	}
	if r := []rune(raw); len(r) > 1 && r[1] == ':' {
		return Absolute
	}
	return RelativeToManifest
}

// Describe renders a manifest path and the library it names for display,
// abbreviating the home directory to "~".
func Describe(manifestPath, libraryPath string) string {
	var lib string
	switch ClassifyLibraryPath(libraryPath) {
	case DynamicLibrarySearchPath:
		lib = libraryPath + " in the dynamic library search path"
	case RelativeToManifest:
		lib = libraryPath + " relative to the manifest"
	default:
		lib = paths.Simplify(libraryPath)
	}
	return paths.Simplify(manifestPath) + IndirectionMarker + lib
}
