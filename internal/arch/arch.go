// Package arch catalogs the architecture/ABI tags that may decorate the
// active-runtime marker filename, as in active_runtime.x86_64.json.
package arch

import (
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/thoreinstein/xrpick/internal/paths"
)

// ABI is an architecture/ABI decoration tag.
type ABI string

// Known ABI tags.
const (
	X32         ABI = "x32"
	X86_64      ABI = "x86_64"
	I686        ABI = "i686"
	AArch64     ABI = "aarch64"
	ARMv7aVFP   ABI = "armv7a-vfp"
	ARMv5TE     ABI = "armv5te"
	MIPS64      ABI = "mips64"
	MIPS        ABI = "mips"
	PPC64       ABI = "ppc64"
	PPC64el     ABI = "ppc64el"
	S390x       ABI = "s390x"
	HPPA        ABI = "hppa"
	Alpha       ABI = "alpha"
	IA64        ABI = "ia64"
	M68k        ABI = "m68k"
	RISCV64     ABI = "riscv64"
	SPARC64     ABI = "sparc64"
	LoongArch64 ABI = "loongarch64"
)

var all = []ABI{
	X32, X86_64, I686, AArch64, ARMv7aVFP, ARMv5TE, MIPS64, MIPS, PPC64,
	PPC64el, S390x, HPPA, Alpha, IA64, M68k, RISCV64, SPARC64, LoongArch64,
}

// All returns every known tag in catalog order.
func All() []ABI {
	out := make([]ABI, len(all))
	copy(out, all)
	return out
}

// Parse looks up a tag by name.
func Parse(s string) (ABI, bool) {
	for _, a := range all {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Suffix returns the filename suffix for the tag, e.g. ".x86_64.json".
func (a ABI) Suffix() string {
	return "." + string(a) + ".json"
}

// ActiveRuntimeFilename returns the decorated marker filename for the tag.
func (a ABI) ActiveRuntimeFilename() string {
	return strings.TrimSuffix(paths.ActiveRuntimeFilename, ".json") + a.Suffix()
}

// Filename returns the decorated marker filename for a, or the plain
// active_runtime.json when a is nil.
func Filename(a *ABI) string {
	if a == nil {
		return paths.ActiveRuntimeFilename
	}
	return a.ActiveRuntimeFilename()
}

// IsActiveRuntimeFilename reports whether name is the plain or any
// decorated active-runtime marker filename.
func IsActiveRuntimeFilename(name string) bool {
	if name == paths.ActiveRuntimeFilename {
		return true
	}
	for _, a := range all {
		if name == a.ActiveRuntimeFilename() {
			return true
		}
	}
	return false
}

// Current returns the tag for the running binary, if it has one.
func Current() (ABI, bool) {
	return forGOARCH(runtime.GOARCH, goarm())
}

func goarm() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "GOARM" {
			return s.Value
		}
	}
	return ""
}

func forGOARCH(goarch, goarm string) (ABI, bool) {
	switch goarch {
	case "amd64":
		return X86_64, true
	case "386":
		return I686, true
	case "arm64":
		return AArch64, true
	case "arm":
		// GOARM=7 with hardware float is the armhf ABI
		if strings.HasPrefix(goarm, "7") && !strings.Contains(goarm, "softfloat") {
			return ARMv7aVFP, true
		}
		return ARMv5TE, true
	case "mips64", "mips64le":
		return MIPS64, true
	case "mips", "mipsle":
		return MIPS, true
	case "ppc64":
		return PPC64, true
	case "ppc64le":
		return PPC64el, true
	case "s390x":
		return S390x, true
	case "riscv64":
		return RISCV64, true
	case "loong64":
		return LoongArch64, true
	default:
		return "", false
	}
}
