package windows

import (
	"github.com/thoreinstein/xrpick/internal/errors"
)

// Registry key and value names, relative to HKEY_LOCAL_MACHINE.
const (
	KhronosKey           = `SOFTWARE\Khronos\OpenXR\1`
	AvailableRuntimesKey = KhronosKey + `\AvailableRuntimes`
	ActiveRuntimeValue   = "ActiveRuntime"
)

// View selects one of the two registry views.
type View int

const (
	// Native is the view matching the process's own pointer width.
	Native View = iota
	// Narrow is the 32-bit WOW64 view, which exists only for 64-bit
	// processes.
	Narrow
)

func (v View) String() string {
	if v == Narrow {
		return "narrow"
	}
	return "native"
}

// ErrKeyNotFound means a registry key or value does not exist.
var ErrKeyNotFound = errors.New("registry key not found")

// Registry is the slice of the Windows registry this package uses.
type Registry interface {
	// AvailableRuntimes returns the enabled manifest paths under
	// AvailableRuntimesKey, in registry order. A missing key is
	// ErrKeyNotFound.
	AvailableRuntimes(v View) ([]string, error)

	// ActiveRuntime returns the ActiveRuntime value. A missing key or value
	// is ErrKeyNotFound.
	ActiveRuntime(v View) (string, error)

	// SetActiveRuntime writes the ActiveRuntime value, creating the key if
	// needed.
	SetActiveRuntime(v View, manifestPath string) error
}
