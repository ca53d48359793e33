//go:build windows

package windows

import (
	"strconv"

	"golang.org/x/sys/windows/registry"

	"github.com/thoreinstein/xrpick/internal/errors"
)

// SystemRegistry reads and writes HKEY_LOCAL_MACHINE.
type SystemRegistry struct{}

func defaultRegistry() Registry { return SystemRegistry{} }

func viewAccess(v View) uint32 {
	if v == Narrow || strconv.IntSize == 32 {
		return registry.WOW64_32KEY
	}
	return registry.WOW64_64KEY
}

func translate(err error, what string) error {
	if errors.Is(err, registry.ErrNotExist) {
		return errors.Wrap(ErrKeyNotFound, what)
	}
	return errors.Wrap(err, what)
}

// AvailableRuntimes lists values of AvailableRuntimesKey whose DWORD data
// is zero.
func (SystemRegistry) AvailableRuntimes(v View) ([]string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, AvailableRuntimesKey, registry.QUERY_VALUE|viewAccess(v))
	if err != nil {
		return nil, translate(err, `opening HKLM\`+AvailableRuntimesKey)
	}
	defer k.Close()

	names, err := k.ReadValueNames(0)
	if err != nil {
		return nil, errors.Wrap(err, "reading available runtimes")
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		disabled, valType, err := k.GetIntegerValue(name)
		if err != nil || valType != registry.DWORD || disabled != 0 {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// ActiveRuntime reads the ActiveRuntime string value.
func (SystemRegistry) ActiveRuntime(v View) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, KhronosKey, registry.QUERY_VALUE|viewAccess(v))
	if err != nil {
		return "", translate(err, `opening HKLM\`+KhronosKey)
	}
	defer k.Close()

	val, _, err := k.GetStringValue(ActiveRuntimeValue)
	if err != nil {
		return "", translate(err, "reading "+ActiveRuntimeValue)
	}
	return val, nil
}

// SetActiveRuntime writes the ActiveRuntime string value. This normally
// requires an elevated process.
func (SystemRegistry) SetActiveRuntime(v View, manifestPath string) error {
	k, _, err := registry.CreateKey(registry.LOCAL_MACHINE, KhronosKey, registry.SET_VALUE|viewAccess(v))
	if err != nil {
		return errors.Wrapf(err, `opening HKLM\%s for writing`, KhronosKey)
	}
	defer k.Close()

	if err := k.SetStringValue(ActiveRuntimeValue, manifestPath); err != nil {
		return errors.Wrapf(err, "writing %s", ActiveRuntimeValue)
	}
	return nil
}
