package platform

import (
	"strconv"
)

// ActiveState says whether, and for which widths, a runtime is active.
type ActiveState int

const (
	// NotActive means the runtime is not active for any width.
	NotActive ActiveState = iota
	// ActiveIndependentRuntime means the runtime is active on a platform
	// without per-width settings.
	ActiveIndependentRuntime
	// ActiveNativeOnly means active for the process's native width only.
	ActiveNativeOnly
	// ActiveNarrowOnly means active for the 32-bit WOW64 width only.
	ActiveNarrowOnly
	// ActiveBoth means active for both widths.
	ActiveBoth
)

// FromWidths combines per-width activity into an ActiveState.
func FromWidths(native, narrow bool) ActiveState {
	switch {
	case native && narrow:
		return ActiveBoth
	case native:
		return ActiveNativeOnly
	case narrow:
		return ActiveNarrowOnly
	default:
		return NotActive
	}
}

// String returns the user-facing label. NotActive renders as "".
func (s ActiveState) String() string {
	switch s {
	case ActiveIndependentRuntime, ActiveBoth:
		return "Active"
	case ActiveNativeOnly:
		return "Active - " + strconv.Itoa(strconv.IntSize) + "-bit only"
	case ActiveNarrowOnly:
		return "Active - 32-bit only"
	default:
		return ""
	}
}

// IsActive reports whether the runtime is active for at least one width.
func (s ActiveState) IsActive() bool {
	return s != NotActive
}

// ShouldOfferActivate reports whether activating the runtime would change
// anything, i.e. it is not fully active.
func (s ActiveState) ShouldOfferActivate() bool {
	switch s {
	case ActiveIndependentRuntime, ActiveBoth:
		return false
	default:
		return true
	}
}

// MarshalText renders the state as a stable machine-readable token.
func (s ActiveState) MarshalText() ([]byte, error) {
	switch s {
	case ActiveIndependentRuntime:
		return []byte("active"), nil
	case ActiveNativeOnly:
		return []byte("active-native"), nil
	case ActiveNarrowOnly:
		return []byte("active-narrow"), nil
	case ActiveBoth:
		return []byte("active-both"), nil
	default:
		return []byte("inactive"), nil
	}
}
