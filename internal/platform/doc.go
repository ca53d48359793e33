// Package platform defines the capability interfaces shared by the
// per-OS runtime discovery implementations.
//
// A [Platform] enumerates the OpenXR runtimes installed on a host and
// reports which one is active. Each discovered runtime implements
// [Runtime] and can be made active.
//
// # Errors
//
// Failures come in three kinds:
//
//   - [ErrEnumeration]: discovery as a whole failed. Fatal to the call.
//   - [ManifestError]: a single manifest could not be read, parsed or
//     probed. Collected and returned alongside the usable runtimes.
//   - [ErrSetActive]: one activation attempt failed.
//
// # Active state
//
// [ActiveState] is derived on demand from a snapshot taken with
// [Platform.ActiveData]. Linux has a single active runtime
// ([ActiveIndependentRuntime]); Windows tracks the native and 32-bit
// widths separately.
package platform
