// Package windows discovers and activates OpenXR runtimes on Windows.
//
// Runtimes are declared in the registry under
// HKLM\SOFTWARE\Khronos\OpenXR\1\AvailableRuntimes, one DWORD value per
// manifest path (0 means enabled), and the active runtime is the
// ActiveRuntime string value of HKLM\SOFTWARE\Khronos\OpenXR\1. A 64-bit
// host keeps a second, independent copy of both for 32-bit applications
// in the WOW64 registry view. This package calls the process-width view
// "native" and the WOW64 view "narrow", and pairs native and narrow
// manifests that were installed side by side into one logical runtime.
//
// Everything except the registry binding is portable so it can be tested
// on any host with a fake [Registry] and an in-memory filesystem.
package windows
