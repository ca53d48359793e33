// Package linux discovers and activates OpenXR runtimes on Linux and other
// Unix-like hosts.
//
// Runtime manifests are found in the openxr/1 subdirectory of every XDG
// config directory and of /etc. The active runtime is named by the first
// openxr/1/active_runtime.json found, searching XDG config directories in
// priority order before /etc. Activation places a symlink named
// active_runtime.json in the user's config home, moving any previous file
// aside to old_active_runtime<unix-seconds>.json.
package linux
