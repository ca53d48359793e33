// Package paths provides path resolution for OpenXR runtime manifests and
// for xrpick's own config and state.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for XDG Base Directory resolution.
// The OpenXR loader searches, highest priority first:
//
//	$XDG_CONFIG_HOME/openxr/1/         (default ~/.config/openxr/1/)
//	$XDG_CONFIG_DIRS[i]/openxr/1/      (default /etc/xdg/openxr/1/)
//	/etc/openxr/1/
//
// [ConfigSearchDirs] returns the XDG part of that list with duplicates
// removed, and [Suffix] the versioned sub-path joined onto each entry.
//
// # xrpick Directories
//
//	paths.AppConfigDir()     // <ConfigHome>/xrpick/
//	paths.DefaultStateFile() // <StateHome>/xrpick/state.yaml
//
// # Display
//
// [Simplify] abbreviates the home directory to "~" and [Canonical] resolves
// symlinks, for comparing active-runtime links against manifest paths.
package paths
