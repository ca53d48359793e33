package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/xrpick/internal/errors"
)

// OpenXR layout constants shared by every platform.
const (
	// OpenXR is the directory used when constructing manifest search paths.
	OpenXR = "openxr"

	// MajorVersion is the OpenXR loader major version these paths belong to.
	MajorVersion = 1

	// ActiveRuntimeFilename is the well-known active-runtime marker filename.
	ActiveRuntimeFilename = "active_runtime.json"

	// SysConfDir is the system-wide configuration directory on Unix hosts.
	SysConfDir = "/etc"
)

// AppName is the directory name used for xrpick's own config and state.
const AppName = "xrpick"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the mode of directories xrpick creates.
const DefaultDirPerm = 0o700

// Home returns the user's home directory, or "" if it cannot be determined.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDirs returns the XDG system config directories in priority order
// (XDG_CONFIG_DIRS, defaulting to /etc/xdg on Linux).
func ConfigDirs() []string {
	return xdg.ConfigDirs
}

// StateHome returns the XDG state home directory.
// On Linux: ~/.local/state
func StateHome() string {
	return xdg.StateHome
}

// ConfigSearchDirs returns every XDG config base directory, highest
// priority first: ConfigHome followed by ConfigDirs. Duplicates and empty
// entries are dropped.
func ConfigSearchDirs() []string {
	return SearchDirs(ConfigHome(), ConfigDirs())
}

// SearchDirs builds a highest-priority-first search list from a home
// directory and a list of system directories.
func SearchDirs(home string, dirs []string) []string {
	seen := make(map[string]struct{}, len(dirs)+1)
	out := make([]string, 0, len(dirs)+1)
	for _, d := range append([]string{home}, dirs...) {
		if d == "" {
			continue
		}
		d = filepath.Clean(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Suffix returns the versioned sub-path joined onto every config
// directory: openxr/<major>.
func Suffix() string {
	return filepath.Join(OpenXR, "1")
}

// AppConfigDir returns <ConfigHome>/xrpick.
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DefaultStateFile returns the default location of the persisted app
// state: <StateHome>/xrpick/state.yaml.
func DefaultStateFile() string {
	return filepath.Join(StateHome(), AppName, "state.yaml")
}

// Simplify abbreviates the user's home directory to "~" for display.
// Paths outside the home directory are returned unchanged.
func Simplify(path string) string {
	return simplifyWithHome(path, Home())
}

func simplifyWithHome(path, home string) string {
	if home == "" || path == "" {
		return path
	}
	home = strings.TrimRight(home, `/\`)
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	for _, sep := range []string{"/", `\`} {
		if rest, ok := strings.CutPrefix(path, home+sep); ok {
			return "~" + sep + rest
		}
	}
	return path
}

// Canonical returns the absolute path of p with every symlink resolved.
// It fails if p, or any link along the way, does not exist.
func Canonical(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", p)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, "canonicalizing %s", p)
	}
	return resolved, nil
}
