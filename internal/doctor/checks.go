package doctor

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/thoreinstein/xrpick/internal/baseruntime"
	"github.com/thoreinstein/xrpick/internal/config"
	"github.com/thoreinstein/xrpick/internal/manifest"
	"github.com/thoreinstein/xrpick/internal/platform"
)

// Check categories.
const (
	CategoryRuntime = "runtime"
	CategoryConfig  = "config"
)

// ActiveRuntimeCheck verifies that an active runtime is configured and that
// every configured manifest loads.
type ActiveRuntimeCheck struct {
	fs        afero.Fs
	manifests []string
}

var _ Check = (*ActiveRuntimeCheck)(nil)

// NewActiveRuntimeCheck checks the given active manifest paths.
func NewActiveRuntimeCheck(fsys afero.Fs, manifests []string) *ActiveRuntimeCheck {
	return &ActiveRuntimeCheck{fs: fsys, manifests: manifests}
}

func (c *ActiveRuntimeCheck) Name() string     { return "active-runtime" }
func (c *ActiveRuntimeCheck) Category() string { return CategoryRuntime }

func (c *ActiveRuntimeCheck) Run() *CheckResult {
	if len(c.manifests) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "no active OpenXR runtime is configured",
			FixHint:  "run: xrpick activate",
		}
	}

	var names []string
	broken := map[string]any{}
	for _, path := range c.manifests {
		rt, err := baseruntime.NewFromFs(c.fs, path)
		if err != nil {
			broken[path] = err.Error()
			continue
		}
		names = append(names, rt.Name())
	}

	if len(broken) > 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("%d active runtime manifest(s) cannot be loaded", len(broken)),
			Details:  map[string]any{"manifests": broken},
			FixHint:  "activate an installed runtime with: xrpick activate",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "active: " + strings.Join(names, ", "),
		Details:  map[string]any{"manifests": c.manifests},
	}
}

// DiscoveryCheck reports whether runtime enumeration as a whole worked.
type DiscoveryCheck struct {
	err error
}

var _ Check = (*DiscoveryCheck)(nil)

// NewDiscoveryCheck wraps the error returned by a discovery pass.
func NewDiscoveryCheck(err error) *DiscoveryCheck {
	return &DiscoveryCheck{err: err}
}

func (c *DiscoveryCheck) Name() string     { return "discovery" }
func (c *DiscoveryCheck) Category() string { return CategoryRuntime }

func (c *DiscoveryCheck) Run() *CheckResult {
	if c.err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  c.err.Error(),
			FixHint:  "check that the OpenXR configuration directories or registry keys are readable",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "runtime discovery succeeded",
	}
}

// ManifestsCheck reports runtimes that were found and manifests that could
// not be used.
type ManifestsCheck struct {
	found int
	errs  []platform.ManifestError
}

var _ Check = (*ManifestsCheck)(nil)

// NewManifestsCheck summarizes one discovery pass.
func NewManifestsCheck(found int, errs []platform.ManifestError) *ManifestsCheck {
	return &ManifestsCheck{found: found, errs: errs}
}

func (c *ManifestsCheck) Name() string     { return "manifests" }
func (c *ManifestsCheck) Category() string { return CategoryRuntime }

func (c *ManifestsCheck) Run() *CheckResult {
	if len(c.errs) > 0 {
		failed := make(map[string]any, len(c.errs))
		for _, e := range c.errs {
			failed[e.Path] = e.Err.Error()
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("%d runtime(s) found, %d manifest(s) skipped", c.found, len(c.errs)),
			Details:  map[string]any{"errors": failed},
			FixHint:  "fix or remove the listed manifests",
		}
	}
	if c.found == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "no OpenXR runtimes found",
			FixHint:  "install a runtime or register one with: xrpick extra add PATH",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d runtime(s) found", c.found),
	}
}

// LibraryCheck verifies that every runtime's library can be found on disk.
// Libraries resolved through the loader search path cannot be checked and
// are reported as info.
type LibraryCheck struct {
	fs       afero.Fs
	runtimes []platform.Runtime
}

var _ Check = (*LibraryCheck)(nil)

// NewLibraryCheck checks the libraries of runtimes.
func NewLibraryCheck(fsys afero.Fs, runtimes []platform.Runtime) *LibraryCheck {
	return &LibraryCheck{fs: fsys, runtimes: runtimes}
}

func (c *LibraryCheck) Name() string     { return "libraries" }
func (c *LibraryCheck) Category() string { return CategoryRuntime }

func (c *LibraryCheck) Run() *CheckResult {
	missing := map[string]any{}
	var searchPath []string
	checked := 0
	for _, r := range c.runtimes {
		for _, lib := range r.Libraries() {
			if manifest.ClassifyLibraryPath(lib) == manifest.DynamicLibrarySearchPath {
				searchPath = append(searchPath, lib)
				continue
			}
			checked++
			if _, err := c.fs.Stat(lib); err != nil {
				missing[lib] = r.Name()
			}
		}
	}

	switch {
	case len(missing) > 0:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("%d of %d runtime libraries are missing", len(missing), checked),
			Details:  map[string]any{"missing": missing},
			FixHint:  "reinstall the affected runtimes",
		}
	case len(searchPath) > 0:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  fmt.Sprintf("%d libraries present, %d resolved by the loader search path", checked, len(searchPath)),
			Details:  map[string]any{"search_path": searchPath},
		}
	default:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  fmt.Sprintf("%d libraries present", checked),
		}
	}
}

// ConfigCheck validates xrpick's own configuration.
type ConfigCheck struct {
	cfg     *config.Config
	loadErr error
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck validates cfg, or reports loadErr if loading failed.
func NewConfigCheck(cfg *config.Config, loadErr error) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, loadErr: loadErr}
}

func (c *ConfigCheck) Name() string     { return "config" }
func (c *ConfigCheck) Category() string { return CategoryConfig }

func (c *ConfigCheck) Run() *CheckResult {
	if c.loadErr != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  c.loadErr.Error(),
			Details:  map[string]any{"path": config.DefaultPath()},
			FixHint:  "correct or delete " + config.DefaultPath(),
		}
	}
	if errs := config.Validate(c.cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  strings.Join(msgs, "; "),
			FixHint:  "run: xrpick config list",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "configuration is valid",
	}
}
