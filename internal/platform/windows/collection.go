package windows

import (
	"path"
	"strings"

	"github.com/thoreinstein/xrpick/internal/baseruntime"
)

// pathKey normalizes a Windows path for comparison: either separator,
// redundant elements removed, case folded.
func pathKey(p string) string {
	return strings.ToLower(path.Clean(strings.ReplaceAll(p, `\`, "/")))
}

// parentKey is the pathKey of p's parent directory, "" for a bare name.
func parentKey(p string) string {
	i := strings.LastIndexAny(p, `/\`)
	if i < 0 {
		return ""
	}
	return pathKey(p[:i])
}

// RuntimeCollection accumulates logical runtimes while guaranteeing that no
// manifest path is owned by more than one of them.
type RuntimeCollection struct {
	platform *Platform
	runtimes []*Runtime
	claimed  map[string]struct{}
}

// NewRuntimeCollection returns an empty collection whose runtimes activate
// through p.
func NewRuntimeCollection(p *Platform) *RuntimeCollection {
	return &RuntimeCollection{platform: p, claimed: make(map[string]struct{})}
}

// Claimed reports whether some runtime in the collection owns path.
func (c *RuntimeCollection) Claimed(path string) bool {
	_, ok := c.claimed[pathKey(path)]
	return ok
}

// Add records a runtime made of the given widths. Widths whose manifest is
// already claimed are dropped; if nothing remains the runtime is rejected
// and Add returns false. native and narrow may be the same manifest.
func (c *RuntimeCollection) Add(native, narrow *baseruntime.BaseRuntime) bool {
	if native != nil && c.Claimed(native.ManifestPath()) {
		native = nil
	}
	// A search-path manifest may serve both widths as one runtime.
	if narrow != nil && narrow != native && c.Claimed(narrow.ManifestPath()) {
		narrow = nil
	}
	if native == nil && narrow == nil {
		return false
	}
	for _, b := range []*baseruntime.BaseRuntime{native, narrow} {
		if b != nil {
			c.claimed[pathKey(b.ManifestPath())] = struct{}{}
		}
	}
	c.runtimes = append(c.runtimes, &Runtime{native: native, narrow: narrow, platform: c.platform})
	return true
}

// Runtimes returns the collected runtimes in insertion order.
func (c *RuntimeCollection) Runtimes() []*Runtime {
	return c.runtimes
}
