package cli

import (
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/xrpick/internal/errors"
)

// Select resolves a user-supplied selector to a 1-based runtime index. The
// selector is an index as shown by "xrpick list", a runtime name
// (case-insensitive), or one of the runtime's manifest paths.
func Select(runtimes []RuntimeInfo, selector string) (int, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return 0, errors.Wrap(errors.ErrInvalidSelection, "empty selector")
	}

	if n, err := strconv.Atoi(selector); err == nil {
		if n < 1 || n > len(runtimes) {
			return 0, errors.Wrapf(errors.ErrInvalidSelection, "%d is out of range [1-%d]", n, len(runtimes))
		}
		return n, nil
	}

	var matches []RuntimeInfo
	for _, r := range runtimes {
		if strings.EqualFold(r.Name, selector) || slices.Contains(r.Manifests, selector) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return 0, errors.Wrapf(errors.ErrInvalidSelection, "no runtime named %q", selector)
	case 1:
		return matches[0].Index, nil
	default:
		idx := make([]string, len(matches))
		for i, m := range matches {
			idx[i] = strconv.Itoa(m.Index)
		}
		return 0, errors.Wrapf(errors.ErrAmbiguousSelection, "%q matches runtimes %s", selector, strings.Join(idx, ", "))
	}
}

// Matching returns the runtimes a name selector would match, for prompting
// when Select reports an ambiguous selection.
func Matching(runtimes []RuntimeInfo, selector string) []RuntimeInfo {
	var out []RuntimeInfo
	for _, r := range runtimes {
		if strings.EqualFold(r.Name, strings.TrimSpace(selector)) {
			out = append(out, r)
		}
	}
	return out
}
