//go:build !windows

package windows

import "github.com/thoreinstein/xrpick/internal/errors"

// noRegistry stands in on hosts without a Windows registry: every key is
// missing and nothing can be written.
type noRegistry struct{}

func defaultRegistry() Registry { return noRegistry{} }

func (noRegistry) AvailableRuntimes(View) ([]string, error) { return nil, ErrKeyNotFound }

func (noRegistry) ActiveRuntime(View) (string, error) { return "", ErrKeyNotFound }

func (noRegistry) SetActiveRuntime(View, string) error {
	return errors.New("the Windows registry is not available on this host")
}
