package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/cli"
	"github.com/thoreinstein/xrpick/internal/cli/mocks"
	"github.com/thoreinstein/xrpick/internal/config"
	"github.com/thoreinstein/xrpick/internal/platform"
)

// setupHost swaps the host factory for a mock and isolates config, state
// and terminal detection for the duration of the test.
func setupHost(t *testing.T) *mocks.MockHost {
	t.Helper()
	h := mocks.NewMockHost(t)

	origHost, origCfg, origErr, origInteractive, origFind := newHost, cfg, configLoadErr, isInteractive, findRuntime
	t.Cleanup(func() {
		newHost, cfg, configLoadErr, isInteractive, findRuntime = origHost, origCfg, origErr, origInteractive, origFind
	})

	newHost = func(*slog.Logger) cli.Host { return h }
	cfg = config.Default()
	cfg.StateFile = filepath.Join(t.TempDir(), "state.yaml")
	configLoadErr = nil
	isInteractive = func() bool { return false }
	return h
}

// newTestCmd returns a command whose output is captured.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetIn(&bytes.Buffer{})
	c.SetContext(t.Context())
	return c, &buf
}

// writeManifest writes a minimal runtime manifest into dir.
func writeManifest(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name+".json")
	body := `{"file_format_version": "1.0.0", "runtime": {"name": "` + name + `", "library_path": "./lib` + name + `.so"}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testRuntimes() []cli.RuntimeInfo {
	return []cli.RuntimeInfo{
		{
			Index:     1,
			Name:      "Monado",
			State:     platform.ActiveIndependentRuntime,
			Manifests: []string{"/usr/share/openxr/1/openxr_monado.json"},
			Libraries: []string{"/usr/lib/libopenxr_monado.so"},
		},
		{
			Index:     2,
			Name:      "SteamVR",
			State:     platform.NotActive,
			Manifests: []string{"/opt/steamvr/steamxr_linux64.json"},
			Libraries: []string{"/opt/steamvr/bin/linux64/vrclient.so"},
		},
	}
}
