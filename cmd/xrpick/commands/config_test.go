package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/thoreinstein/xrpick/internal/config"
	"github.com/thoreinstein/xrpick/internal/errors"
)

// isolateConfig points config lookups at a fresh directory.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.ConfigDirEnv, dir)
	origFile := configFile
	configFile = ""
	config.Init()
	t.Cleanup(func() {
		configFile = origFile
		viper.Reset()
	})
	return dir
}

func TestConfigSetGet(t *testing.T) {
	dir := isolateConfig(t)

	c, out := newTestCmd(t)
	if err := runConfigSet(c, []string{"list_format", "YAML"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !strings.Contains(out.String(), "Set list_format = yaml") {
		t.Errorf("set output = %q", out.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "list_format: yaml") {
		t.Errorf("config file = %s", data)
	}

	c, out = newTestCmd(t)
	if err := runConfigGet(c, []string{"list_format"}); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.String() != "yaml\n" {
		t.Errorf("get output = %q", out.String())
	}
}

func TestConfigSet_Invalid(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown key", []string{"colour", "on"}, config.ErrUnknownKey},
		{"bad format", []string{"list_format", "xml"}, config.ErrInvalidFormat},
		{"bad version", []string{"version", "two"}, config.ErrInvalidValue},
		{"unsupported version", []string{"version", "2"}, config.ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCmd(t)
			err := runConfigSet(c, tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if ExitCode(err) != errors.ExitUser {
				t.Errorf("ExitCode = %d, want %d", ExitCode(err), errors.ExitUser)
			}
		})
	}
}

func TestConfigGet_UnknownKey(t *testing.T) {
	isolateConfig(t)
	c, _ := newTestCmd(t)
	if err := runConfigGet(c, []string{"nope"}); !errors.Is(err, config.ErrUnknownKey) {
		t.Errorf("error = %v, want ErrUnknownKey", err)
	}
}

func TestConfigList(t *testing.T) {
	isolateConfig(t)
	c, out := newTestCmd(t)
	if err := runConfigList(c, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"version: 1", "list_format: table", "state_file:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q\nGot:\n%s", want, out.String())
		}
	}
}
