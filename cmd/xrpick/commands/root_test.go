package commands

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/logging"
	"github.com/thoreinstein/xrpick/internal/platform"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(logging.DebugEnv, "")
			verbosity = tt.verbosity
			c, _ := newTestCmd(t)
			if err := setupLogging(c); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"XRPICK_DEBUG=1", "1", slog.LevelDebug},
		{"XRPICK_DEBUG=true", "true", slog.LevelDebug},
		{"XRPICK_DEBUG=2", "2", logging.LevelTrace},
		{"XRPICK_DEBUG=0", "0", slog.LevelWarn},
		{"XRPICK_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv(logging.DebugEnv, tt.envVal)

			c, _ := newTestCmd(t)
			if err := setupLogging(c); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}
			if !slog.Default().Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
		})
	}
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()

	verbosity, quiet = 1, true
	c, _ := newTestCmd(t)
	err := setupLogging(c)
	if !errors.Is(err, logging.ErrQuietVerbose) || ExitCode(err) != errors.ExitUser {
		t.Errorf("setupLogging() = %v, want user ErrQuietVerbose", err)
	}
}

func TestCheckConfig(t *testing.T) {
	origErr := configLoadErr
	defer func() { configLoadErr = origErr }()

	configLoadErr = errors.New("validating config: unsupported config version: 9")

	parent := &cobra.Command{Use: "config", Annotations: map[string]string{tolerateConfigError: "true"}}
	child := &cobra.Command{Use: "get"}
	parent.AddCommand(child)

	if err := checkConfig(child); err != nil {
		t.Errorf("config subcommand rejected: %v", err)
	}
	if err := checkConfig(&cobra.Command{Use: "help"}); err != nil {
		t.Errorf("help rejected: %v", err)
	}

	err := checkConfig(&cobra.Command{Use: "list"})
	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) || exitErr.Suggestion != "Run: xrpick doctor" {
		t.Errorf("checkConfig(list) = %v, want config error", err)
	}
}

func TestExitCodeAndReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  []string
	}{
		{"nil", nil, errors.ExitSuccess, nil},
		{"plain", errors.New("boom"), errors.ExitUser, []string{"Error: boom"}},
		{"system", errors.NewSystemError(errors.New("disk"), "check disk"), errors.ExitSystem, []string{"Error: disk", "check disk"}},
		{"status only", errors.Status(errors.ExitUser), errors.ExitUser, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.wantCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantCode)
			}
			if tt.err == nil {
				return
			}
			var buf bytes.Buffer
			ReportError(&buf, tt.err)
			for _, want := range tt.wantOut {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("ReportError output missing %q: %q", want, buf.String())
				}
			}
			if tt.wantOut == nil && buf.Len() != 0 {
				t.Errorf("ReportError wrote %q, want nothing", buf.String())
			}
		})
	}
}

func TestPlatformError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"enumeration", errors.Wrap(platform.ErrEnumeration, "x"), errors.ExitSystem},
		{"set active", errors.Wrap(platform.ErrSetActive, "x"), errors.ExitSystem},
		{"selection", errors.Wrap(errors.ErrInvalidSelection, "x"), errors.ExitUser},
		{"ambiguous", errors.Wrap(errors.ErrAmbiguousSelection, "x"), errors.ExitUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(platformError(tt.err)); got != tt.want {
				t.Errorf("ExitCode = %d, want %d", got, tt.want)
			}
		})
	}
	other := errors.New("other")
	if platformError(other) != other {
		t.Error("unrelated errors should pass through")
	}
}
