package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Config holds the configuration for creating a new logger.
type Config struct {
	// Level sets the minimum log level for both outputs.
	Level slog.Level
	// Format selects the Output rendering. Unknown formats render as text.
	Format Format
	// Output defaults to os.Stderr.
	Output io.Writer
	// File, when set, additionally receives every record as JSON with
	// full, unabbreviated paths.
	File io.Writer
}

// New creates a logger with the given configuration.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var h slog.Handler = NewHandler(out, opts)
	if cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(out, opts)
	}
	if cfg.File != nil {
		h = Tee(h, slog.NewJSONHandler(cfg.File, opts))
	}
	return slog.New(h)
}

// testWriter routes log lines to t.Log so they show only for failing or
// verbose tests.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// ForTest returns a Debug-level text logger writing to t.Log.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{Level: slog.LevelDebug, Output: testWriter{t: t}})
}
