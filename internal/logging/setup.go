package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/thoreinstein/xrpick/internal/errors"
)

// DebugEnv raises verbosity when no -v flag is given: "1" or "true" for
// debug, "2" for trace.
const DebugEnv = "XRPICK_DEBUG"

// ErrQuietVerbose is returned when quiet and verbose output are both
// requested.
var ErrQuietVerbose = errors.New("cannot use --quiet and --verbose together")

// VerbosityFromEnv returns the verbosity implied by DebugEnv, 0 if unset.
func VerbosityFromEnv() int {
	switch os.Getenv(DebugEnv) {
	case "1", "true":
		return 2
	case "2":
		return 3
	default:
		return 0
	}
}

// Options are the command-line logging settings.
type Options struct {
	Verbosity int
	Quiet     bool
	Format    Format
	// LogFile, when set, is opened for append and receives JSON records.
	LogFile string
	Output  io.Writer
}

// Level resolves the effective level: quiet wins, then flags, then
// DebugEnv.
func (o Options) Level() slog.Level {
	if o.Quiet {
		return slog.LevelError
	}
	v := o.Verbosity
	if v == 0 {
		v = VerbosityFromEnv()
	}
	return LevelFromVerbosity(v)
}

// Setup builds the process logger from o. The returned close function
// releases the log file, if any, and is never nil.
func Setup(o Options) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if o.Quiet && o.Verbosity > 0 {
		return nil, noop, ErrQuietVerbose
	}

	cfg := Config{Level: o.Level(), Format: o.Format, Output: o.Output}
	closer := noop
	if o.LogFile != "" {
		f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, noop, errors.Wrapf(err, "opening log file %s", o.LogFile)
		}
		cfg.File = f
		closer = f.Close
	}
	return New(cfg), closer, nil
}
