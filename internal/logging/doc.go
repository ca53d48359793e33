// Package logging provides structured logging for the xrpick CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("starting", "version", "1.0.0")
//
// # Command-line setup
//
// [Setup] turns -v/-q/--log-file style options into a logger. When no -v
// flag is given, XRPICK_DEBUG=1 selects debug and XRPICK_DEBUG=2 trace.
// A log file always receives JSON regardless of the terminal format.
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Terminal Output
//
// [NewHandler] writes one colored line per record when stderr is a
// terminal, and plain text otherwise. NO_COLOR and TERM=dumb are honored.
// [Tee] mirrors records into a second handler, which [New] uses for the
// JSON log file.
package logging
