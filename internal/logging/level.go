package logging

import "log/slog"

// LevelTrace is a level below Debug for very chatty discovery output,
// such as every candidate manifest path considered during enumeration.
const LevelTrace = slog.Level(-8)

// LevelFromVerbosity maps the count of -v flags to a log level.
//
//	0 (or negative) -> Warn
//	1               -> Info
//	2               -> Debug
//	3+              -> Trace
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}
