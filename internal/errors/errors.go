package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitSuccess = 0
	// ExitUser covers bad input, a bad selection or a bad config file.
	ExitUser = 1
	// ExitSystem covers I/O, registry and permission failures.
	ExitSystem = 2
)

var (
	ErrNotFound = crdb.New("not found")

	// ErrInvalidSelection means a runtime selector matched nothing usable.
	ErrInvalidSelection = crdb.New("invalid selection")

	// ErrAmbiguousSelection means a runtime selector matched more than
	// one runtime.
	ErrAmbiguousSelection = crdb.New("ambiguous selection")
)

// Re-exports of github.com/cockroachdb/errors so callers only import this
// package.
var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Mark   = crdb.Mark
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.UnwrapOnce
)

// ExitError attaches a process exit code and an optional next step for the
// user to an error. An ExitError with a nil Err only carries a status: the
// command already printed everything the user needs.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// Status returns a status-only ExitError for code.
func Status(code int) *ExitError {
	return &ExitError{Code: code}
}

func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError is a user error pointing at "xrpick doctor".
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: xrpick doctor")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Code returns the exit code for err: ExitSuccess for nil, the code of the
// outermost ExitError in the chain, or ExitUser for any other error.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *ExitError
	if crdb.As(err, &e) {
		return e.Code
	}
	return ExitUser
}

// Suggestion returns the suggestion of the outermost ExitError in err's
// chain, or "".
func Suggestion(err error) string {
	var e *ExitError
	if crdb.As(err, &e) {
		return e.Suggestion
	}
	return ""
}

// StatusOnly reports whether err is an ExitError with nothing to print.
func StatusOnly(err error) bool {
	var e *ExitError
	return crdb.As(err, &e) && e.Err == nil
}
