// Package errors holds xrpick's error conventions.
//
// Construction and inspection helpers (New, Newf, Wrap, Wrapf, Mark, Is,
// As) are re-exported from github.com/cockroachdb/errors so the rest of
// the module needs a single errors import. Failure kinds are sentinels
// attached with Mark and tested with Is:
//
//	if errors.Is(err, errors.ErrAmbiguousSelection) {
//		// offer the picker
//	}
//
// # Exit Codes
//
// Commands return an [ExitError] to pick the process exit code:
// [ExitUser] (1) for input and configuration mistakes and [ExitSystem] (2)
// for I/O, registry and permission failures. [Code] and [Suggestion]
// read them back at the top of main:
//
//	if err := commands.Execute(); err != nil {
//		fmt.Fprintln(os.Stderr, err, errors.Suggestion(err))
//		os.Exit(errors.Code(err))
//	}
//
// A [Status] error has no message; it only sets the exit code of a
// command that printed its own findings, such as doctor.
package errors
