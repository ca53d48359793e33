package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/platform"
)

// platformError turns a platform failure into an exit error with a
// suggestion. Other errors pass through unchanged.
func platformError(err error) error {
	switch {
	case errors.Is(err, platform.ErrEnumeration):
		return errors.NewSystemError(err, "retry, and check that the OpenXR configuration is readable")
	case errors.Is(err, platform.ErrSetActive):
		return errors.NewSystemError(err, "activation needs write access; try again with elevated permissions")
	case errors.Is(err, errors.ErrInvalidSelection), errors.Is(err, errors.ErrAmbiguousSelection):
		return errors.NewUserError(err, "Run: xrpick list")
	}
	return err
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	return errors.Code(err)
}

// ReportError prints err and any suggestion attached to it. Status-only
// errors such as doctor findings were already reported and print nothing.
func ReportError(w io.Writer, err error) {
	if errors.StatusOnly(err) {
		return
	}
	color.New(color.FgRed, color.Bold).Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
	if s := errors.Suggestion(err); s != "" {
		color.New(color.FgYellow).Fprintf(w, "  %s\n", s)
	}
}
