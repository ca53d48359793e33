// Package editor launches the user's preferred text editor.
package editor

import (
	"io"
	"os"
	"os/exec"

	"github.com/thoreinstein/xrpick/internal/errors"
)

// Editor runs an external editor on a file.
type Editor struct {
	// Command overrides editor detection when set.
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Editor attached to the process's standard streams.
func New() *Editor {
	return &Editor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Open runs the editor on path and waits for it to exit.
func (e *Editor) Open(path string) error {
	name := e.Command
	if name == "" {
		name = Detect()
	}

	cmd := exec.Command(name, path)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", name)
	}
	return nil
}

// Detect returns the editor command to use.
// Fallback chain: $EDITOR → $VISUAL → nano → vi
func Detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
