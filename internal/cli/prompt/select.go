// Package prompt provides interactive runtime selection for the CLI.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/xrpick/internal/cli"
	"github.com/thoreinstein/xrpick/internal/errors"
)

// Sentinel errors for runtime selection.
var (
	ErrNoRuntimes         = errors.New("no runtimes to select from")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles line-based selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectRuntime asks the user to choose among runtimes sharing a name and
// returns the chosen runtime's Index.
//
// Returns:
//   - ErrNoRuntimes if the list is empty
//   - The only runtime's index without prompting if there is one
//   - errors.ErrInvalidSelection if the answer is out of range
//   - ErrSelectionCancelled on EOF
func (s *Selector) SelectRuntime(query string, runtimes []cli.RuntimeInfo) (int, error) {
	if len(runtimes) == 0 {
		return 0, ErrNoRuntimes
	}
	if len(runtimes) == 1 {
		return runtimes[0].Index, nil
	}

	fmt.Fprintf(s.writer, "Multiple runtimes match %q:\n", query)
	for i, r := range runtimes {
		fmt.Fprintf(s.writer, "  [%d] %s (%s)\n", i+1, r.Name, strings.Join(r.Manifests, ", "))
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrSelectionCancelled
		}
		return 0, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return runtimes[0].Index, nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidSelection, "%q is not a number", input)
	}
	if n < 1 || n > len(runtimes) {
		return 0, errors.Wrapf(errors.ErrInvalidSelection, "%d is out of range [1-%d]", n, len(runtimes))
	}
	return runtimes[n-1].Index, nil
}

// Finder runs an interactive picker over items and returns the chosen
// position. It matches fuzzyfinder.Find.
type Finder func(items any, itemFunc func(int) string, opts ...fuzzyfinder.Option) (int, error)

// PickRuntime opens a fuzzy finder over runtimes with a preview of each
// runtime's manifests and returns the chosen runtime's Index. find is
// usually fuzzyfinder.Find.
func PickRuntime(find Finder, runtimes []cli.RuntimeInfo) (int, error) {
	if len(runtimes) == 0 {
		return 0, ErrNoRuntimes
	}

	i, err := find(
		runtimes,
		func(i int) string {
			label := runtimes[i].Name
			if st := runtimes[i].State.String(); st != "" {
				label += " (" + st + ")"
			}
			return label
		},
		fuzzyfinder.WithPromptString("runtime> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			r := runtimes[i]
			return fmt.Sprintf("%s\n\n%s\n\nLibraries:\n  %s", r.Name, r.Description, strings.Join(r.Libraries, "\n  "))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return 0, ErrSelectionCancelled
		}
		return 0, errors.Wrap(err, "interactive selection failed")
	}
	return runtimes[i].Index, nil
}
