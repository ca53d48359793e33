package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/cli"
	"github.com/thoreinstein/xrpick/internal/cli/prompt"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/logging"
)

// findRuntime runs the interactive picker. Tests replace it.
var findRuntime prompt.Finder = fuzzyfinder.Find

var activateExtra []string

func init() {
	activateCmd.Flags().StringArrayVar(&activateExtra, "extra", nil,
		"additional manifest to include for this run (repeatable)")
	rootCmd.AddCommand(activateCmd)
}

var activateCmd = &cobra.Command{
	Use:   "activate [INDEX|NAME]",
	Short: "Make a runtime the active one",
	Long: `Make an OpenXR runtime the active one.

The runtime is chosen by its index from "xrpick list", by name (case
insensitive), or by manifest path. Without an argument an interactive
picker opens when running in a terminal.

On Linux the user's active_runtime.json is replaced with a link to the
chosen manifest. A regular file found there is moved aside first.
On Windows the ActiveRuntime registry value is written for every bit
width the runtime provides, which usually requires administrator rights.`,
	Example: `  # Pick interactively
  xrpick activate

  # By index or name
  xrpick activate 2
  xrpick activate SteamVR

See Also: xrpick list, xrpick backups`,
	Args: cobra.MaximumNArgs(1),
	RunE: runActivate,
}

func runActivate(cmd *cobra.Command, args []string) error {
	h, err := loadHost(cmd, activateExtra)
	if err != nil {
		return err
	}
	runtimes := h.Runtimes()
	if len(runtimes) == 0 {
		return errors.NewUserError(prompt.ErrNoRuntimes,
			"install a runtime or register one with: xrpick extra add PATH")
	}

	var index int
	if len(args) == 0 {
		if !isInteractive() {
			return errors.NewUserError(errors.New("no runtime specified"),
				"pass an index or name, see: xrpick list")
		}
		index, err = prompt.PickRuntime(findRuntime, runtimes)
	} else {
		index, err = resolveRuntime(cmd, runtimes, args[0])
	}
	if errors.Is(err, prompt.ErrSelectionCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
		return nil
	}
	if err != nil {
		return platformError(err)
	}

	return activate(cmd, h, index)
}

// resolveRuntime maps a selector to an index, asking the user to choose
// when a name is ambiguous and a terminal is available.
func resolveRuntime(cmd *cobra.Command, runtimes []cli.RuntimeInfo, selector string) (int, error) {
	index, err := cli.Select(runtimes, selector)
	if errors.Is(err, errors.ErrAmbiguousSelection) && isInteractive() {
		return prompt.NewSelectorWithIO(cmd.InOrStdin(), cmd.ErrOrStderr()).
			SelectRuntime(selector, cli.Matching(runtimes, selector))
	}
	return index, err
}

func activate(cmd *cobra.Command, h cli.Host, index int) error {
	w := cmd.OutOrStdout()
	st := newStyles(w)
	rt := h.Runtimes()[index-1]

	if !rt.State.ShouldOfferActivate() {
		fmt.Fprintf(w, "%s is already active.\n", rt.Name)
		return nil
	}

	logger := logging.FromContext(cmd.Context())
	logger.Info("activating runtime", "name", rt.Name, "manifests", rt.Manifests)
	if err := h.Activate(index); err != nil {
		return platformError(err)
	}

	after := h.Runtimes()[index-1]
	fmt.Fprintf(w, "%s %s", st.ok.Render("Activated"), rt.Name)
	if after.State.IsActive() {
		fmt.Fprintf(w, " (%s)", after.State)
	}
	fmt.Fprintln(w)
	return nil
}
