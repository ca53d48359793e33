package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/baseruntime"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/logging"
)

var extraForce bool

func init() {
	extraAddCmd.Flags().BoolVar(&extraForce, "force", false,
		"register the path even if the manifest does not load")
	extraCmd.AddCommand(extraAddCmd)
	extraCmd.AddCommand(extraRemoveCmd)
	extraCmd.AddCommand(extraListCmd)
	rootCmd.AddCommand(extraCmd)
}

var extraCmd = &cobra.Command{
	Use:   "extra",
	Short: "Manage manifests outside the standard locations",
	Long: `Manage the list of extra runtime manifests included in every listing.

The list is stored in the state file (config key state_file). Without a
subcommand, prints the registered paths.`,
	Example: `  xrpick extra add ~/src/monado/build/openxr_monado-dev.json
  xrpick extra list
  xrpick extra remove ~/src/monado/build/openxr_monado-dev.json

See Also: xrpick list`,
	RunE: runExtraList,
}

var extraAddCmd = &cobra.Command{
	Use:   "add PATH...",
	Short: "Register manifest paths",
	Long: `Register one or more runtime manifests. Paths are stored as absolute
paths. Each manifest must load unless --force is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtraAdd,
}

var extraRemoveCmd = &cobra.Command{
	Use:     "remove PATH...",
	Aliases: []string{"rm"},
	Short:   "Unregister manifest paths",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runExtraRemove,
}

var extraListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered manifest paths",
	Args:  cobra.NoArgs,
	RunE:  runExtraList,
}

func runExtraAdd(cmd *cobra.Command, args []string) error {
	path := stateFile()
	st, err := loadState(path)
	if err != nil {
		return errors.NewSystemError(err, "check or delete "+path)
	}

	logger := logging.FromContext(cmd.Context())
	w := cmd.OutOrStdout()
	for _, p := range args {
		if _, err := baseruntime.New(p); err != nil {
			if !extraForce {
				return errors.NewUserError(err, "fix the manifest or pass --force")
			}
			logger.Warn("registering manifest that does not load", "path", p, "error", err)
		}
		added, err := st.AddExtraPath(p)
		if err != nil {
			return errors.NewUserError(err, "check the path")
		}
		if added {
			fmt.Fprintf(w, "Added %s\n", p)
		} else {
			fmt.Fprintf(w, "Already registered: %s\n", p)
		}
	}

	if err := st.Save(path); err != nil {
		return errors.NewSystemError(err, "check permissions on "+path)
	}
	return nil
}

func runExtraRemove(cmd *cobra.Command, args []string) error {
	path := stateFile()
	st, err := loadState(path)
	if err != nil {
		return errors.NewSystemError(err, "check or delete "+path)
	}

	w := cmd.OutOrStdout()
	var missing []string
	for _, p := range args {
		if st.RemoveExtraPath(p) {
			fmt.Fprintf(w, "Removed %s\n", p)
		} else {
			missing = append(missing, p)
		}
	}

	if err := st.Save(path); err != nil {
		return errors.NewSystemError(err, "check permissions on "+path)
	}
	if len(missing) > 0 {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "not registered: %v", missing),
			"Run: xrpick extra list")
	}
	return nil
}

func runExtraList(cmd *cobra.Command, _ []string) error {
	path := stateFile()
	st, err := loadState(path)
	if err != nil {
		return errors.NewSystemError(err, "check or delete "+path)
	}
	w := cmd.OutOrStdout()
	if len(st.ExtraPaths) == 0 {
		fmt.Fprintln(w, "No extra manifests registered.")
		return nil
	}
	for _, p := range st.ExtraPaths {
		fmt.Fprintln(w, p)
	}
	return nil
}
