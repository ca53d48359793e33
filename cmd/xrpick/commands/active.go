package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/logging"
)

func init() {
	rootCmd.AddCommand(activeCmd)
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Print the active runtime manifest path(s)",
	Long: `Print the manifest path of the active OpenXR runtime, one per line.

On Windows the 64-bit and 32-bit registry views are reported separately,
so two paths may be printed. Nothing is printed when no runtime is active.`,
	Example: `  xrpick active

See Also: xrpick list, xrpick activate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		h := newHost(logging.FromContext(cmd.Context()))
		for _, m := range h.ActiveManifests() {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}
