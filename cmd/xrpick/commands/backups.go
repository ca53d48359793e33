package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/logging"
)

func init() {
	rootCmd.AddCommand(backupsCmd)
}

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List active-runtime files moved aside by activation",
	Long: `List the regular active_runtime.json files that activation renamed out of
the way before creating a link, newest first.

Windows keeps the active runtime in the registry, so nothing is listed there.`,
	Example: `  xrpick backups

See Also: xrpick activate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		h := newHost(logging.FromContext(cmd.Context()))
		backups, err := h.Backups()
		if err != nil {
			return platformError(err)
		}
		w := cmd.OutOrStdout()
		if len(backups) == 0 {
			fmt.Fprintln(w, "No backups found.")
			return nil
		}
		st := newStyles(w)
		for _, b := range backups {
			fmt.Fprintf(w, "%s  %s\n", st.muted.Render(b.Time.Format(time.DateTime)), b.Path)
		}
		return nil
	},
}
