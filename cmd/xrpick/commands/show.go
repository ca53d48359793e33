package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/cli"
	"github.com/thoreinstein/xrpick/internal/config"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show INDEX|NAME",
	Short: "Show details of a runtime's manifests",
	Long: `Show every manifest a runtime owns: its file format version, the library
path as written and how the loader resolves it, the library's bitness, and
the negotiate function the loader calls.`,
	Example: `  xrpick show 1
  xrpick show Monado --json

See Also: xrpick list`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// showOutput is the structured form of the show command.
type showOutput struct {
	cli.RuntimeInfo `yaml:",inline"`
	Details         []cli.ManifestDetail `json:"details" yaml:"details"`
}

func runShow(cmd *cobra.Command, args []string) error {
	h, err := loadHost(cmd, nil)
	if err != nil {
		return err
	}
	index, err := resolveRuntime(cmd, h.Runtimes(), args[0])
	if err != nil {
		return platformError(err)
	}
	details, err := h.Details(index)
	if err != nil {
		return platformError(err)
	}
	rt := h.Runtimes()[index-1]

	if showJSON {
		return writeStructured(cmd.OutOrStdout(), config.FormatJSON, showOutput{RuntimeInfo: rt, Details: details})
	}
	writeDetails(cmd.OutOrStdout(), rt, details)
	return nil
}

func writeDetails(w io.Writer, rt cli.RuntimeInfo, details []cli.ManifestDetail) {
	st := newStyles(w)
	fmt.Fprintf(w, "%s %s\n", st.header.Render(fmt.Sprintf("[%d]", rt.Index)), rt.Name)
	if rt.State.IsActive() {
		fmt.Fprintf(w, "  %s\n", st.stateLabel(rt.State))
	}
	for _, d := range details {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", st.header.Render(d.Label))
		fmt.Fprintf(w, "    manifest:   %s\n", d.Path)
		fmt.Fprintf(w, "    format:     %s\n", d.FileFormatVersion)
		fmt.Fprintf(w, "    library:    %s (%s)\n", d.LibraryPath, d.LibraryKind)
		fmt.Fprintf(w, "    resolved:   %s\n", d.ResolvedLibrary)
		fmt.Fprintf(w, "    bitness:    %s\n", d.Bitness)
		fmt.Fprintf(w, "    negotiate:  %s\n", d.NegotiateFunction)
	}
}
