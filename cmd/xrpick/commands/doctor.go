package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/appstate"
	"github.com/thoreinstein/xrpick/internal/config"
	"github.com/thoreinstein/xrpick/internal/doctor"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/logging"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
)

// doctorFs is where doctor checks read manifests and libraries.
var doctorFs = afero.NewOsFs()

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "quiet", "verbose")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose OpenXR runtime and configuration issues",
	Long: `Run diagnostic checks on the OpenXR runtime setup and xrpick's own
configuration.

Checks that runtimes can be discovered, that an active runtime is set and
loads, that every runtime's library exists, and that the config validates.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Annotations: map[string]string{tolerateConfigError: "true"},
	Args:        cobra.NoArgs,
	RunE:        runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	report := doctor.NewRunner(doctorChecks(cmd)...).Run()

	if err := outputDoctorReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	switch report.Worst() {
	case doctor.SeverityError:
		return errors.Status(errors.ExitSystem)
	case doctor.SeverityWarning:
		return errors.Status(errors.ExitUser)
	}
	return nil
}

// doctorChecks runs discovery once and builds checks over its result.
func doctorChecks(cmd *cobra.Command) []doctor.Check {
	checks := []doctor.Check{doctor.NewConfigCheck(cfg, configLoadErr)}

	st, err := loadState(stateFile())
	if err != nil {
		logging.FromContext(cmd.Context()).Warn("ignoring unreadable state file", "path", stateFile(), "error", err)
		st = &appstate.PersistentState{}
	}

	h := newHost(logging.FromContext(cmd.Context()))
	if err := h.Refresh(st.ExtraPaths); err != nil {
		return append(checks, doctor.NewDiscoveryCheck(err))
	}
	return append(checks,
		doctor.NewDiscoveryCheck(nil),
		doctor.NewManifestsCheck(len(h.Runtimes()), h.Errors()),
		doctor.NewActiveRuntimeCheck(doctorFs, h.ActiveManifests()),
		doctor.NewLibraryCheck(doctorFs, h.PlatformRuntimes()),
	)
}

func outputDoctorReport(w io.Writer, report *doctor.Report) error {
	if doctorQuiet {
		return nil
	}
	if doctorJSON {
		return writeStructured(w, config.FormatJSON, report)
	}
	outputDoctorText(w, report)
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.Report) {
	// Without --verbose only warnings and errors are listed.
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Problem()
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if showAll {
			for _, k := range slices.Sorted(maps.Keys(result.Details)) {
				fmt.Fprintf(w, "  %s: %v\n", k, result.Details[k])
			}
		}
		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
