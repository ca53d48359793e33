package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/validator"
)

var (
	validateJSON   bool
	validateStrict bool
)

// validateFs is where manifests and their libraries are read.
var validateFs = afero.NewOsFs()

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output results as JSON")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat warnings as errors")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate MANIFEST...",
	Short: "Check runtime manifests for problems",
	Long: `Check one or more OpenXR runtime manifests for the problems that stop the
loader from using them: unreadable or malformed JSON, an unsupported
file_format_version, and a library that is missing or not a shared object.

Exit codes:
  0 - All manifests valid
  1 - Errors found (or warnings with --strict)`,
	Example: `  xrpick validate ~/src/monado/build/openxr_monado-dev.json
  xrpick validate --json /usr/share/openxr/1/*.json

See Also: xrpick extra add, xrpick doctor`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	results := make([]*validator.Result, len(args))
	failed := false
	for i, path := range args {
		results[i] = validator.ValidateManifest(validateFs, path)
		if results[i].HasErrors() || (validateStrict && results[i].HasWarnings()) {
			failed = true
		}
	}

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(results...); err != nil {
		return err
	}

	if failed {
		return errors.Status(errors.ExitUser)
	}
	return nil
}
