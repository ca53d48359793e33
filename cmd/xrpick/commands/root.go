// Package commands implements the CLI commands for xrpick.
package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/xrpick/cmd"
	"github.com/thoreinstein/xrpick/internal/appstate"
	"github.com/thoreinstein/xrpick/internal/cli"
	"github.com/thoreinstein/xrpick/internal/config"
	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/logging"
	"github.com/thoreinstein/xrpick/internal/paths"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// cfg is the loaded configuration, or defaults when loading failed.
var cfg = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// closeLog releases the --log-file handle after the command runs.
var closeLog = func() error { return nil }

// newHost builds the platform session commands operate on. Tests replace it.
var newHost = cli.NewHost

// loadState reads persisted state. Tests replace it.
var loadState = appstate.LoadState

// isInteractive reports whether stdin and stdout are both terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: "+filepath.Join("$XDG_CONFIG_HOME", paths.AppName, "config.yaml")+")")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("xrpick version {{.Version}}\n")

	// Errors are reported by main so suggestions and exit codes stay in one place.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loaded, err := config.Load(configFile)
	configLoadErr = err
	if err == nil {
		cfg = loaded
	}
}

var rootCmd = &cobra.Command{
	Use:   "xrpick",
	Short: "List and switch the active OpenXR runtime",
	Long: `xrpick finds the OpenXR runtimes installed on this machine and switches
which one applications load.

On Linux it scans the XDG configuration directories and /etc for runtime
manifests and activates a runtime by pointing active_runtime.json at it.
On Windows it reads the Khronos registry keys for both the 64-bit and the
32-bit (WOW64) views.

Manifests outside the standard locations can be registered with
"xrpick extra add" and are included in every listing.`,
	Example: `  # List runtimes
  xrpick list

  # Pick a runtime interactively
  xrpick activate

  # Activate by name or list index
  xrpick activate Monado
  xrpick activate 2

  See Also: xrpick doctor, xrpick config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	logger, closer, err := logging.Setup(logging.Options{
		Verbosity: verbosity,
		Quiet:     quiet,
		Format:    logging.Format(logFormat),
		LogFile:   logFile,
		Output:    cmd.ErrOrStderr(),
	})
	if err != nil {
		if errors.Is(err, logging.ErrQuietVerbose) {
			return errors.NewUserError(err, "use either --quiet or --verbose")
		}
		return errors.NewUserError(err, "check the --log-file path")
	}
	closeLog = closer
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// tolerateConfigError marks commands that still run when the config file
// is invalid, so it can be inspected or repaired.
const tolerateConfigError = "tolerate-config-error"

// checkConfig fails commands that depend on configuration when it did not
// load.
func checkConfig(cmd *cobra.Command) error {
	if configLoadErr == nil || cmd.Name() == "help" {
		return nil
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[tolerateConfigError] == "true" {
			return nil
		}
	}
	return errors.NewConfigError(configLoadErr)
}

// stateFile returns where extra paths are persisted.
func stateFile() string {
	if cfg.StateFile != "" {
		return cfg.StateFile
	}
	return paths.DefaultStateFile()
}

// loadHost loads persisted extra paths, appends extra, and enumerates
// runtimes.
func loadHost(cmd *cobra.Command, extra []string) (cli.Host, error) {
	st, err := loadState(stateFile())
	if err != nil {
		return nil, errors.NewSystemError(err, "check or delete "+stateFile())
	}
	h := newHost(logging.FromContext(cmd.Context()))
	if err := h.Refresh(append(st.ExtraPaths, extra...)); err != nil {
		return nil, platformError(err)
	}
	return h, nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeLog(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "closing log file")
	}
	return err
}
