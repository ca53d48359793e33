package commands

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/xrpick/internal/config"
	"github.com/thoreinstein/xrpick/internal/editor"
	"github.com/thoreinstein/xrpick/internal/errors"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage xrpick configuration",
	Long: `Manage xrpick configuration stored in ~/.config/xrpick/config.yaml.

Keys:
  version       config schema version (1)
  state_file    where extra manifest paths are persisted
  list_format   default output of "xrpick list": table, json, yaml, toml

Values can also be set through XRPICK_<KEY> environment variables.
Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  xrpick config

  # Get a specific value
  xrpick config get list_format

  # Set a value
  xrpick config set list_format json

See Also: xrpick doctor`,
	Annotations: map[string]string{tolerateConfigError: "true"},
	RunE:        runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Example: `  xrpick config get state_file

See Also: xrpick config set, xrpick config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. The value is validated before the file is
written.`,
	Example: `  xrpick config set list_format yaml
  xrpick config set state_file ~/.local/state/xrpick/state.yaml

See Also: xrpick config get, xrpick config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

Uses $EDITOR, then $VISUAL, then nano or vi.`,
	Example: `  EDITOR=nano xrpick config edit

See Also: xrpick config list`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

// configPath is the file config set and edit operate on.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	return config.DefaultPath()
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !slices.Contains(config.Keys(), key) {
		return errors.NewUserError(
			errors.Mark(errors.Newf("unknown configuration key %q", key), config.ErrUnknownKey),
			"valid keys: "+strings.Join(config.Keys(), ", "))
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := config.Set(configPath(), key, value); err != nil {
		if errors.Is(err, config.ErrUnknownKey) || errors.Is(err, config.ErrInvalidValue) ||
			errors.Is(err, config.ErrInvalidFormat) || errors.Is(err, config.ErrInvalidPath) ||
			errors.Is(err, config.ErrUnsupportedVersion) {
			return errors.NewUserError(err, "Run: xrpick config --help")
		}
		return errors.NewSystemError(err, "check permissions on "+configPath())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, viper.GetString(key))
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(config.Current())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	path := configPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.NewUserError(errors.Newf("config file not found at %s", path),
			"create it with: xrpick config set list_format table")
	}
	return editor.New().Open(path)
}
