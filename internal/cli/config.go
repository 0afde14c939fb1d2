package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/create-repro/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write create-repro settings stored in the user config file.

Keys: ` + strings.Join(config.Keys(), ", ") + `

Every key can also be set through the environment with the ` + config.EnvPrefix + `_ prefix,
for example ` + config.EnvPrefix + `_PACKAGE.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := config.Get(configFilePath(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(configFilePath(), key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		printSuccess(fmt.Sprintf("Set %s = %s", key, value))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFilePath())
		if err != nil {
			return err
		}
		data, err := config.ToYAML(cfg)
		if err != nil {
			return err
		}
		printInfo("# " + configFilePath())
		fmt.Fprint(stdout, string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
}

// configFilePath returns the --config path or the default location.
func configFilePath() string {
	if globalConfigPath != "" {
		return globalConfigPath
	}
	return config.DefaultConfigPath()
}
