package cli

import (
	"fmt"

	"github.com/solforge/solforge/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write solforge settings stored at ~/.solforge/config.yaml.

Keys:
  ide.path             IDE automation executable (devenv)
  ide.prompt_retries   alternate IDE paths asked for when ide.path is missing
  framework            default target framework, e.g. net8.0
  timeout              per-command timeout, e.g. 5m (0 disables)
  references.strict    fail the run when a project reference cannot be added
  catalog.file         YAML catalog replacing the built-in one
  verbosity            default log verbosity (0-2)

Every key can also be set through the environment, e.g. SOLFORGE_IDE_PATH.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
