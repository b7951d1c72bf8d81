package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	Long: `Print the resolved configuration after merging defaults, the config
file and environment variables. The API key is redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		if cfg.Parallel.APIKey != "" {
			cfg.Parallel.APIKey = "********"
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
