package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Config prints the fully resolved configuration as YAML, with
defaults, config file, environment, and flags merged. Useful when a CI run
picked up unexpected settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(resolveConfig())
		if err != nil {
			return fmt.Errorf("marshalling config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
