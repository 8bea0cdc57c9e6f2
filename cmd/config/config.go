// Package config prints the effective configuration.
package config

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/insurance-summary/cmd/root"
	appconfig "fjacquet/insurance-summary/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration in effect after merging defaults, the config file,
INSSUM_ environment variables and command-line flags. The output is a valid
config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if root.AppContainer == nil {
			return errors.New("application not initialized")
		}
		return Print(cmd.OutOrStdout(), root.AppContainer.GetConfig())
	},
}

// Print writes cfg as YAML.
func Print(out io.Writer, cfg *appconfig.Config) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return enc.Close()
}
