package cli

import (
	"github.com/spf13/cobra"
)

// configCommand creates the config command, which prints the configuration
// render would use after layering file, environment and flags.
func (c *CLI) configCommand() *cobra.Command {
	var chart chartFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := chart.resolve(cmd)
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
	chart.register(cmd)
	return cmd
}
