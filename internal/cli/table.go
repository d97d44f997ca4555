package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mekko/pkg/pipeline"
)

// tableCommand creates the table command.
func (c *CLI) tableCommand() *cobra.Command {
	var chart chartFlags

	cmd := &cobra.Command{
		Use:   "table <data.csv>",
		Short: "Print the frequency table behind a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := chart.resolve(cmd)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(nil, c.Logger)
			t, records, err := runner.Table(cmd.Context(), pipeline.Options{Input: args[0], Config: cfg})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if t.Empty() {
				printWarning(out, "No rows with both %s and %s", cfg.Outer, cfg.Inner)
				return nil
			}
			fmt.Fprintln(out, renderTable(t, cfg.Outer))
			printDetail(out, "%d records, %d counted, %d dropped", records, t.Grand, t.Dropped)
			return nil
		},
	}
	chart.register(cmd)
	return cmd
}
