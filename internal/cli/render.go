package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mekko/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chart   chartFlags
	output  string // output file (single format) or base path (multiple)
	formats string // comma-separated formats
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <data.csv>",
		Short: "Render a Marimekko chart from a dataset",
		Long: `Render a Marimekko chart from a CSV, TSV or JSON dataset.

The outer column splits the plot into columns whose widths follow each
category's share of all rows; the inner column stacks segments inside each
column by their share of that column.`,
		Example: `  mekko render survey.csv
  mekko render survey.csv --outer Country --inner Treatment -f svg,png
  mekko render survey.csv --inner-keys Yes,No --labels percent -o chart.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.chart.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatSVG, "output format(s): svg, json, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute and overwrite cached results")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	cfg, err := opts.chart.resolve(cmd)
	if err != nil {
		return err
	}
	formats := pipeline.ParseFormats(opts.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg.Cache, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:   input,
		Config:  cfg,
		Formats: formats,
		Refresh: opts.refresh,
	})
	if err != nil {
		return err
	}
	prog.done("Rendered " + input)

	out := cmd.OutOrStdout()
	paths := outputPaths(opts.output, input, formats)
	for _, format := range formats {
		if err := os.WriteFile(paths[format], result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", paths[format], err)
		}
	}

	if result.Layout.Empty() {
		printWarning(out, "No rows with both %s and %s; chart is empty", cfg.Outer, cfg.Inner)
	} else {
		printSuccess(out, "Rendered %s by %s", cfg.Inner, cfg.Outer)
	}
	for _, format := range formats {
		printFile(out, paths[format])
	}
	printStats(out, result.Stats.Records, result.Stats.Columns, result.Stats.Rects, result.Stats.Dropped,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	return nil
}

// basePath derives the base output path. An empty output strips the
// extension from input; an output ending in a format extension loses it.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to its file. A single format written to an
// explicit output keeps that exact path.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
