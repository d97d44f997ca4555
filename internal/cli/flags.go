package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mekko/pkg/config"
)

// chartFlags are the config overrides shared by render, table and config.
type chartFlags struct {
	configPath string
	outer      string
	inner      string
	innerKeys  []string
	outerKeys  []string
	missing    string
	unknown    string
	zero       string
	order      string
	width      float64
	height     float64
	title      string
	labels     string
	style      string
	palette    []string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	def := config.Default()
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	fs.StringVar(&f.outer, "outer", def.Outer, "column that splits the chart into columns")
	fs.StringVar(&f.inner, "inner", def.Inner, "column stacked inside each column")
	fs.StringSliceVar(&f.innerKeys, "inner-keys", nil, "fixed inner categories in stacking order (others are dropped)")
	fs.StringSliceVar(&f.outerKeys, "outer-keys", nil, "outer categories to place first")
	fs.StringVar(&f.missing, "missing", def.Missing, "rows with an empty key: drop, bucket")
	fs.StringVar(&f.unknown, "unknown-label", def.UnknownLabel, "category name for bucketed rows")
	fs.StringVar(&f.zero, "zero", def.Zero, "empty segments: include, skip")
	fs.StringVar(&f.order, "order", def.Order, "category order: first-seen, sorted")
	fs.Float64Var(&f.width, "width", def.Width, "viewport width")
	fs.Float64Var(&f.height, "height", def.Height, "viewport height")
	fs.StringVar(&f.title, "title", "", "chart title")
	fs.StringVar(&f.labels, "labels", def.Labels, "segment labels: count, percent, none")
	fs.StringVar(&f.style, "style", def.Style, "visual style: simple, outline")
	fs.StringSliceVar(&f.palette, "palette", nil, "inner-key colors as hex (e.g. #1f77b4,#ff7f0e)")
}

// resolve layers defaults, the config file, the environment and every flag
// the user set explicitly, then validates the result.
func (f *chartFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		if err := cfg.MergeFile(f.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("outer", func() { cfg.Outer = f.outer })
	set("inner", func() { cfg.Inner = f.inner })
	set("inner-keys", func() { cfg.InnerKeys = f.innerKeys })
	set("outer-keys", func() { cfg.OuterKeys = f.outerKeys })
	set("missing", func() { cfg.Missing = f.missing })
	set("unknown-label", func() { cfg.UnknownLabel = f.unknown })
	set("zero", func() { cfg.Zero = f.zero })
	set("order", func() { cfg.Order = f.order })
	set("width", func() { cfg.Width = f.width })
	set("height", func() { cfg.Height = f.height })
	set("title", func() { cfg.Title = f.title })
	set("labels", func() { cfg.Labels = f.labels })
	set("style", func() { cfg.Style = f.style })
	set("palette", func() { cfg.Palette = f.palette })

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
