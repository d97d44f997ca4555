// Package pipeline runs the load → aggregate → layout → render pipeline
// behind the mekko CLI.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read the dataset and hash its bytes
//  2. Layout: aggregate the records and tile the plot area
//  3. Render: produce the requested formats (SVG, JSON, PNG, PDF)
//
// Layouts are cached under the dataset hash plus every option that changes
// the geometry; artifacts are cached under the layout hash plus every
// option that changes the drawing. Editing the CSV or a flag therefore
// never returns a stale chart.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "survey.csv",
//	    Config:  config.Default(),
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mekko/pkg/cache"
	"github.com/matzehuels/mekko/pkg/config"
	errs "github.com/matzehuels/mekko/pkg/errors"
	"github.com/matzehuels/mekko/pkg/mekko"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// DefaultPNGScale is the raster resolution multiplier for PNG output.
const DefaultPNGScale = 2.0

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the dataset path (.csv, .tsv or .json).
	Input string
	// Config is the chart configuration; it must validate.
	Config config.Config
	// Formats lists the outputs to render. Empty selects svg.
	Formats []string
	// Refresh bypasses cached results and overwrites them.
	Refresh bool

	Logger *log.Logger
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DataHash is the SHA-256 of the input bytes.
	DataHash string
	// Table is the frequency table behind the layout.
	Table mekko.Table
	// Layout is the chart geometry in plot coordinates.
	Layout mekko.Layout
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int
	Dropped    int
	Columns    int
	Rects      int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // layout and table came from cache
	RenderHit bool // every artifact came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return errs.New(errs.ErrCodeInvalidInput, "input file is required")
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	c := o.Config
	return cache.LayoutKeyOpts{
		Decoder:      strings.ToLower(filepath.Ext(inputName(o.Input))),
		Outer:        c.Outer,
		Inner:        c.Inner,
		InnerKeys:    c.InnerKeys,
		OuterKeys:    c.OuterKeys,
		Missing:      c.Missing,
		UnknownLabel: c.UnknownLabel,
		Zero:         c.Zero,
		Order:        c.Order,
		Width:        c.PlotWidth(),
		Height:       c.PlotHeight(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	c := o.Config
	opts := cache.ArtifactKeyOpts{
		Format:  format,
		Style:   c.Style,
		Labels:  c.Labels,
		Title:   c.Title,
		Margins: [4]float64{c.Margins.Top, c.Margins.Right, c.Margins.Bottom, c.Margins.Left},
		Palette: c.Palette,
	}
	if format == FormatPNG {
		opts.Scale = DefaultPNGScale
	}
	return opts
}
