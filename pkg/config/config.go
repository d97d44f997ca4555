// Package config holds the chart configuration shared by the CLI and the
// pipeline.
//
// A Config is assembled in layers, each overriding the previous one:
//
//  1. [Default]: a 900x500 treatment-by-gender chart
//  2. a TOML file ([Load])
//  3. MEKKO_* environment variables ([Config.ApplyEnv])
//  4. command-line flags (internal/cli)
//
// [Config.Validate] must pass before the config is used.
package config

import (
	"time"

	"github.com/matzehuels/mekko/pkg/mekko"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "MEKKO_"

const (
	LabelsCount   = "count"
	LabelsPercent = "percent"
	LabelsNone    = "none"

	StyleSimple  = "simple"
	StyleOutline = "outline"
)

// Margins surround the plot area inside the SVG viewport.
type Margins struct {
	Top    float64 `toml:"top" env:"TOP" validate:"gte=0"`
	Right  float64 `toml:"right" env:"RIGHT" validate:"gte=0"`
	Bottom float64 `toml:"bottom" env:"BOTTOM" validate:"gte=0"`
	Left   float64 `toml:"left" env:"LEFT" validate:"gte=0"`
}

// Cache configures artifact caching. RedisURL takes precedence over Dir.
type Cache struct {
	Disabled bool     `toml:"disabled" env:"DISABLED"`
	Dir      string   `toml:"dir,omitempty" env:"DIR"`
	RedisURL string   `toml:"redis_url,omitempty" env:"REDIS_URL" validate:"omitempty,url"`
	TTL      Duration `toml:"ttl" env:"TTL"`
}

// Config describes one chart: input columns, aggregation policies, geometry
// and presentation.
type Config struct {
	Outer string `toml:"outer" env:"OUTER" validate:"required"`
	Inner string `toml:"inner" env:"INNER" validate:"required"`

	InnerKeys    []string `toml:"inner_keys" env:"INNER_KEYS"`
	OuterKeys    []string `toml:"outer_keys" env:"OUTER_KEYS"`
	Missing      string   `toml:"missing" env:"MISSING" validate:"oneof=drop bucket"`
	UnknownLabel string   `toml:"unknown_label" env:"UNKNOWN_LABEL" validate:"required"`
	Zero         string   `toml:"zero" env:"ZERO" validate:"oneof=include skip"`
	Order        string   `toml:"order" env:"ORDER" validate:"oneof=first-seen sorted"`

	Width   float64 `toml:"width" env:"WIDTH" validate:"gt=0"`
	Height  float64 `toml:"height" env:"HEIGHT" validate:"gt=0"`
	Margins Margins `toml:"margins" envPrefix:"MARGIN_"`

	Title   string   `toml:"title,omitempty" env:"TITLE"`
	Labels  string   `toml:"labels" env:"LABELS" validate:"oneof=count percent none"`
	Style   string   `toml:"style" env:"STYLE" validate:"oneof=simple outline"`
	Palette []string `toml:"palette,omitempty" env:"PALETTE" validate:"dive,hexcolor"`

	Cache Cache `toml:"cache" envPrefix:"CACHE_"`
}

// Default returns the treatment-by-gender survey chart: a 900x500 viewport
// with room for the legend on the right.
func Default() Config {
	return Config{
		Outer:        "Gender",
		Inner:        "Treatment",
		Missing:      string(mekko.MissingDrop),
		UnknownLabel: mekko.DefaultUnknownLabel,
		Zero:         string(mekko.ZeroInclude),
		Order:        string(mekko.OrderFirstSeen),
		Width:        900,
		Height:       500,
		Margins:      Margins{Top: 40, Right: 150, Bottom: 60, Left: 60},
		Labels:       LabelsCount,
		Style:        StyleSimple,
		Cache:        Cache{TTL: Duration(24 * time.Hour)},
	}
}

// PlotWidth is the width available to the columns.
func (c Config) PlotWidth() float64 { return c.Width - c.Margins.Left - c.Margins.Right }

// PlotHeight is the height available to the segments.
func (c Config) PlotHeight() float64 { return c.Height - c.Margins.Top - c.Margins.Bottom }

// AggregateOptions translates the config into aggregator options.
func (c Config) AggregateOptions() mekko.AggregateOptions {
	order := mekko.Order(c.Order)
	return mekko.AggregateOptions{
		Outer:        mekko.Field(c.Outer),
		Inner:        mekko.Field(c.Inner),
		Missing:      mekko.MissingPolicy(c.Missing),
		UnknownLabel: c.UnknownLabel,
		InnerKeys:    c.InnerKeys,
		OuterKeys:    c.OuterKeys,
		OuterOrder:   order,
		InnerOrder:   order,
	}
}

// LayoutOptions translates the config into layout options.
func (c Config) LayoutOptions() []mekko.LayoutOption {
	return []mekko.LayoutOption{mekko.WithZeroPolicy(mekko.ZeroPolicy(c.Zero))}
}

// Fields returns the columns the input must provide.
func (c Config) Fields() []string {
	if c.Outer == c.Inner {
		return []string{c.Outer}
	}
	return []string{c.Outer, c.Inner}
}
