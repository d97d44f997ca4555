package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/mekko/pkg/config"
	"github.com/matzehuels/mekko/pkg/mekko"
	"github.com/matzehuels/mekko/pkg/render/sink"
	"github.com/matzehuels/mekko/pkg/render/styles"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l mekko.Layout, cfg config.Config, formats []string) (map[string][]byte, error) {
	opts, err := sinkOptions(l, cfg)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		var data []byte
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, opts...)
		case FormatJSON:
			data, err = sink.RenderJSON(l, opts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, append(opts, sink.WithScale(DefaultPNGScale))...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, opts...)
		default:
			return nil, ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func sinkOptions(l mekko.Layout, cfg config.Config) ([]sink.Option, error) {
	style, err := styles.ByName(cfg.Style)
	if err != nil {
		return nil, err
	}
	m := cfg.Margins
	opts := []sink.Option{
		sink.WithMargins(sink.Margins{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}),
		sink.WithLabels(sink.LabelMode(cfg.Labels)),
		sink.WithTitle(cfg.Title),
		sink.WithStyle(style),
	}
	if len(cfg.Palette) > 0 {
		p, err := mekko.NewPalette(l.Inner, cfg.Palette)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sink.WithPalette(p))
	}
	return opts, nil
}
