// Package render holds format conversion shared by the chart sinks.
//
// [ToPDF] converts an SVG document to PDF with the external rsvg-convert
// tool from librsvg. PNG output does not need it: sink.RenderPNG rasterizes
// natively.
//
//	svg := sink.RenderSVG(layout)
//	pdf, err := render.ToPDF(ctx, svg)
//
// Subpackages:
//   - [styles]: how segments, labels and the legend are drawn in SVG
//   - [sink]: SVG, PNG, PDF and JSON output
//
// [styles]: github.com/matzehuels/mekko/pkg/render/styles
// [sink]: github.com/matzehuels/mekko/pkg/render/sink
package render
