// Package sink renders a [mekko.Layout] to output formats.
//
// All raster and vector sinks share one scene: the layout's rects offset by
// the chart margins, one axis label per column centred below it, a legend
// of inner keys to the right of the plot and an optional title above it.
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithMargins(sink.Margins{Top: 40, Right: 150, Bottom: 60, Left: 60}),
//	    sink.WithLabels(sink.LabelCount),
//	)
//	png, err := sink.RenderPNG(layout, sink.WithPNGScale(2))
//	pdf, err := sink.RenderPDF(ctx, layout)  // requires rsvg-convert
//	js, err := sink.RenderJSON(layout)
//
// [mekko.Layout]: github.com/matzehuels/mekko/pkg/mekko.Layout
package sink
