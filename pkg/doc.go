// Package pkg provides the libraries behind mekko, a Marimekko chart
// generator.
//
// # Overview
//
// A Marimekko chart is a variable-width stacked bar chart over two
// categorical fields. Each outer category becomes a column whose width is
// its share of all rows; each inner category becomes a segment whose
// height is its share of that column.
//
// # Architecture
//
// The typical data flow:
//
//	CSV / TSV / JSON (local file or http(s) URL)
//	         ↓
//	    [dataset] (rows as string maps)
//	         ↓
//	    [mekko.Aggregate] (two-level frequency table)
//	         ↓
//	    [mekko.Build] (rectangles tiling the plot area)
//	         ↓
//	    [render/sink] (SVG, JSON, PNG, PDF)
//
// [mekko] is pure geometry and imports nothing from the rendering side.
//
// # Quick Start
//
//	records, _ := dataset.Load("survey.csv", dataset.Options{})
//	table := mekko.Aggregate(records, mekko.AggregateOptions{
//	    Outer: mekko.Field("Gender"),
//	    Inner: mekko.Field("Treatment"),
//	})
//	l := mekko.Build(table, 690, 400)
//	svg := sink.RenderSVG(l, sink.WithMargins(sink.Margins{Top: 40, Right: 150, Bottom: 60, Left: 60}))
//
// # Main Packages
//
// [mekko] - Frequency aggregation, layout and color palette.
//
// [dataset] - CSV, TSV and JSON loaders.
//
// [config] - Chart configuration with TOML, environment and validation.
//
// [pipeline] - load → layout → render with caching, used by the CLI.
//
// [render/sink] - Output formats; [render/styles] - SVG drawing styles.
//
// [cache] - Null, file and Redis caches for layouts and artifacts.
//
// [httputil] - Remote dataset download with retries.
//
// [observability] - Hooks for pipeline and cache events.
//
// [errors] - Structured error codes.
//
// [buildinfo] - Version information set at link time.
//
// [mekko]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/mekko
// [dataset]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/dataset
// [config]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/pipeline
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/render/styles
// [cache]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mekko/pkg/buildinfo
package pkg
