// Package mekko computes Marimekko chart geometry from categorical records.
//
// # Overview
//
// A Marimekko chart is a stacked bar chart where both the bar width and the
// segment height encode frequencies: each column's width is proportional to
// its outer category's share of all records, and each segment's height is
// proportional to the inner category's share within that column. Every
// column therefore spans the full plot height.
//
// The package is split in two pure stages:
//
//  1. [Aggregate] groups records by an outer and an inner key and produces a
//     [Table] of counts, per-outer totals and the canonical key orders.
//  2. [Build] turns a [Table] into a [Layout]: one [Rect] per (outer, inner)
//     pair, positioned in plot coordinates.
//
// Neither stage draws anything. Renderers in render/sink consume a [Layout]
// together with a [Palette] that maps inner keys to colors.
//
// # Coordinates
//
// Rectangles use screen coordinates with the origin at the top-left of the
// plot area. Segments stack from the bottom of each column upward, so the
// first inner key sits at the bottom.
//
// # Policies
//
// Records with an empty outer or inner key are dropped by default
// ([MissingDrop]) or counted under a sentinel label ([MissingBucket]). The
// inner-key universe is either discovered from the data or fixed up front
// with [AggregateOptions.InnerKeys]; records outside a fixed list are dropped.
// Pairs with a zero count produce a zero-height rect ([ZeroInclude]) or no
// rect at all ([ZeroSkip]).
//
// # Rounding
//
// No correction pass is applied: segment heights are computed independently
// and accumulated, so a column's top edge may differ from zero by a few ULPs.
//
// # Example
//
//	table := mekko.Aggregate(records, mekko.AggregateOptions{
//	    Outer: mekko.Field("Gender"),
//	    Inner: mekko.Field("Treatment"),
//	})
//	layout := mekko.Build(table, 690, 400)
//	for _, r := range layout.Rects {
//	    fmt.Println(r.Outer, r.Inner, r.Count, r.Width, r.Height)
//	}
package mekko
