package mekko

import "slices"

// ZeroPolicy decides whether a pair with no records produces a rect.
type ZeroPolicy string

const (
	// ZeroInclude emits a zero-height rect for empty pairs so every column
	// lists every inner key.
	ZeroInclude ZeroPolicy = "include"
	// ZeroSkip emits no rect for empty pairs.
	ZeroSkip ZeroPolicy = "skip"
)

// Rect is one (outer, inner) segment in plot coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Outer  string  `json:"outer"`
	Inner  string  `json:"inner"`
	Count  int     `json:"count"`
}

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the rect.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Column is the vertical strip of one outer key.
type Column struct {
	Key   string  `json:"key"`
	X     float64 `json:"x"`
	Width float64 `json:"width"`
	Total int     `json:"total"`
}

// CenterX returns the horizontal center of the column.
func (c Column) CenterX() float64 { return c.X + c.Width/2 }

// Layout is the complete chart geometry. Rects are ordered column by column
// (outer order), bottom to top within a column (inner order).
type Layout struct {
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Outer   []string `json:"outer"`
	Inner   []string `json:"inner"`
	Columns []Column `json:"columns"`
	Rects   []Rect   `json:"rects"`
	Grand   int      `json:"grand_total"`
}

// LayoutOption configures [Build].
type LayoutOption func(*builder)

type builder struct {
	zero ZeroPolicy
}

// WithZeroPolicy sets how zero-count pairs are emitted (default ZeroInclude).
func WithZeroPolicy(p ZeroPolicy) LayoutOption {
	return func(b *builder) {
		if p != "" {
			b.zero = p
		}
	}
}

// Build tiles a width×height plot area with one rect per (outer, inner)
// pair. Column widths are proportional to each outer total's share of the
// grand total; segment heights are proportional to each inner count's share
// of its own column total.
//
// An empty table yields a layout with no columns and no rects. Outer keys
// with a zero total are skipped.
func Build(t Table, width, height float64, opts ...LayoutOption) Layout {
	b := builder{zero: ZeroInclude}
	for _, opt := range opts {
		opt(&b)
	}

	l := Layout{
		Width:   width,
		Height:  height,
		Outer:   slices.Clone(t.Outer),
		Inner:   slices.Clone(t.Inner),
		Columns: make([]Column, 0, len(t.Outer)),
		Rects:   make([]Rect, 0, len(t.Outer)*len(t.Inner)),
		Grand:   t.Grand,
	}
	if t.Grand <= 0 {
		return l
	}

	x := 0.0
	for _, outer := range t.Outer {
		total := t.Totals[outer]
		if total <= 0 {
			continue
		}
		colWidth := float64(total) / float64(t.Grand) * width
		l.Columns = append(l.Columns, Column{Key: outer, X: x, Width: colWidth, Total: total})

		y := 0.0
		for _, inner := range t.Inner {
			count := t.Counts[outer][inner]
			if count == 0 && b.zero == ZeroSkip {
				continue
			}
			segHeight := float64(count) / float64(total) * height
			l.Rects = append(l.Rects, Rect{
				X:      x,
				Y:      height - y - segHeight,
				Width:  colWidth,
				Height: segHeight,
				Outer:  outer,
				Inner:  inner,
				Count:  count,
			})
			y += segHeight
		}
		x += colWidth
	}
	return l
}

// Empty reports whether the layout has no rects.
func (l Layout) Empty() bool { return len(l.Rects) == 0 }

// Column returns the column for an outer key.
func (l Layout) Column(key string) (Column, bool) {
	for _, c := range l.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// RectsFor returns the rects of one column, bottom to top.
func (l Layout) RectsFor(outer string) []Rect {
	var out []Rect
	for _, r := range l.Rects {
		if r.Outer == outer {
			out = append(out, r)
		}
	}
	return out
}

// Share returns the rect's fraction of its column, in [0, 1].
func (l Layout) Share(r Rect) float64 {
	if l.Height == 0 {
		return 0
	}
	return r.Height / l.Height
}
