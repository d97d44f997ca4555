package sink

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/mekko/pkg/mekko"
	"github.com/matzehuels/mekko/pkg/render/styles"
)

// LabelMode selects the text drawn inside each segment.
type LabelMode string

const (
	LabelCount   LabelMode = "count"
	LabelPercent LabelMode = "percent"
	LabelNone    LabelMode = "none"
)

// Margins surround the plot area.
type Margins struct {
	Top, Right, Bottom, Left float64
}

const (
	axisLabelOffset = 20.0
	legendOffset    = 20.0
	legendSwatch    = 15.0
	legendSpacing   = 25.0
	legendTextGap   = 5.0
	titleSize       = 16.0
)

// Option configures every sink. Format-specific options wrap it.
type Option func(*options)

type options struct {
	margins Margins
	labels  LabelMode
	title   string
	palette *mekko.Palette
	style   styles.Style
	scale   float64
}

func newOptions(opts []Option) options {
	o := options{labels: LabelCount, style: styles.Simple{}, scale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMargins offsets the plot inside the viewport.
func WithMargins(m Margins) Option { return func(o *options) { o.margins = m } }

// WithLabels selects segment labels (default LabelCount).
func WithLabels(m LabelMode) Option {
	return func(o *options) {
		if m != "" {
			o.labels = m
		}
	}
}

// WithTitle draws a title centred above the plot.
func WithTitle(t string) Option { return func(o *options) { o.title = t } }

// WithStyle sets the SVG style (default styles.Simple).
func WithStyle(s styles.Style) Option {
	return func(o *options) {
		if s != nil {
			o.style = s
		}
	}
}

// WithScale multiplies raster output resolution (default 1).
func WithScale(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.scale = f
		}
	}
}

// WithPalette overrides the default Category10 palette over the layout's
// inner keys.
func WithPalette(p mekko.Palette) Option { return func(o *options) { o.palette = &p } }

// scene is a layout resolved into positioned primitives.
type scene struct {
	width, height float64
	rects         []styles.Rect
	texts         []styles.Text
	swatches      []styles.Swatch
}

func buildScene(l mekko.Layout, o options) scene {
	palette := mekko.MustPalette(l.Inner, nil)
	if o.palette != nil {
		palette = *o.palette
	}
	m := o.margins

	s := scene{
		width:  l.Width + m.Left + m.Right,
		height: l.Height + m.Top + m.Bottom,
		rects:  make([]styles.Rect, 0, len(l.Rects)),
	}

	for _, r := range l.Rects {
		fill := palette.Color(r.Inner)
		s.rects = append(s.rects, styles.Rect{
			ID:       segmentID(r),
			Outer:    r.Outer,
			Inner:    r.Inner,
			X:        r.X + m.Left,
			Y:        r.Y + m.Top,
			W:        r.Width,
			H:        r.Height,
			Fill:     fill.Hex(),
			TextFill: mekko.TextColor(fill).Hex(),
			Label:    segmentLabel(l, r, o.labels),
		})
	}

	for _, c := range l.Columns {
		s.texts = append(s.texts, styles.Text{
			Class:  "axis-label",
			Value:  c.Key,
			X:      c.CenterX() + m.Left,
			Y:      l.Height + m.Top + axisLabelOffset,
			Anchor: styles.AnchorMiddle,
		})
	}

	legendX := l.Width + m.Left + legendOffset
	for i, key := range palette.Keys() {
		y := m.Top + float64(i)*legendSpacing
		s.swatches = append(s.swatches, styles.Swatch{
			Key: key, X: legendX, Y: y, S: legendSwatch, Fill: palette.Hex(key),
		})
		s.texts = append(s.texts, styles.Text{
			Class: "legend-label",
			Value: key,
			X:     legendX + legendSwatch + legendTextGap,
			Y:     y + legendSwatch*0.8,
		})
	}

	if o.title != "" {
		s.texts = append(s.texts, styles.Text{
			Class:  "title",
			Value:  o.title,
			X:      m.Left + l.Width/2,
			Y:      m.Top / 2,
			Anchor: styles.AnchorMiddle,
			Size:   titleSize,
		})
	}
	return s
}

func segmentLabel(l mekko.Layout, r mekko.Rect, mode LabelMode) string {
	switch mode {
	case LabelNone:
		return ""
	case LabelPercent:
		return fmt.Sprintf("%.0f%%", l.Share(r)*100)
	}
	return strconv.Itoa(r.Count)
}

var idReplacer = strings.NewReplacer(" ", "_", "\t", "_", "\n", "_")

func segmentID(r mekko.Rect) string {
	return "seg-" + idReplacer.Replace(r.Outer) + "-" + idReplacer.Replace(r.Inner)
}
