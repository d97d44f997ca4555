// Package styles draws the primitives of a Marimekko chart as SVG.
//
// Sinks translate a layout into positioned primitives ([Rect], [Text],
// [Swatch]) in viewport coordinates and hand them to a [Style], which only
// decides how they look. [Simple] reproduces the classic filled chart with
// white separators; [Outline] draws tinted segments with colored borders.
package styles

import "bytes"

// Style defines the visual appearance of a chart.
type Style interface {
	// RenderDefs writes SVG <defs> and <style> content.
	RenderDefs(buf *bytes.Buffer)
	// RenderRect writes one segment.
	RenderRect(buf *bytes.Buffer, r Rect)
	// RenderLabel writes the text centred inside a segment.
	RenderLabel(buf *bytes.Buffer, r Rect)
	// RenderText writes free-standing text (axis labels, title, legend).
	RenderText(buf *bytes.Buffer, t Text)
	// RenderSwatch writes a legend color sample.
	RenderSwatch(buf *bytes.Buffer, s Swatch)
}

// Rect is a positioned chart segment.
type Rect struct {
	ID         string  // stable element id, e.g. "seg-Male-Yes"
	Outer      string  // column key
	Inner      string  // stacking key
	X, Y, W, H float64 // viewport coordinates
	Fill       string  // #rrggbb
	TextFill   string  // label color chosen for contrast with Fill
	Label      string  // empty for no label
}

// CX returns the horizontal center.
func (r Rect) CX() float64 { return r.X + r.W/2 }

// CY returns the vertical center.
func (r Rect) CY() float64 { return r.Y + r.H/2 }

// Anchor is an SVG text-anchor value.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a positioned label outside the segments.
type Text struct {
	Class  string // CSS class: "axis-label", "legend-label", "title"
	Value  string
	X, Y   float64
	Anchor Anchor
	Size   float64
}

// Swatch is a legend color sample.
type Swatch struct {
	Key     string
	X, Y, S float64
	Fill    string
}
