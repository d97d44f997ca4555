package styles

import (
	"bytes"
	"fmt"
)

// Outline draws translucent segments bordered in their own color. Labels
// use the border color, so it reads well on light backgrounds.
type Outline struct {
	// Opacity of the segment fill; 0 selects 0.25.
	Opacity float64
}

func (o Outline) opacity() float64 {
	if o.Opacity <= 0 || o.Opacity > 1 {
		return 0.25
	}
	return o.Opacity
}

func (Outline) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", simpleCSS)
}

func (o Outline) RenderRect(buf *bytes.Buffer, r Rect) {
	fmt.Fprintf(buf, `  <rect id="%s" class="segment" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="2"/>`+"\n",
		EscapeXML(r.ID), r.X, r.Y, r.W, r.H, r.Fill, o.opacity(), r.Fill)
}

func (Outline) RenderLabel(buf *bytes.Buffer, r Rect) {
	renderSegmentLabel(buf, r, r.Fill)
}

func (Outline) RenderText(buf *bytes.Buffer, t Text) {
	renderText(buf, t)
}

func (o Outline) RenderSwatch(buf *bytes.Buffer, s Swatch) {
	fmt.Fprintf(buf, `  <rect class="swatch" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="2"/>`+"\n",
		s.X, s.Y, s.S, s.S, s.Fill, o.opacity(), s.Fill)
}

var _ Style = Outline{}
