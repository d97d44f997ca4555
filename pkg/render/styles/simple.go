package styles

import (
	"bytes"
	"fmt"
)

const simpleCSS = `
    text { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; fill: #222; }
    .segment-label { font-weight: 600; }
    .title { font-weight: 700; }`

// Simple fills each segment and separates segments with white strokes.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", simpleCSS)
}

func (Simple) RenderRect(buf *bytes.Buffer, r Rect) {
	fmt.Fprintf(buf, `  <rect id="%s" class="segment" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="white" stroke-width="1"/>`+"\n",
		EscapeXML(r.ID), r.X, r.Y, r.W, r.H, r.Fill)
}

func (Simple) RenderLabel(buf *bytes.Buffer, r Rect) {
	renderSegmentLabel(buf, r, r.TextFill)
}

func (Simple) RenderText(buf *bytes.Buffer, t Text) {
	renderText(buf, t)
}

func (Simple) RenderSwatch(buf *bytes.Buffer, s Swatch) {
	fmt.Fprintf(buf, `  <rect class="swatch" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		s.X, s.Y, s.S, s.S, s.Fill)
}

func renderSegmentLabel(buf *bytes.Buffer, r Rect, fill string) {
	if !LabelFits(r) {
		return
	}
	fmt.Fprintf(buf, `  <text class="segment-label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" style="fill:%s">%s</text>`+"\n",
		r.CX(), r.CY(), FontSize(r), fill, EscapeXML(r.Label))
}

func renderText(buf *bytes.Buffer, t Text) {
	if t.Value == "" {
		return
	}
	anchor := t.Anchor
	if anchor == "" {
		anchor = AnchorStart
	}
	size := t.Size
	if size == 0 {
		size = 12
	}
	fmt.Fprintf(buf, `  <text class="%s" x="%.2f" y="%.2f" text-anchor="%s" font-size="%.1f">%s</text>`+"\n",
		t.Class, t.X, t.Y, anchor, size, EscapeXML(t.Value))
}

var _ Style = Simple{}
