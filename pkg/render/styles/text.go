package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.6
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 8.0
	fontSizeMax     = 16.0
)

// FontSize picks a label size that fits inside the segment.
func FontSize(r Rect) float64 {
	n := max(1, len(r.Label))
	byHeight := r.H * fontHeightRatio
	byWidth := (r.W * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// LabelFits reports whether the label can be drawn at the minimum font size.
func LabelFits(r Rect) bool {
	if r.Label == "" {
		return false
	}
	needW := float64(len(r.Label)) * fontCharWidth * fontSizeMin / fontWidthRatio
	return r.H >= fontSizeMin/fontHeightRatio && r.W >= needW
}

// EscapeXML escapes s for use in attribute values and text nodes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
