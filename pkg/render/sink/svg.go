package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/mekko/pkg/buildinfo"
	"github.com/matzehuels/mekko/pkg/mekko"
)

// RenderSVG renders the layout as a standalone SVG document. Segments are
// emitted in layout order, followed by their labels, the axis labels, the
// legend and the title.
func RenderSVG(l mekko.Layout, opts ...Option) []byte {
	o := newOptions(opts)
	s := buildScene(l, o)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	fmt.Fprintf(&buf, "  <!-- generated by %s -->\n", buildinfo.Generator())

	o.style.RenderDefs(&buf)
	for _, r := range s.rects {
		o.style.RenderRect(&buf, r)
	}
	for _, r := range s.rects {
		o.style.RenderLabel(&buf, r)
	}
	for _, sw := range s.swatches {
		o.style.RenderSwatch(&buf, sw)
	}
	for _, t := range s.texts {
		o.style.RenderText(&buf, t)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
