package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	errs "github.com/matzehuels/mekko/pkg/errors"
	"github.com/matzehuels/mekko/pkg/mekko"
	"github.com/matzehuels/mekko/pkg/render/styles"
)

// RenderPNG rasterizes the chart natively. It always paints the simple
// style; WithScale controls the output resolution.
func RenderPNG(l mekko.Layout, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	s := buildScene(l, o)

	w := int(math.Ceil(s.width * o.scale))
	h := int(math.Ceil(s.height * o.scale))
	if w <= 0 || h <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "empty canvas %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.SetHexColor("#ffffff")
	dc.Clear()
	dc.Scale(o.scale, o.scale)

	for _, r := range s.rects {
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		dc.SetHexColor(r.Fill)
		dc.FillPreserve()
		dc.SetHexColor("#ffffff")
		dc.SetLineWidth(1)
		dc.Stroke()
	}
	for _, r := range s.rects {
		if !styles.LabelFits(r) {
			continue
		}
		dc.SetHexColor(r.TextFill)
		dc.DrawStringAnchored(r.Label, r.CX(), r.CY(), 0.5, 0.5)
	}
	for _, sw := range s.swatches {
		dc.DrawRectangle(sw.X, sw.Y, sw.S, sw.S)
		dc.SetHexColor(sw.Fill)
		dc.Fill()
	}
	dc.SetHexColor("#222222")
	for _, t := range s.texts {
		dc.DrawStringAnchored(t.Value, t.X, t.Y, anchorX(t.Anchor), 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func anchorX(a styles.Anchor) float64 {
	switch a {
	case styles.AnchorMiddle:
		return 0.5
	case styles.AnchorEnd:
		return 1
	}
	return 0
}
