package sink

import (
	"context"

	"github.com/matzehuels/mekko/pkg/mekko"
	"github.com/matzehuels/mekko/pkg/render"
)

// RenderPDF renders the layout as SVG and converts it with rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, l mekko.Layout, opts ...Option) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(l, opts...))
}
