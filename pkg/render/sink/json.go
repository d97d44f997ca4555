package sink

import (
	"github.com/goccy/go-json"

	"github.com/matzehuels/mekko/pkg/mekko"
)

type jsonOutput struct {
	Width   float64           `json:"width"`
	Height  float64           `json:"height"`
	Plot    jsonPlot          `json:"plot"`
	Title   string            `json:"title,omitempty"`
	Outer   []string          `json:"outer"`
	Inner   []string          `json:"inner"`
	Colors  map[string]string `json:"colors"`
	Grand   int               `json:"grand_total"`
	Columns []mekko.Column    `json:"columns"`
	Rects   []jsonRect        `json:"rects"`
}

type jsonPlot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonRect struct {
	mekko.Rect
	Share float64 `json:"share"`
	Color string  `json:"color"`
}

// RenderJSON serializes the layout with its resolved colors. Rect
// coordinates are relative to the plot area; plot gives its offset inside
// the viewport.
func RenderJSON(l mekko.Layout, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	s := buildScene(l, o)

	out := jsonOutput{
		Width:   s.width,
		Height:  s.height,
		Plot:    jsonPlot{X: o.margins.Left, Y: o.margins.Top, Width: l.Width, Height: l.Height},
		Title:   o.title,
		Outer:   nonNil(l.Outer),
		Inner:   nonNil(l.Inner),
		Colors:  make(map[string]string, len(s.swatches)),
		Grand:   l.Grand,
		Columns: l.Columns,
		Rects:   make([]jsonRect, len(l.Rects)),
	}
	if out.Columns == nil {
		out.Columns = []mekko.Column{}
	}
	for _, sw := range s.swatches {
		out.Colors[sw.Key] = sw.Fill
	}
	for i, r := range l.Rects {
		out.Rects[i] = jsonRect{Rect: r, Share: l.Share(r), Color: s.rects[i].Fill}
	}
	return json.MarshalIndent(out, "", "  ")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
