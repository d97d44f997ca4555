package sink

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/matzehuels/mekko/pkg/mekko"
	"github.com/matzehuels/mekko/pkg/render/styles"
)

var chartMargins = Margins{Top: 40, Right: 150, Bottom: 60, Left: 60}

func sampleLayout() mekko.Layout {
	table := mekko.NewTable(
		[]string{"Male", "Female"},
		[]string{"Yes", "No"},
		map[string]map[string]int{
			"Male":   {"Yes": 15, "No": 45},
			"Female": {"Yes": 30, "No": 10},
		},
	)
	return mekko.Build(table, 690, 400)
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(sampleLayout(), WithMargins(chartMargins), WithTitle("Treatment by gender")))

	for _, want := range []string{
		`viewBox="0 0 900.0 500.0"`,
		`id="seg-Male-Yes"`,
		`id="seg-Female-No"`,
		`fill="#1f77b4"`,
		`fill="#ff7f0e"`,
		`>45</text>`,
		`class="axis-label"`,
		`>Male</text>`,
		`class="legend-label"`,
		`>Treatment by gender</text>`,
		"generated by mekko",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not terminated")
	}
	if got := strings.Count(svg, `class="segment"`); got != 4 {
		t.Errorf("segment count = %d, want 4", got)
	}
	if got := strings.Count(svg, `class="swatch"`); got != 2 {
		t.Errorf("swatch count = %d, want 2", got)
	}
}

func TestRenderSVGGeometry(t *testing.T) {
	svg := string(RenderSVG(sampleLayout(), WithMargins(chartMargins)))

	// Male column: 60% of 690 wide, "Yes" is the bottom quarter of 400.
	want := `id="seg-Male-Yes" class="segment" x="60.00" y="340.00" width="414.00" height="100.00"`
	if !strings.Contains(svg, want) {
		t.Errorf("SVG missing %q\n%s", want, svg)
	}
	// Axis label centred under the Male column, 20 below the plot.
	if !strings.Contains(svg, `x="267.00" y="460.00" text-anchor="middle"`) {
		t.Errorf("axis label misplaced\n%s", svg)
	}
	// Legend sits 20 right of the plot.
	if !strings.Contains(svg, `class="swatch" x="770.00" y="40.00" width="15.00"`) {
		t.Errorf("legend swatch misplaced\n%s", svg)
	}
}

func TestRenderSVGLabels(t *testing.T) {
	tests := []struct {
		mode    LabelMode
		want    string
		notWant string
	}{
		{LabelCount, ">15</text>", ">25%</text>"},
		{LabelPercent, ">25%</text>", ">15</text>"},
		{LabelNone, "", `class="segment-label"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			svg := string(RenderSVG(sampleLayout(), WithLabels(tt.mode)))
			if tt.want != "" && !strings.Contains(svg, tt.want) {
				t.Errorf("missing %q", tt.want)
			}
			if strings.Contains(svg, tt.notWant) {
				t.Errorf("unexpected %q", tt.notWant)
			}
		})
	}
}

func TestRenderSVGStyleAndPalette(t *testing.T) {
	p := mekko.MustPalette([]string{"Yes", "No"}, []string{"#111111", "#eeeeee"})
	svg := string(RenderSVG(sampleLayout(), WithStyle(styles.Outline{}), WithPalette(p)))

	if !strings.Contains(svg, `fill-opacity="0.25"`) {
		t.Error("outline style not applied")
	}
	if !strings.Contains(svg, `stroke="#111111"`) || strings.Contains(svg, "#1f77b4") {
		t.Error("custom palette not applied")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	l := mekko.Build(mekko.Table{}, 690, 400)
	svg := string(RenderSVG(l, WithMargins(chartMargins)))

	if strings.Contains(svg, `class="segment"`) {
		t.Error("empty layout should have no segments")
	}
	if !strings.Contains(svg, `viewBox="0 0 900.0 500.0"`) {
		t.Error("empty chart should keep its frame")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(sampleLayout(), WithMargins(chartMargins))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Width != 900 || out.Height != 500 {
		t.Errorf("size = %vx%v, want 900x500", out.Width, out.Height)
	}
	if out.Plot.X != 60 || out.Plot.Width != 690 {
		t.Errorf("Plot = %+v", out.Plot)
	}
	if out.Grand != 100 {
		t.Errorf("Grand = %d, want 100", out.Grand)
	}
	if len(out.Rects) != 4 {
		t.Fatalf("len(Rects) = %d, want 4", len(out.Rects))
	}
	first := out.Rects[0]
	if first.Outer != "Male" || first.Inner != "Yes" || first.Count != 15 || first.Share != 0.25 {
		t.Errorf("Rects[0] = %+v", first)
	}
	if first.Color != "#1f77b4" || out.Colors["No"] != "#ff7f0e" {
		t.Errorf("colors = %v / %s", out.Colors, first.Color)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(mekko.Build(mekko.Table{}, 10, 10))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	for _, want := range []string{`"rects": []`, `"columns": []`, `"outer": []`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("JSON missing %s:\n%s", want, data)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(sampleLayout(), WithMargins(chartMargins), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1800 || b.Dy() != 1000 {
		t.Errorf("bounds = %v, want 1800x1000", b)
	}

	// Centre of the Male/No segment (plot y 0..300) is plain #ff7f0e.
	r, g, b, _ := img.At(2*(60+100), 2*(40+50)).RGBA()
	if r>>8 != 0xff || g>>8 != 0x7f || b>>8 != 0x0e {
		t.Errorf("pixel = #%02x%02x%02x, want #ff7f0e", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGEmptyCanvas(t *testing.T) {
	if _, err := RenderPNG(mekko.Build(mekko.Table{}, 0, 0)); err == nil {
		t.Error("RenderPNG() with a zero-size frame should fail")
	}
}

func TestRenderPDFCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RenderPDF(ctx, sampleLayout()); err == nil {
		t.Error("RenderPDF() with a cancelled context should fail")
	}
}
