package mekko

import (
	"hash/fnv"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	errs "github.com/matzehuels/mekko/pkg/errors"
)

// Category10 is the ten-color categorical scheme used by default.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// labelLightness is the CIE L* threshold above which labels are drawn dark.
const labelLightness = 0.6

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Palette assigns colors to inner keys by their position in the canonical
// inner-key order, cycling when there are more keys than colors.
type Palette struct {
	keys   []string
	colors []colorful.Color
}

// NewPalette builds a palette for keys. An empty hexes slice selects
// [Category10]. Every entry must be a #rgb or #rrggbb color.
func NewPalette(keys []string, hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		hexes = Category10
	}
	colors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		if len(h) != 4 && len(h) != 7 {
			return Palette{}, errs.New(errs.ErrCodeInvalidConfig, "palette color #%d %q: want #rgb or #rrggbb", i+1, h)
		}
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "palette color #%d %q", i+1, h)
		}
		colors[i] = c
	}
	return Palette{keys: slices.Clone(keys), colors: colors}, nil
}

// MustPalette is like NewPalette but panics on an invalid color.
func MustPalette(keys []string, hexes []string) Palette {
	p, err := NewPalette(keys, hexes)
	if err != nil {
		panic(err)
	}
	return p
}

// Keys returns the keys in legend order.
func (p Palette) Keys() []string { return slices.Clone(p.keys) }

// Color returns the color for key. Keys outside the palette's key list get a
// stable color derived from a hash of the key.
func (p Palette) Color(key string) colorful.Color {
	if len(p.colors) == 0 {
		return black
	}
	if i := slices.Index(p.keys, key); i >= 0 {
		return p.colors[i%len(p.colors)]
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	return p.colors[int(h.Sum32()%uint32(len(p.colors)))]
}

// Hex returns the color for key as #rrggbb.
func (p Palette) Hex(key string) string { return p.Color(key).Hex() }

// TextColor returns black or white, whichever reads better on bg.
func TextColor(bg colorful.Color) colorful.Color {
	l, _, _ := bg.Lab()
	if l > labelLightness {
		return black
	}
	return white
}
