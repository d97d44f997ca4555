package mekko

import (
	"regexp"
	"testing"

	errs "github.com/matzehuels/mekko/pkg/errors"
)

func TestPaletteCategory10(t *testing.T) {
	p := MustPalette([]string{"Yes", "No"}, nil)

	if got := p.Hex("Yes"); got != "#1f77b4" {
		t.Errorf("Hex(Yes) = %q, want #1f77b4", got)
	}
	if got := p.Hex("No"); got != "#ff7f0e" {
		t.Errorf("Hex(No) = %q, want #ff7f0e", got)
	}
}

func TestPaletteCycles(t *testing.T) {
	p := MustPalette([]string{"a", "b", "c"}, []string{"#000000", "#ffffff"})
	if p.Hex("c") != p.Hex("a") {
		t.Errorf("third key should reuse first color, got %s vs %s", p.Hex("c"), p.Hex("a"))
	}
}

func TestPaletteUnknownKeyStable(t *testing.T) {
	p := MustPalette([]string{"Yes"}, nil)
	hexColor := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	c1, c2 := p.Hex("Maybe"), p.Hex("Maybe")
	if c1 != c2 {
		t.Errorf("unknown key color not deterministic: %s vs %s", c1, c2)
	}
	if !hexColor.MatchString(c1) {
		t.Errorf("Hex(Maybe) = %q is not a hex color", c1)
	}
}

func TestPaletteInvalidColor(t *testing.T) {
	for _, bad := range []string{"blue", "#fff8", "#ff7f0e80", "#ff7f0"} {
		_, err := NewPalette([]string{"a"}, []string{"#1f77b4", bad})
		if !errs.Is(err, errs.ErrCodeInvalidConfig) {
			t.Errorf("NewPalette(%q) error = %v, want INVALID_CONFIG", bad, err)
		}
	}
	if _, err := NewPalette(nil, []string{"#abc"}); err != nil {
		t.Errorf("NewPalette(#abc) error = %v, want nil", err)
	}
}

func TestPaletteKeysCopied(t *testing.T) {
	keys := []string{"a", "b"}
	p := MustPalette(keys, nil)
	keys[0] = "z"
	if p.Keys()[0] != "a" {
		t.Error("palette should not alias the caller's key slice")
	}
}

func TestTextColor(t *testing.T) {
	p := MustPalette([]string{"blue", "orange", "olive"}, nil)

	tests := []struct {
		key  string
		want string
	}{
		{"blue", "#ffffff"},
		{"orange", "#000000"},
		{"olive", "#000000"},
	}
	for _, tt := range tests {
		if got := TextColor(p.Color(tt.key)).Hex(); got != tt.want {
			t.Errorf("TextColor(%s) = %s, want %s", tt.key, got, tt.want)
		}
	}
}
