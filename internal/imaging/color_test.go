package imaging

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#E1A105", color.RGBA{225, 161, 5, 255}},
		{"e1a105", color.RGBA{225, 161, 5, 255}},
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#FFF", color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#GGGGGG", "#1234567"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestHexColor(t *testing.T) {
	if got := HexColor(color.RGBA{225, 161, 5, 255}); got != "#E1A105" {
		t.Errorf("HexColor = %q, want #E1A105", got)
	}
}
