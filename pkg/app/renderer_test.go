package app

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	tests := []struct {
		name     string
		input    string
		expected color.NRGBA
	}{
		{"带井号", "#ff3355", color.NRGBA{R: 0xff, G: 0x33, B: 0x55, A: 255}},
		{"不带井号", "7788aa", color.NRGBA{R: 0x77, G: 0x88, B: 0xaa, A: 255}},
		{"长度错误", "#fff", fallback},
		{"非十六进制", "#zzzzzz", fallback},
		{"空字符串", "", fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseHexColor(tt.input, fallback); got != tt.expected {
				t.Errorf("parseHexColor(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRendererStarsWrap(t *testing.T) {
	r := NewRenderer(3)
	for i := 0; i < 600; i++ {
		r.Update(100)
	}
	for _, s := range r.stars {
		if s.y < 0 || s.y > 600 {
			t.Fatalf("Expected star to stay on screen, got y=%v", s.y)
		}
	}
}
