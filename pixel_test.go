package pixfx

import "testing"

func TestNewPixelClamping(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Pixel
	}{
		{"in range", 127, 127, 127, Pixel{127, 127, 127}},
		{"below zero", -5, -5, -5, Pixel{0, 0, 0}},
		{"above max", 300, 300, 300, Pixel{255, 255, 255}},
		{"boundaries", 0, 255, 0, Pixel{0, 255, 0}},
		{"mixed channels", -1, 128, 256, Pixel{0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPixel(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("NewPixel(%d, %d, %d) = %v, want %v",
					tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestPixelValueSemantics(t *testing.T) {
	a := NewPixel(10, 20, 30)
	b := NewPixel(10, 20, 30)
	if a != b {
		t.Errorf("equal pixels compare unequal: %v != %v", a, b)
	}
}

func TestBlackAndWhite(t *testing.T) {
	if Black != (Pixel{0, 0, 0}) {
		t.Errorf("Black = %v, want {0 0 0}", Black)
	}
	if White != (Pixel{255, 255, 255}) {
		t.Errorf("White = %v, want {255 255 255}", White)
	}
}
