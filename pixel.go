package pixfx

// Pixel is an immutable three-channel color value. Each channel holds an
// 8-bit intensity; construction clamps out-of-range inputs, so a Pixel
// is always valid. Pixels are value objects, compared and copied by
// value.
type Pixel struct {
	R, G, B uint8
}

// NewPixel creates a pixel from integer channel values. Each channel is
// clamped to [0, 255] independently; out-of-range inputs saturate
// silently rather than failing.
func NewPixel(r, g, b int) Pixel {
	return Pixel{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}
}

// Black is the zero-intensity pixel contributed by off-canvas neighbors
// during convolution.
var Black = Pixel{}

// White is the full-intensity pixel.
var White = Pixel{R: 255, G: 255, B: 255}

// clampChannel clamps an integer channel value to the [0, 255] range.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
