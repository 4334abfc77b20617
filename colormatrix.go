package pixfx

// ColorMatrix is a 3x3 transformation matrix in row-major order mapping
// a pixel's (R, G, B) to a new (R, G, B) independent of neighboring
// pixels:
//
//	[R']   [m00 m01 m02]   [R]
//	[G'] = [m10 m11 m12] * [G]
//	[B']   [m20 m21 m22]   [B]
//
// Channel values are in the [0, 255] range during transformation;
// results are truncated toward zero and clamped back to valid range.
type ColorMatrix [3][3]float32

// IdentityMatrix passes every pixel through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// SepiaMatrix produces the classic warm brown photographic tone.
func SepiaMatrix() ColorMatrix {
	return ColorMatrix{
		{0.393, 0.769, 0.189},
		{0.349, 0.686, 0.168},
		{0.272, 0.534, 0.131},
	}
}

// MonochromeMatrix converts to grayscale using Rec. 709 luminance
// weights, writing the luma value to all three channels.
func MonochromeMatrix() ColorMatrix {
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)
	return ColorMatrix{
		{lumR, lumG, lumB},
		{lumR, lumG, lumB},
		{lumR, lumG, lumB},
	}
}

// TransformPixel applies the matrix to a single pixel.
func (m ColorMatrix) TransformPixel(p Pixel) Pixel {
	r := float32(p.R)
	g := float32(p.G)
	b := float32(p.B)
	return NewPixel(
		int(m[0][0]*r+m[0][1]*g+m[0][2]*b),
		int(m[1][0]*r+m[1][1]*g+m[1][2]*b),
		int(m[2][0]*r+m[2][1]*g+m[2][2]*b),
	)
}

// applyColorMatrix transforms every pixel of img in place. Each output
// pixel depends only on its own input value, so no snapshot is needed
// and a single in-place pass is safe.
func applyColorMatrix(img *Image, m ColorMatrix) error {
	if img == nil {
		return ErrNilImage
	}
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			p, err := img.PixelAt(x, y)
			if err != nil {
				return err
			}
			if err := img.ReplacePixel(x, y, m.TransformPixel(p)); err != nil {
				return err
			}
		}
	}
	return nil
}
