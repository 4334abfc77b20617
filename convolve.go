package pixfx

import "errors"

// applyKernel convolves every pixel of img with k.
//
// Convolution is a two-phase protocol: because each output pixel depends
// on neighboring input values, every new pixel must be computed from an
// unmodified snapshot of the original grid. Mutating in place would feed
// already-filtered values into later neighborhoods.
//
//  1. Deep-copy the image into a scratch grid.
//  2. Compute each filtered pixel from the scratch grid.
//  3. Write the results into the live image via ReplacePixel.
func applyKernel(img *Image, k Kernel) error {
	if img == nil {
		return ErrNilImage
	}

	snapshot := img.Clone()
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			p, err := convolvePixel(snapshot, x, y, k)
			if err != nil {
				return err
			}
			if err := img.ReplacePixel(x, y, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// convolvePixel computes the weighted sum of the kernel-sized
// neighborhood centered at (x, y). Neighbors that fall outside the
// canvas contribute black; only ErrOutOfBounds is recovered here, any
// other failure propagates.
func convolvePixel(src *Image, x, y int, k Kernel) (Pixel, error) {
	center := k.Center()
	var r, g, b float32

	for i := 0; i < k.Size(); i++ {
		for j := 0; j < k.Size(); j++ {
			p, err := src.PixelAt(x+i-center, y+j-center)
			if err != nil {
				if !errors.Is(err, ErrOutOfBounds) {
					return Pixel{}, err
				}
				p = Black
			}
			w := k.At(i, j)
			r += w * float32(p.R)
			g += w * float32(p.G)
			b += w * float32(p.B)
		}
	}

	// Truncate toward zero, then clamp.
	return NewPixel(int(r), int(g), int(b)), nil
}
