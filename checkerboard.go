package pixfx

import "fmt"

// Creator produces a synthetic, programmatically-generated image.
type Creator interface {
	Create() (*Image, error)
}

// Checkerboard generates a square image of two alternating colors tiled
// in identically-sized squares.
type Checkerboard struct {
	size       int
	numSquares int
	first      Pixel
	second     Pixel
}

// NewCheckerboard creates a checkerboard generator.
//
// size is the board's edge length in pixels; it is rounded down to the
// largest length that tiles exactly. numSquares is rounded down to the
// nearest perfect square so the board stays square. Both must be
// positive.
func NewCheckerboard(size, numSquares int, first, second Pixel) (*Checkerboard, error) {
	if size < 1 || numSquares < 1 {
		return nil, fmt.Errorf("%w: size %d, squares %d",
			ErrInvalidDimensions, size, numSquares)
	}
	return &Checkerboard{
		size:       size,
		numSquares: numSquares,
		first:      first,
		second:     second,
	}, nil
}

// Create implements Creator.
func (c *Checkerboard) Create() (*Image, error) {
	squaresPerSide := isqrt(c.numSquares)
	squareSize := c.size / squaresPerSide
	if squareSize < 1 {
		return nil, fmt.Errorf("%w: %d squares do not fit in %d pixels",
			ErrInvalidDimensions, c.numSquares, c.size)
	}
	edge := squareSize * squaresPerSide

	img, err := NewImage(edge, edge)
	if err != nil {
		return nil, err
	}
	for y := 0; y < edge; y++ {
		for x := 0; x < edge; x++ {
			p := c.first
			if (x/squareSize+y/squareSize)%2 == 1 {
				p = c.second
			}
			if err := img.ReplacePixel(x, y, p); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}

// isqrt returns the integer square root of n (floor of sqrt).
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
