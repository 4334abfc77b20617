package pixfx

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a mutable rectangular grid of pixels, addressable by (x, y)
// with the origin at the top-left corner.
//
// ReplacePixel is the only mutation primitive; every operation in this
// package is expressed as a sequence of PixelAt and ReplacePixel calls.
// An Image is not safe for concurrent mutation; callers applying
// operations to the same Image from multiple goroutines must serialize.
type Image struct {
	width  int
	height int
	pix    []Pixel // row-major, len = width*height
}

// NewImage creates an image with the given dimensions, filled with black.
// Both dimensions must be positive.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

// NewImageFromGrid creates an image from a grid of pixel rows. The grid
// must be non-empty and rectangular: every row must have the same
// non-zero length.
func NewImageFromGrid(rows [][]Pixel) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d",
				ErrInvalidDimensions, y, len(row), width)
		}
	}
	img := &Image{
		width:  width,
		height: len(rows),
		pix:    make([]Pixel, width*len(rows)),
	}
	for y, row := range rows {
		copy(img.pix[y*width:(y+1)*width], row)
	}
	return img, nil
}

// Width returns the number of pixel columns.
func (img *Image) Width() int {
	return img.width
}

// Height returns the number of pixel rows.
func (img *Image) Height() int {
	return img.height
}

// PixelAt returns the pixel at (x, y). Coordinates outside
// [0, width) x [0, height) return ErrOutOfBounds.
func (img *Image) PixelAt(x, y int) (Pixel, error) {
	if !img.inBounds(x, y) {
		return Pixel{}, fmt.Errorf("%w: (%d, %d) in %dx%d image",
			ErrOutOfBounds, x, y, img.width, img.height)
	}
	return img.pix[y*img.width+x], nil
}

// ReplacePixel overwrites the pixel at (x, y) in place. Coordinates
// outside the image return ErrOutOfBounds.
func (img *Image) ReplacePixel(x, y int, p Pixel) error {
	if !img.inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d image",
			ErrOutOfBounds, x, y, img.width, img.height)
	}
	img.pix[y*img.width+x] = p
	return nil
}

// Fill sets every pixel in the image to p.
func (img *Image) Fill(p Pixel) {
	for i := range img.pix {
		img.pix[i] = p
	}
}

// Clone returns a deep copy of the image. The copy shares no pixel
// storage with the original.
func (img *Image) Clone() *Image {
	pix := make([]Pixel, len(img.pix))
	copy(pix, img.pix)
	return &Image{
		width:  img.width,
		height: img.height,
		pix:    pix,
	}
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// ToStdImage converts the image to a standard library image.RGBA with
// full opacity.
func (img *Image) ToStdImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			p := img.pix[y*img.width+x]
			out.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return out
}

// FromStdImage creates an Image from a standard library image, dropping
// any alpha channel. Images with empty bounds are rejected.
func FromStdImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	img, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels; scale down to 8-bit.
			img.pix[y*width+x] = Pixel{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			}
		}
	}
	return img, nil
}
