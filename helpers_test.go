package pixfx

import "testing"

// Test helper functions shared across pixfx tests.

// mustImage builds an image from pixel rows, failing the test on error.
func mustImage(t *testing.T, rows [][]Pixel) *Image {
	t.Helper()
	img, err := NewImageFromGrid(rows)
	if err != nil {
		t.Fatalf("NewImageFromGrid() error = %v", err)
	}
	return img
}

// uniformImage creates a w x h image filled with p.
func uniformImage(t *testing.T, w, h int, p Pixel) *Image {
	t.Helper()
	img, err := NewImage(w, h)
	if err != nil {
		t.Fatalf("NewImage(%d, %d) error = %v", w, h, err)
	}
	img.Fill(p)
	return img
}

// pixelAt reads a pixel, failing the test on error.
func pixelAt(t *testing.T, img *Image, x, y int) Pixel {
	t.Helper()
	p, err := img.PixelAt(x, y)
	if err != nil {
		t.Fatalf("PixelAt(%d, %d) error = %v", x, y, err)
	}
	return p
}

// gray returns a pixel with all three channels set to v.
func gray(v int) Pixel {
	return NewPixel(v, v, v)
}
