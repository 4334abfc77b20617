package pixfx

import (
	"fmt"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// FileFormat is a raster codec selected by file extension.
type FileFormat interface {
	// Decode reads an image from r.
	Decode(r io.Reader) (*Image, error)

	// Encode writes img to w.
	Encode(w io.Writer, img *Image) error
}

// builtinFormats returns the codec table for a new model, keyed by
// lower-case extension. The table is fixed at model construction; there
// is no runtime registration surface.
func builtinFormats() map[string]FileFormat {
	return map[string]FileFormat{
		"ppm":  ppmFormat{},
		"png":  pngFormat{},
		"bmp":  bmpFormat{},
		"tif":  tiffFormat{},
		"tiff": tiffFormat{},
	}
}

// pngFormat codes PNG via the standard library.
type pngFormat struct{}

func (pngFormat) Decode(r io.Reader) (*Image, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixfx: decode PNG: %w", err)
	}
	return FromStdImage(src)
}

func (pngFormat) Encode(w io.Writer, img *Image) error {
	if err := png.Encode(w, img.ToStdImage()); err != nil {
		return fmt.Errorf("pixfx: encode PNG: %w", err)
	}
	return nil
}

// bmpFormat codes BMP via golang.org/x/image.
type bmpFormat struct{}

func (bmpFormat) Decode(r io.Reader) (*Image, error) {
	src, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixfx: decode BMP: %w", err)
	}
	return FromStdImage(src)
}

func (bmpFormat) Encode(w io.Writer, img *Image) error {
	if err := bmp.Encode(w, img.ToStdImage()); err != nil {
		return fmt.Errorf("pixfx: encode BMP: %w", err)
	}
	return nil
}

// tiffFormat codes TIFF via golang.org/x/image, writing deflate-compressed
// output.
type tiffFormat struct{}

func (tiffFormat) Decode(r io.Reader) (*Image, error) {
	src, err := tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixfx: decode TIFF: %w", err)
	}
	return FromStdImage(src)
}

func (tiffFormat) Encode(w io.Writer, img *Image) error {
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(w, img.ToStdImage(), opts); err != nil {
		return fmt.Errorf("pixfx: encode TIFF: %w", err)
	}
	return nil
}
