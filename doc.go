// Package pixfx applies pixel-level transformations to in-memory raster
// images.
//
// # Overview
//
// pixfx provides two families of image operations behind a uniform
// contract: color-matrix transforms (sepia, monochrome) that remap each
// pixel independently, and convolution filters (blur, sharpen) that
// compute each pixel from a weighted neighborhood.
//
// # Quick Start
//
//	import "github.com/gogpu/pixfx"
//
//	m := pixfx.NewModel()
//
//	img, err := m.ImportImage("photo.ppm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := m.ApplyOperation(img, pixfx.Sepia); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := m.ExportImage("photo-sepia.ppm", img); err != nil {
//	    log.Fatal(err)
//	}
//
// # Operations
//
// Operations mutate the supplied Image in place. Color-matrix operations
// process pixels in a single pass; convolution operations snapshot the
// image first so every neighborhood is computed from unmodified input,
// then write all results back. Neighbors outside the canvas contribute
// black.
//
// # File Formats
//
// A Model imports and exports images keyed by file extension. Built-in
// codecs: PPM (plain P3 and raw P6), PNG, BMP, and TIFF.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Channel
// values are 8-bit, clamped to [0, 255] at every construction point.
package pixfx
