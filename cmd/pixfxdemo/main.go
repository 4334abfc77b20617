// Command pixfxdemo demonstrates the pixfx image filter library.
//
// Apply an operation to an existing image:
//
//	pixfxdemo -input photo.ppm -op sepia -output photo-sepia.ppm
//
// Or generate and filter a checkerboard when no input is given:
//
//	pixfxdemo -op blur -output board.png
package main

import (
	"flag"
	"log"

	"github.com/gogpu/pixfx"
)

func main() {
	var (
		input      = flag.String("input", "", "input image file (PPM, PNG, BMP, or TIFF)")
		output     = flag.String("output", "out.ppm", "output image file")
		opName     = flag.String("op", "sepia", "operation: sepia, monochrome, blur, sharpen")
		size       = flag.Int("size", 256, "checkerboard edge length in pixels (no -input)")
		numSquares = flag.Int("squares", 64, "checkerboard square count (no -input)")
	)
	flag.Parse()

	op, err := pixfx.ParseOp(*opName)
	if err != nil {
		log.Fatalf("Unknown operation %q", *opName)
	}

	m := pixfx.NewModel()

	var img *pixfx.Image
	if *input != "" {
		img, err = m.ImportImage(*input)
		if err != nil {
			log.Fatalf("Failed to import: %v", err)
		}
	} else {
		board, err := pixfx.NewCheckerboard(*size, *numSquares,
			pixfx.NewPixel(200, 40, 40), pixfx.NewPixel(240, 230, 200))
		if err != nil {
			log.Fatalf("Bad checkerboard parameters: %v", err)
		}
		img, err = m.CreateProgrammaticImage(board)
		if err != nil {
			log.Fatalf("Failed to generate checkerboard: %v", err)
		}
	}

	if _, err := m.ApplyOperation(img, op); err != nil {
		log.Fatalf("Failed to apply %s: %v", op, err)
	}

	if err := m.ExportImage(*output, img); err != nil {
		log.Fatalf("Failed to export: %v", err)
	}

	log.Printf("Wrote %s (%dx%d, %s)\n", *output, img.Width(), img.Height(), op)
}
