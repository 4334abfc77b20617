package pixfx

import "errors"

// Errors returned by the pixfx core.
var (
	// ErrNilImage is returned when a required image argument is nil.
	ErrNilImage = errors.New("pixfx: image is nil")

	// ErrNilCreator is returned when a required creator argument is nil.
	ErrNilCreator = errors.New("pixfx: creator is nil")

	// ErrOutOfBounds is returned when a coordinate lies outside the image.
	ErrOutOfBounds = errors.New("pixfx: coordinate out of bounds")

	// ErrInvalidDimensions is returned when an image would have a
	// non-positive width or height, or a ragged pixel grid.
	ErrInvalidDimensions = errors.New("pixfx: invalid image dimensions")

	// ErrEvenKernel is returned when a convolution kernel has an even
	// side length and therefore no center cell.
	ErrEvenKernel = errors.New("pixfx: kernel side length must be odd")

	// ErrKernelSize is returned when kernel weights do not match the
	// declared side length.
	ErrKernelSize = errors.New("pixfx: kernel weight count does not match size")

	// ErrUnknownOp is returned when an operation identifier has no
	// registered operation.
	ErrUnknownOp = errors.New("pixfx: unknown operation")

	// ErrUnsupportedFormat is returned when no codec is registered for a
	// file extension.
	ErrUnsupportedFormat = errors.New("pixfx: unsupported file format")
)
