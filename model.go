package pixfx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Model is the entry point for applying operations to images and moving
// them in and out of files. Its operation registry and format table are
// built once and read-only afterwards, so a Model is safe for concurrent
// reads; mutating the same Image from multiple goroutines is not.
type Model struct {
	ops     [numOps]Operation
	formats map[string]FileFormat
}

// NewModel creates a model with the four stock operations and the
// built-in file formats registered.
func NewModel() *Model {
	var ops [numOps]Operation
	ops[Sepia] = NewColorMatrixOperation(SepiaMatrix())
	ops[Monochrome] = NewColorMatrixOperation(MonochromeMatrix())
	ops[Blur] = mustConvolution(BlurKernel())
	ops[Sharpen] = mustConvolution(SharpenKernel())

	return &Model{
		ops:     ops,
		formats: builtinFormats(),
	}
}

// mustConvolution wraps NewConvolutionOperation for the stock kernels,
// whose validity is a construction-time guarantee.
func mustConvolution(k Kernel) Operation {
	op, err := NewConvolutionOperation(k)
	if err != nil {
		panic(err)
	}
	return op
}

// ApplyOperation resolves op and applies it to img in place, returning
// the same mutated image. A nil image returns ErrNilImage; an identifier
// with no registered operation returns ErrUnknownOp.
func (m *Model) ApplyOperation(img *Image, op Op) (*Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if op >= numOps {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOp, uint8(op))
	}

	Logger().Debug("applying operation",
		"op", op.String(),
		"width", img.Width(),
		"height", img.Height())

	if err := m.ops[op].Apply(img); err != nil {
		return nil, err
	}
	return img, nil
}

// CreateProgrammaticImage produces a synthetic image from the given
// creator. A nil creator returns ErrNilCreator.
func (m *Model) CreateProgrammaticImage(c Creator) (*Image, error) {
	if c == nil {
		return nil, ErrNilCreator
	}
	return c.Create()
}

// ImportImage loads the named file, selecting the codec by file
// extension. An extension with no registered codec returns
// ErrUnsupportedFormat.
func (m *Model) ImportImage(name string) (*Image, error) {
	format, err := m.formatFor(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("pixfx: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := format.Decode(f)
	if err != nil {
		return nil, err
	}

	Logger().Info("imported image",
		"name", name,
		"width", img.Width(),
		"height", img.Height())
	return img, nil
}

// ExportImage writes img to the named file, selecting the codec by file
// extension. A nil image returns ErrNilImage; an extension with no
// registered codec returns ErrUnsupportedFormat.
func (m *Model) ExportImage(name string, img *Image) error {
	if img == nil {
		return ErrNilImage
	}
	format, err := m.formatFor(name)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(name))
	if err != nil {
		return fmt.Errorf("pixfx: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := format.Encode(f, img); err != nil {
		return err
	}

	Logger().Info("exported image",
		"name", name,
		"width", img.Width(),
		"height", img.Height())
	return nil
}

// formatFor resolves the codec for a file name by its extension.
func (m *Model) formatFor(name string) (FileFormat, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	format, ok := m.formats[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return format, nil
}
