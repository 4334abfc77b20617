package pixfx

import "fmt"

// Op identifies one of the stock image operations. The set is closed:
// the model's registry is total over exactly these identifiers.
type Op uint8

// Stock operation identifiers.
const (
	Sepia Op = iota
	Monochrome
	Blur
	Sharpen

	numOps // sentinel, keep last
)

var opNames = [numOps]string{
	Sepia:      "sepia",
	Monochrome: "monochrome",
	Blur:       "blur",
	Sharpen:    "sharpen",
}

// String returns the operation's lower-case name.
func (o Op) String() string {
	if o >= numOps {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
	return opNames[o]
}

// ParseOp resolves a lower-case operation name to its identifier. It
// returns ErrUnknownOp for unrecognized names.
func ParseOp(name string) (Op, error) {
	for o, n := range opNames {
		if n == name {
			return Op(o), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// opKind discriminates the two operation families.
type opKind uint8

const (
	kindColorMatrix opKind = iota
	kindConvolution
)

// Operation is a single image transformation. It is a tagged variant:
// the kind selects the algorithm and the matching payload carries its
// parameters. The zero Operation is not usable; build one with
// NewColorMatrixOperation or NewConvolutionOperation, or resolve a stock
// one through a Model.
type Operation struct {
	kind   opKind
	matrix ColorMatrix
	kernel Kernel
}

// NewColorMatrixOperation creates a per-pixel linear transform
// operation. Any 3x3 matrix is valid; results are clamped per pixel.
func NewColorMatrixOperation(m ColorMatrix) Operation {
	return Operation{kind: kindColorMatrix, matrix: m}
}

// NewConvolutionOperation creates a neighborhood convolution operation.
// The kernel must have been built through NewKernel or MustKernel; the
// zero Kernel is rejected with ErrEvenKernel.
func NewConvolutionOperation(k Kernel) (Operation, error) {
	if !k.valid() {
		return Operation{}, fmt.Errorf("%w: zero kernel", ErrEvenKernel)
	}
	return Operation{kind: kindConvolution, kernel: k}, nil
}

// Apply mutates img in place according to the operation. A nil image
// returns ErrNilImage. Color-matrix operations run a single in-place
// pass; convolution operations snapshot the image first (see
// applyKernel).
func (op Operation) Apply(img *Image) error {
	if img == nil {
		return ErrNilImage
	}
	switch op.kind {
	case kindColorMatrix:
		return applyColorMatrix(img, op.matrix)
	case kindConvolution:
		return applyKernel(img, op.kernel)
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownOp, op.kind)
	}
}
