package pixfx

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Kernel is an immutable square matrix of convolution weights. The side
// length must be odd so that a center cell exists; this is enforced once
// at construction, never per apply.
type Kernel struct {
	size    int
	weights []float32 // row-major, len = size*size
}

// NewKernel creates a kernel from a side length and row-major weights.
// It returns ErrEvenKernel if size is even or non-positive, and
// ErrKernelSize if the weight count does not equal size*size.
func NewKernel(size int, weights []float32) (Kernel, error) {
	if size <= 0 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: got %d", ErrEvenKernel, size)
	}
	if len(weights) != size*size {
		return Kernel{}, fmt.Errorf("%w: got %d weights for size %d",
			ErrKernelSize, len(weights), size)
	}
	w := make([]float32, len(weights))
	copy(w, weights)
	return Kernel{size: size, weights: w}, nil
}

// MustKernel is like NewKernel but panics on error. An invalid kernel is
// a programming defect, not bad input, so the stock kernels in this
// package are built with MustKernel at init.
func MustKernel(size int, weights []float32) Kernel {
	k, err := NewKernel(size, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Size returns the kernel's side length.
func (k Kernel) Size() int {
	return k.size
}

// Center returns the index of the kernel's center cell along one axis.
func (k Kernel) Center() int {
	return k.size / 2
}

// At returns the weight at row i, column j.
func (k Kernel) At(i, j int) float32 {
	return k.weights[i*k.size+j]
}

// valid reports whether the kernel was built through NewKernel; the zero
// Kernel is not usable.
func (k Kernel) valid() bool {
	return k.size > 0 && len(k.weights) == k.size*k.size
}

// BlurKernel is the 3x3 Gaussian approximation used by the Blur
// operation.
func BlurKernel() Kernel {
	return MustKernel(3, []float32{
		1.0 / 16, 1.0 / 8, 1.0 / 16,
		1.0 / 8, 1.0 / 4, 1.0 / 8,
		1.0 / 16, 1.0 / 8, 1.0 / 16,
	})
}

// SharpenKernel is the 5x5 accentuating kernel used by the Sharpen
// operation: a negative outer ring, a positive inner ring, and a strong
// center.
func SharpenKernel() Kernel {
	const (
		o = -1.0 / 8
		i = 1.0 / 4
	)
	return MustKernel(5, []float32{
		o, o, o, o, o,
		o, i, i, i, o,
		o, i, 1, i, o,
		o, i, i, i, o,
		o, o, o, o, o,
	})
}

// GaussianKernel generates a normalized 2D Gaussian kernel for the given
// radius, using the radius as sigma. The side length is
// 2*ceil(radius*3)+1, covering three standard deviations. For
// radius <= 0 it returns the 1x1 identity kernel.
func GaussianKernel(radius float64) Kernel {
	if radius <= 0 {
		return MustKernel(1, []float32{1})
	}

	sigma := float32(radius)
	half := int(math.Ceil(radius * 3))
	size := half*2 + 1

	weights := make([]float32, size*size)
	twoSigmaSq := 2 * sigma * sigma
	var sum float32

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			dy := float32(i - half)
			dx := float32(j - half)
			val := math32.Exp(-(dx*dx + dy*dy) / twoSigmaSq)
			weights[i*size+j] = val
			sum += val
		}
	}

	// Normalize so the kernel sums to 1.0.
	if sum > 0 {
		inv := 1 / sum
		for i := range weights {
			weights[i] *= inv
		}
	}

	return MustKernel(size, weights)
}

// BoxKernel generates a uniform kernel of side 2*radius+1, each weight
// 1/(side*side). Box blur is cruder than Gaussian but cheaper. For
// radius <= 0 it returns the 1x1 identity kernel.
func BoxKernel(radius int) Kernel {
	if radius <= 0 {
		return MustKernel(1, []float32{1})
	}
	size := radius*2 + 1
	weights := make([]float32, size*size)
	val := 1 / float32(size*size)
	for i := range weights {
		weights[i] = val
	}
	return MustKernel(size, weights)
}
