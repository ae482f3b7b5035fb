package filter

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by kernel construction and filter validation.
var (
	ErrKernelDims    = errors.New("filter: kernel dimensions must be > 0")
	ErrKernelWeights = errors.New("filter: kernel weights length mismatch")
	ErrKernelSize    = errors.New("filter: kernel size must be positive and odd")
)

// Kernel is a rectangular matrix of convolution weights in row-major order.
// Derived filters use odd square kernels; the convolution primitive itself
// also accepts even dimensions (the Roberts operator convolves 2x2 kernels).
type Kernel struct {
	W, H    int
	Weights []float64
}

// NewKernel builds a kernel from row-major weights.
func NewKernel(w, h int, weights []float64) (Kernel, error) {
	if w <= 0 || h <= 0 {
		return Kernel{}, fmt.Errorf("%w: %dx%d", ErrKernelDims, w, h)
	}
	if len(weights) != w*h {
		return Kernel{}, fmt.Errorf("%w: got %d, want %d", ErrKernelWeights, len(weights), w*h)
	}
	return Kernel{W: w, H: h, Weights: weights}, nil
}

// Sum returns the total weight of the kernel.
func (k Kernel) Sum() float64 {
	total := 0.0
	for _, w := range k.Weights {
		total += w
	}
	return total
}

func validateSize(size int) error {
	if size < 1 || size%2 == 0 {
		return fmt.Errorf("%w: %d", ErrKernelSize, size)
	}
	return nil
}

// Box returns an odd square all-ones kernel.
func Box(size int) (Kernel, error) {
	if err := validateSize(size); err != nil {
		return Kernel{}, err
	}
	weights := make([]float64, size*size)
	for i := range weights {
		weights[i] = 1
	}
	return Kernel{W: size, H: size, Weights: weights}, nil
}

// Gaussian returns an odd square kernel sampled from the 2D Gaussian with
// sigma = size/6, centered on the middle tap.
func Gaussian(size int) (Kernel, error) {
	if err := validateSize(size); err != nil {
		return Kernel{}, err
	}

	sigma := float64(size) / 6
	half := size / 2
	weights := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - half)
			dy := float64(y - half)
			weights[y*size+x] = math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
		}
	}
	return Kernel{W: size, H: size, Weights: weights}, nil
}
