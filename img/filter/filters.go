package filter

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-imaging/img/buffer"
	"github.com/cwbudde/algo-imaging/img/core"
)

// Type identifies a spatial filter.
type Type int

const (
	TypeAverage Type = iota
	TypeGaussian
	TypeMedian
	TypeSobel
	TypeRoberts
	TypePrewitt
	TypeCanny
)

// Apply runs the filter selected by typ. size is the odd kernel size for the
// average, gaussian, median and canny filters; the fixed-kernel gradient
// detectors ignore it.
func Apply(src *buffer.Buffer, typ Type, size int) (*buffer.Buffer, error) {
	switch typ {
	case TypeAverage:
		return Average(src, size)
	case TypeGaussian:
		return GaussianBlur(src, size)
	case TypeMedian:
		return Median(src, size)
	case TypeSobel:
		return Sobel(src)
	case TypeRoberts:
		return Roberts(src)
	case TypePrewitt:
		return Prewitt(src)
	case TypeCanny:
		return Canny(src, size)
	default:
		return nil, fmt.Errorf("filter: unknown type: %d", typ)
	}
}

// Average applies a normalized all-ones box kernel of the given odd size.
func Average(src *buffer.Buffer, size int) (*buffer.Buffer, error) {
	k, err := Box(size)
	if err != nil {
		return nil, err
	}
	return Convolve(src, k, true)
}

// GaussianBlur applies a normalized Gaussian kernel of the given odd size
// with sigma = size/6.
func GaussianBlur(src *buffer.Buffer, size int) (*buffer.Buffer, error) {
	k, err := Gaussian(size)
	if err != nil {
		return nil, err
	}
	return Convolve(src, k, true)
}

// Median replaces each color sample with the median of its size x size
// neighborhood, sampled with edge replication. Channels are filtered
// independently; alpha is copied from the source.
func Median(src *buffer.Buffer, size int) (*buffer.Buffer, error) {
	if err := buffer.Validate(src); err != nil {
		return nil, err
	}
	if err := validateSize(size); err != nil {
		return nil, err
	}

	dst := src.Clone()
	half := size / 2
	n := size * size
	window := make([]uint8, n) // reused across pixels
	mid := (n - 1) / 2

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			for c := 0; c < 3; c++ {
				w := window[:0]
				for ky := -half; ky <= half; ky++ {
					sy := core.ClampInt(y+ky, 0, src.H-1)
					for kx := -half; kx <= half; kx++ {
						sx := core.ClampInt(x+kx, 0, src.W-1)
						w = append(w, src.Pix[(sy*src.W+sx)*4+c])
					}
				}
				sort.Slice(w, func(i, j int) bool { return w[i] < w[j] })
				dst.Pix[(y*src.W+x)*4+c] = w[mid]
			}
		}
	}
	return dst, nil
}
