package freq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imaging/img/core"
)

// fft runs an in-place iterative radix-2 Cooley-Tukey transform over one
// line of real/imaginary values. The length must be a power of two. The
// inverse form negates the twiddle angle and scales the output by 1/n.
func fft(re, im []float64, inverse bool) error {
	n := len(re)
	if len(im) != n {
		return fmt.Errorf("%w: %d != %d", ErrSpectrumShape, n, len(im))
	}
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: length %d", ErrSpectrumSize, n)
	}
	if n == 1 {
		return nil
	}

	bitReverse(re, im)

	for length := 2; length <= n; length <<= 1 {
		ang := -2 * math.Pi / float64(length)
		if inverse {
			ang = -ang
		}
		stepRe, stepIm := math.Cos(ang), math.Sin(ang)
		half := length / 2

		for start := 0; start < n; start += length {
			wRe, wIm := 1.0, 0.0
			for k := 0; k < half; k++ {
				i0 := start + k
				i1 := i0 + half

				tRe := re[i1]*wRe - im[i1]*wIm
				tIm := re[i1]*wIm + im[i1]*wRe
				re[i1] = re[i0] - tRe
				im[i1] = im[i0] - tIm
				re[i0] += tRe
				im[i0] += tIm

				wRe, wIm = wRe*stepRe-wIm*stepIm, wRe*stepIm+wIm*stepRe
			}
		}
	}

	if inverse {
		inv := 1 / float64(n)
		vecmath.ScaleBlock(re, re, inv)
		vecmath.ScaleBlock(im, im, inv)
	}
	return nil
}

// bitReverse permutes both lines into bit-reversed index order.
func bitReverse(re, im []float64) {
	n := len(re)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}
