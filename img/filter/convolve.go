package filter

import (
	"github.com/cwbudde/algo-imaging/img/buffer"
	"github.com/cwbudde/algo-imaging/img/core"
)

// Convolve applies kernel k to every color channel of src and returns a new
// buffer. Out-of-bounds neighborhood coordinates are clamped to the nearest
// edge pixel. When normalize is true the weighted sum is divided by the
// kernel's total weight (a zero total is treated as 1). Alpha is copied from
// the source unchanged.
func Convolve(src *buffer.Buffer, k Kernel, normalize bool) (*buffer.Buffer, error) {
	return convolve(src, k, normalize, 0)
}

// convolve is the shared primitive. offset is added to unnormalized sums
// before clamping; the gradient detectors use 128 so signed responses
// survive the byte range.
func convolve(src *buffer.Buffer, k Kernel, normalize bool, offset float64) (*buffer.Buffer, error) {
	if err := buffer.Validate(src); err != nil {
		return nil, err
	}
	if k.W <= 0 || k.H <= 0 || len(k.Weights) != k.W*k.H {
		return nil, ErrKernelWeights
	}

	divisor := 1.0
	if normalize {
		divisor = k.Sum()
		if divisor == 0 {
			divisor = 1
		}
		offset = 0
	}

	dst := src.Clone()
	halfX := (k.W - 1) / 2
	halfY := (k.H - 1) / 2

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			var sumR, sumG, sumB float64
			for ky := 0; ky < k.H; ky++ {
				sy := core.ClampInt(y+ky-halfY, 0, src.H-1)
				for kx := 0; kx < k.W; kx++ {
					sx := core.ClampInt(x+kx-halfX, 0, src.W-1)
					w := k.Weights[ky*k.W+kx]
					i := (sy*src.W + sx) * 4
					sumR += float64(src.Pix[i]) * w
					sumG += float64(src.Pix[i+1]) * w
					sumB += float64(src.Pix[i+2]) * w
				}
			}
			dst.SetRGB(x, y,
				core.ClampU8(sumR/divisor+offset),
				core.ClampU8(sumG/divisor+offset),
				core.ClampU8(sumB/divisor+offset))
		}
	}
	return dst, nil
}
