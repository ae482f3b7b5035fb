package tone

import (
	"github.com/cwbudde/algo-imaging/img/buffer"
	"github.com/cwbudde/algo-imaging/img/core"
)

// Normalize rescales each color channel independently so its samples span
// the full byte range: out = (s - min) / (max - min) * 255. A channel with
// zero range uses a divisor of 1, which maps it to black. Alpha is
// untouched.
func Normalize(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := buffer.Validate(src); err != nil {
		return nil, err
	}

	var min, max [3]uint8
	for c := 0; c < 3; c++ {
		min[c] = 255
	}
	for i := 0; i < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := src.Pix[i+c]
			if v < min[c] {
				min[c] = v
			}
			if v > max[c] {
				max[c] = v
			}
		}
	}

	var scale [3]float64
	for c := 0; c < 3; c++ {
		span := float64(max[c]) - float64(min[c])
		if span == 0 {
			span = 1
		}
		scale[c] = 255 / span
	}

	dst := src.Clone()
	for i := 0; i < len(dst.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			dst.Pix[i+c] = core.ClampU8((float64(dst.Pix[i+c]) - float64(min[c])) * scale[c])
		}
	}
	return dst, nil
}

// Equalize remaps each color channel independently through its cumulative
// distribution: out = (CDF[s] - cdfMin) / (total - cdfMin) * 255, where
// cdfMin is the smallest nonzero CDF value. A constant channel makes the
// denominator zero; such channels are left unchanged. Alpha is untouched.
func Equalize(src *buffer.Buffer) (*buffer.Buffer, error) {
	hist, err := NewHistogram(src)
	if err != nil {
		return nil, err
	}

	total := src.W * src.H
	luts := [3][Bins]uint8{}
	channels := [3]*[Bins]int{&hist.R, &hist.G, &hist.B}

	for c, counts := range channels {
		var cdf [Bins]int
		running := 0
		for v := 0; v < Bins; v++ {
			running += counts[v]
			cdf[v] = running
		}

		cdfMin := 0
		for v := 0; v < Bins; v++ {
			if cdf[v] > 0 {
				cdfMin = cdf[v]
				break
			}
		}

		denom := total - cdfMin
		if denom == 0 {
			// Single-bin channel: the remap is 0/0, so keep it as is.
			for v := 0; v < Bins; v++ {
				luts[c][v] = uint8(v)
			}
			continue
		}

		for v := 0; v < Bins; v++ {
			luts[c][v] = core.ClampU8(float64(cdf[v]-cdfMin) / float64(denom) * 255)
		}
	}

	dst := src.Clone()
	for i := 0; i < len(dst.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			dst.Pix[i+c] = luts[c][dst.Pix[i+c]]
		}
	}
	return dst, nil
}
