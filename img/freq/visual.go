package freq

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imaging/img/buffer"
	"github.com/cwbudde/algo-imaging/img/core"
)

// Visualize renders a spectrum as a grayscale buffer at the padded
// dimensions: each coordinate maps to log(1+|c|), scaled so the largest
// value across the spectrum becomes 255. An all-zero spectrum renders
// black (its maximum is treated as 1).
func Visualize(s *Spectrum) (*buffer.Buffer, error) {
	if err := validateSpectrum(s); err != nil {
		return nil, err
	}

	pw, ph := s.PadW(), s.PadH()
	logMag := newPlanes(pw, ph)
	maxVal := 0.0

	mag := make([]float64, pw)
	for y := 0; y < ph; y++ {
		vecmath.Magnitude(mag, s.Re[y], s.Im[y])
		for x := 0; x < pw; x++ {
			v := math.Log1p(mag[x])
			logMag[y][x] = v
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	dst, err := buffer.New(pw, ph)
	if err != nil {
		return nil, err
	}
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			v := core.ClampU8(logMag[y][x] / maxVal * 255)
			dst.Set(x, y, v, v, v, 255)
		}
	}
	return dst, nil
}
