package freq

import (
	"fmt"
	"math"
)

// PassType selects which side of the mask radius survives.
type PassType int

const (
	// PassLow keeps coefficients at distance <= radius from the center.
	PassLow PassType = iota
	// PassHigh keeps coefficients at distance >= radius from the center.
	PassHigh
)

// LowPass returns a new spectrum with every coefficient farther than radius
// from the spectrum's geometric center zeroed. Coefficients exactly at the
// radius are kept.
func LowPass(s *Spectrum, radius float64) (*Spectrum, error) {
	return Mask(s, PassLow, radius)
}

// HighPass returns a new spectrum with every coefficient closer than radius
// to the spectrum's geometric center zeroed. Coefficients exactly at the
// radius are kept.
func HighPass(s *Spectrum, radius float64) (*Spectrum, error) {
	return Mask(s, PassHigh, radius)
}

// Mask applies a radial pass filter and returns a new spectrum of identical
// shape. The input is not mutated.
func Mask(s *Spectrum, pass PassType, radius float64) (*Spectrum, error) {
	if err := validateSpectrum(s); err != nil {
		return nil, err
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %f", ErrRadius, radius)
	}
	if pass != PassLow && pass != PassHigh {
		return nil, fmt.Errorf("freq: unknown pass type: %d", pass)
	}

	pw, ph := s.PadW(), s.PadH()
	cx := float64(pw / 2)
	cy := float64(ph / 2)

	out := &Spectrum{
		Re: newPlanes(pw, ph),
		Im: newPlanes(pw, ph),
		W:  s.W,
		H:  s.H,
	}

	for y := 0; y < ph; y++ {
		dy := float64(y) - cy
		for x := 0; x < pw; x++ {
			dx := float64(x) - cx
			dist := math.Hypot(dx, dy)

			keep := dist <= radius
			if pass == PassHigh {
				keep = dist >= radius
			}
			if keep {
				out.Re[y][x] = s.Re[y][x]
				out.Im[y][x] = s.Im[y][x]
			}
		}
	}
	return out, nil
}
