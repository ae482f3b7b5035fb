package freq

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-imaging/img/core"
)

// Errors returned by the frequency-domain operations.
var (
	ErrNilSpectrum   = errors.New("freq: nil spectrum")
	ErrSpectrumShape = errors.New("freq: real and imaginary planes must be rectangular and equal-shaped")
	ErrSpectrumSize  = errors.New("freq: padded dimensions must be powers of two")
	ErrOriginalSize  = errors.New("freq: original dimensions must be positive and fit the padded planes")
	ErrRadius        = errors.New("freq: mask radius must be >= 0")
)

// Spectrum holds the result of the forward transform: real and imaginary
// planes at power-of-two padded dimensions, plus the original (unpadded)
// buffer size needed to crop after the inverse transform.
type Spectrum struct {
	Re, Im [][]float64
	W, H   int
}

// PadW returns the padded plane width.
func (s *Spectrum) PadW() int {
	if len(s.Re) == 0 {
		return 0
	}
	return len(s.Re[0])
}

// PadH returns the padded plane height.
func (s *Spectrum) PadH() int {
	return len(s.Re)
}

func newPlanes(w, h int) [][]float64 {
	p := make([][]float64, h)
	for y := range p {
		p[y] = make([]float64, w)
	}
	return p
}

func validateSpectrum(s *Spectrum) error {
	if s == nil {
		return ErrNilSpectrum
	}
	ph := len(s.Re)
	if ph == 0 || len(s.Im) != ph {
		return ErrSpectrumShape
	}
	pw := len(s.Re[0])
	for y := 0; y < ph; y++ {
		if len(s.Re[y]) != pw || len(s.Im[y]) != pw {
			return ErrSpectrumShape
		}
	}
	if !core.IsPowerOfTwo(pw) || !core.IsPowerOfTwo(ph) {
		return fmt.Errorf("%w: %dx%d", ErrSpectrumSize, pw, ph)
	}
	if s.W <= 0 || s.H <= 0 || s.W > pw || s.H > ph {
		return fmt.Errorf("%w: %dx%d in %dx%d", ErrOriginalSize, s.W, s.H, pw, ph)
	}
	return nil
}
