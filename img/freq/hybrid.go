package freq

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imaging/img/buffer"
)

// Hybrid masks two spectra independently, adds them coordinate-wise over
// the region common to both, and inverse-transforms the sum. The common
// region is the elementwise minimum of the padded dimensions; the result is
// cropped to the minimum of the original dimensions. The classic hybrid
// image combines the low-pass of one source with the high-pass of another.
func Hybrid(a, b *Spectrum, passA PassType, radiusA float64, passB PassType, radiusB float64) (*buffer.Buffer, error) {
	ma, err := Mask(a, passA, radiusA)
	if err != nil {
		return nil, err
	}
	mb, err := Mask(b, passB, radiusB)
	if err != nil {
		return nil, err
	}

	pw := min(ma.PadW(), mb.PadW())
	ph := min(ma.PadH(), mb.PadH())

	sum := &Spectrum{
		Re: newPlanes(pw, ph),
		Im: newPlanes(pw, ph),
		W:  min(ma.W, mb.W),
		H:  min(ma.H, mb.H),
	}
	for y := 0; y < ph; y++ {
		copy(sum.Re[y], ma.Re[y][:pw])
		copy(sum.Im[y], ma.Im[y][:pw])
		vecmath.AddBlockInPlace(sum.Re[y], mb.Re[y][:pw])
		vecmath.AddBlockInPlace(sum.Im[y], mb.Im[y][:pw])
	}

	return Inverse(sum)
}
