package freq

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imaging/img/buffer"
	"github.com/cwbudde/algo-imaging/img/core"
)

// Forward computes the centered 2D FFT of src's luminance channel. The
// source is zero-padded up to the next power-of-two width and height, each
// padded sample is multiplied by (-1)^(x+y) to center the spectrum, and the
// 1D transform runs across every row and then down every column.
func Forward(src *buffer.Buffer) (*Spectrum, error) {
	if err := buffer.Validate(src); err != nil {
		return nil, err
	}

	pw := core.NextPowerOfTwo(src.W)
	ph := core.NextPowerOfTwo(src.H)

	s := &Spectrum{
		Re: newPlanes(pw, ph),
		Im: newPlanes(pw, ph),
		W:  src.W,
		H:  src.H,
	}

	for y := 0; y < src.H; y++ {
		row := s.Re[y]
		for x := 0; x < src.W; x++ {
			i := (y*src.W + x) * 4
			luma := float64(buffer.Luminance(src.Pix[i], src.Pix[i+1], src.Pix[i+2]))
			if (x+y)&1 == 1 {
				luma = -luma
			}
			row[x] = luma
		}
	}

	for y := 0; y < ph; y++ {
		if err := fft(s.Re[y], s.Im[y], false); err != nil {
			return nil, err
		}
	}
	if err := fftColumns(s.Re, s.Im, false); err != nil {
		return nil, err
	}
	return s, nil
}

// Inverse converts a spectrum back to an achromatic pixel buffer: the 1D
// inverse transform runs down every column and then across every row, the
// padded planes are cropped to the original size, and each complex sample's
// magnitude becomes the pixel value (alpha opaque). The input spectrum is
// left untouched.
func Inverse(s *Spectrum) (*buffer.Buffer, error) {
	if err := validateSpectrum(s); err != nil {
		return nil, err
	}

	pw, ph := s.PadW(), s.PadH()
	re := newPlanes(pw, ph)
	im := newPlanes(pw, ph)
	for y := 0; y < ph; y++ {
		copy(re[y], s.Re[y])
		copy(im[y], s.Im[y])
	}

	if err := fftColumns(re, im, true); err != nil {
		return nil, err
	}
	for y := 0; y < ph; y++ {
		if err := fft(re[y], im[y], true); err != nil {
			return nil, err
		}
	}

	dst, err := buffer.New(s.W, s.H)
	if err != nil {
		return nil, err
	}

	mag := make([]float64, s.W)
	for y := 0; y < s.H; y++ {
		vecmath.Magnitude(mag, re[y][:s.W], im[y][:s.W])
		for x := 0; x < s.W; x++ {
			v := core.ClampU8(mag[x])
			dst.Set(x, y, v, v, v, 255)
		}
	}
	return dst, nil
}

// fftColumns applies the 1D transform down every column of the planes,
// staging each column through reusable scratch lines.
func fftColumns(re, im [][]float64, inverse bool) error {
	ph := len(re)
	if ph == 0 {
		return ErrSpectrumShape
	}
	pw := len(re[0])

	colRe := make([]float64, ph)
	colIm := make([]float64, ph)
	for x := 0; x < pw; x++ {
		for y := 0; y < ph; y++ {
			colRe[y] = re[y][x]
			colIm[y] = im[y][x]
		}
		if err := fft(colRe, colIm, inverse); err != nil {
			return err
		}
		for y := 0; y < ph; y++ {
			re[y][x] = colRe[y]
			im[y][x] = colIm[y]
		}
	}
	return nil
}
