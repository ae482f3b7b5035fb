package filter

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imaging/img/buffer"
	"github.com/cwbudde/algo-imaging/img/core"
)

// gradientBias is the neutral baseline added by the unnormalized gradient
// convolutions so signed responses survive the byte clamp.
const gradientBias = 128

var (
	sobelX   = Kernel{W: 3, H: 3, Weights: []float64{-1, 0, 1, -2, 0, 2, -1, 0, 1}}
	sobelY   = Kernel{W: 3, H: 3, Weights: []float64{-1, -2, -1, 0, 0, 0, 1, 2, 1}}
	prewittX = Kernel{W: 3, H: 3, Weights: []float64{-1, 0, 1, -1, 0, 1, -1, 0, 1}}
	prewittY = Kernel{W: 3, H: 3, Weights: []float64{-1, -1, -1, 0, 0, 0, 1, 1, 1}}
	robertsX = Kernel{W: 2, H: 2, Weights: []float64{1, 0, 0, -1}}
	robertsY = Kernel{W: 2, H: 2, Weights: []float64{0, 1, -1, 0}}
)

// Sobel runs the Sobel gradient edge detector: achromatic conversion, the
// two directional 3x3 kernels, and the Euclidean gradient magnitude written
// into all three color channels.
func Sobel(src *buffer.Buffer) (*buffer.Buffer, error) {
	return gradientDetect(src, sobelX, sobelY)
}

// Prewitt runs the Prewitt gradient edge detector (3x3 directional kernels).
func Prewitt(src *buffer.Buffer) (*buffer.Buffer, error) {
	return gradientDetect(src, prewittX, prewittY)
}

// Roberts runs the Roberts cross edge detector (2x2 diagonal differences).
func Roberts(src *buffer.Buffer) (*buffer.Buffer, error) {
	return gradientDetect(src, robertsX, robertsY)
}

func gradientDetect(src *buffer.Buffer, kx, ky Kernel) (*buffer.Buffer, error) {
	gray, err := buffer.Grayscale(src)
	if err != nil {
		return nil, err
	}

	gx, gy, err := gradients(gray, kx, ky)
	if err != nil {
		return nil, err
	}

	mag := make([]float64, len(gx))
	vecmath.Magnitude(mag, gx, gy)

	dst := gray.Clone()
	for p, m := range mag {
		v := core.ClampU8(m)
		dst.Pix[p*4] = v
		dst.Pix[p*4+1] = v
		dst.Pix[p*4+2] = v
	}
	return dst, nil
}

// gradients convolves gray with the directional kernel pair at the neutral
// 128 offset and returns the de-biased signed responses as one float plane
// per direction.
func gradients(gray *buffer.Buffer, kx, ky Kernel) (gx, gy []float64, err error) {
	bx, err := convolve(gray, kx, false, gradientBias)
	if err != nil {
		return nil, nil, err
	}
	by, err := convolve(gray, ky, false, gradientBias)
	if err != nil {
		return nil, nil, err
	}

	n := gray.W * gray.H
	gx = make([]float64, n)
	gy = make([]float64, n)
	for p := 0; p < n; p++ {
		gx[p] = float64(bx.Pix[p*4]) - gradientBias
		gy[p] = float64(by.Pix[p*4]) - gradientBias
	}
	return gx, gy, nil
}
