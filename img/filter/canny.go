package filter

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imaging/img/buffer"
)

// Canny threshold factors: the high threshold is a fraction of the maximum
// suppressed magnitude, the low threshold a fraction of the high one.
const (
	cannyHighFactor = 0.15
	cannyLowFactor  = 0.4
)

// Canny runs a simplified Canny edge detector: achromatic conversion,
// Gaussian blur at the given odd kernel size, Sobel gradients, non-maximum
// suppression along the quantized gradient direction, and a double
// threshold producing a ternary edge map (255 strong, 128 weak, 0 none).
// The edge-tracking hysteresis-linking step is intentionally omitted.
func Canny(src *buffer.Buffer, size int) (*buffer.Buffer, error) {
	gray, err := buffer.Grayscale(src)
	if err != nil {
		return nil, err
	}
	blurred, err := GaussianBlur(gray, size)
	if err != nil {
		return nil, err
	}

	gx, gy, err := gradients(blurred, sobelX, sobelY)
	if err != nil {
		return nil, err
	}

	w, h := src.W, src.H
	mag := make([]float64, len(gx))
	vecmath.Magnitude(mag, gx, gy)

	dir := make([]float64, len(gx))
	for p := range dir {
		dir[p] = math.Atan2(gy[p], gx[p])
	}

	suppressed := nonMaxSuppress(mag, dir, w, h)

	maxMag := 0.0
	for _, m := range suppressed {
		if m > maxMag {
			maxMag = m
		}
	}
	high := cannyHighFactor * maxMag
	low := cannyLowFactor * high

	dst := blurred.Clone()
	for p, m := range suppressed {
		var v uint8
		switch {
		case m >= high && maxMag > 0:
			v = 255
		case m >= low && maxMag > 0:
			v = 128
		}
		dst.Pix[p*4] = v
		dst.Pix[p*4+1] = v
		dst.Pix[p*4+2] = v
	}
	return dst, nil
}

// nonMaxSuppress keeps a pixel's gradient magnitude only if it is >= both
// neighbors along the quantized gradient direction. Directions are folded
// into [0,180) and binned at 45 degree steps. Border pixels are excluded
// and come out zero.
func nonMaxSuppress(mag, dir []float64, w, h int) []float64 {
	out := make([]float64, len(mag))

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			p := y*w + x

			angle := dir[p] * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}

			var a, b float64
			switch {
			case angle < 22.5 || angle >= 157.5: // 0: horizontal
				a = mag[p-1]
				b = mag[p+1]
			case angle < 67.5: // 45
				a = mag[p-w-1]
				b = mag[p+w+1]
			case angle < 112.5: // 90: vertical
				a = mag[p-w]
				b = mag[p+w]
			default: // 135
				a = mag[p-w+1]
				b = mag[p+w-1]
			}

			if mag[p] >= a && mag[p] >= b {
				out[p] = mag[p]
			}
		}
	}
	return out
}
