// Package tone implements histogram-based tone mapping: per-channel
// intensity histograms, min-max normalization and cumulative-distribution
// equalization.
package tone

import (
	"github.com/cwbudde/algo-imaging/img/buffer"
)

// Bins is the number of intensity bins per channel.
const Bins = 256

// Histogram holds per-channel intensity counts for a pixel buffer, plus a
// luminance histogram and a flag reporting whether the source was fully
// achromatic. Each channel's counts sum to W*H.
type Histogram struct {
	R, G, B, Luma [Bins]int
	Achromatic    bool
}

// NewHistogram computes the channel and luminance histograms of src.
func NewHistogram(src *buffer.Buffer) (*Histogram, error) {
	if err := buffer.Validate(src); err != nil {
		return nil, err
	}

	h := &Histogram{Achromatic: true}
	for i := 0; i < len(src.Pix); i += 4 {
		r, g, b := src.Pix[i], src.Pix[i+1], src.Pix[i+2]
		h.R[r]++
		h.G[g]++
		h.B[b]++
		h.Luma[buffer.Luminance(r, g, b)]++
		if r != g || r != b {
			h.Achromatic = false
		}
	}
	return h, nil
}
