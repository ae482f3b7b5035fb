// Package noise generates synthetic per-pixel perturbations over a pixel
// buffer: uniform offsets, Gaussian offsets and salt-and-pepper impulses.
// Only the color channels are perturbed; alpha passes through unchanged.
package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-imaging/img/buffer"
	"github.com/cwbudde/algo-imaging/img/core"
)

// Type identifies a noise variant.
type Type int

const (
	TypeUniform Type = iota
	TypeGaussian
	TypeSaltPepper
)

// gaussianSigmaScale maps percentage 100 to a standard deviation of 80.
const gaussianSigmaScale = 80.0

// Option configures noise generation.
type Option func(*config)

type config struct {
	seed   int64
	seeded bool
}

// WithSeed sets a deterministic random seed. Without it every call draws a
// fresh seed, so repeated calls produce different noise.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

func newRand(opts []Option) *rand.Rand {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if !c.seeded {
		c.seed = rand.Int63()
	}
	return rand.New(rand.NewSource(c.seed))
}

func validate(src *buffer.Buffer, percentage float64) error {
	if err := buffer.Validate(src); err != nil {
		return err
	}
	if percentage <= 0 || percentage > 100 {
		return fmt.Errorf("noise: percentage must be in (0,100]: %f", percentage)
	}
	return nil
}

// Apply runs the noise variant selected by typ.
func Apply(src *buffer.Buffer, typ Type, percentage float64, opts ...Option) (*buffer.Buffer, error) {
	switch typ {
	case TypeUniform:
		return Uniform(src, percentage, opts...)
	case TypeGaussian:
		return Gaussian(src, percentage, opts...)
	case TypeSaltPepper:
		return SaltPepper(src, percentage, opts...)
	default:
		return nil, fmt.Errorf("noise: unknown type: %d", typ)
	}
}

// Uniform shifts every color sample by an independent uniform offset in
// [-percentage/100*255, +percentage/100*255], clamped to the byte range.
func Uniform(src *buffer.Buffer, percentage float64, opts ...Option) (*buffer.Buffer, error) {
	if err := validate(src, percentage); err != nil {
		return nil, err
	}

	rng := newRand(opts)
	amplitude := percentage / 100 * 255

	dst := src.Clone()
	for i := 0; i < len(dst.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			offset := (rng.Float64()*2 - 1) * amplitude
			dst.Pix[i+c] = core.ClampU8(float64(dst.Pix[i+c]) + offset)
		}
	}
	return dst, nil
}

// Gaussian shifts every color sample by an independent draw from N(0, sigma)
// with sigma = percentage/100*80, clamped to the byte range.
func Gaussian(src *buffer.Buffer, percentage float64, opts ...Option) (*buffer.Buffer, error) {
	if err := validate(src, percentage); err != nil {
		return nil, err
	}

	rng := newRand(opts)
	sigma := percentage / 100 * gaussianSigmaScale

	dst := src.Clone()
	for i := 0; i < len(dst.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			dst.Pix[i+c] = core.ClampU8(float64(dst.Pix[i+c]) + boxMuller(rng)*sigma)
		}
	}
	return dst, nil
}

// boxMuller draws one standard normal sample via the Box-Muller transform.
// Zero draws of the first uniform are rejected to keep log defined.
func boxMuller(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// SaltPepper forces, with probability percentage/100 per pixel, all three
// color channels to an impulse: black with probability percentage/200 and
// white with the remaining percentage/200. Other pixels are unchanged.
func SaltPepper(src *buffer.Buffer, percentage float64, opts ...Option) (*buffer.Buffer, error) {
	if err := validate(src, percentage); err != nil {
		return nil, err
	}

	rng := newRand(opts)
	p := percentage / 100

	dst := src.Clone()
	for i := 0; i < len(dst.Pix); i += 4 {
		if rng.Float64() >= p {
			continue
		}
		v := uint8(0)
		if rng.Float64() >= 0.5 {
			v = 255
		}
		dst.Pix[i] = v
		dst.Pix[i+1] = v
		dst.Pix[i+2] = v
	}
	return dst, nil
}
