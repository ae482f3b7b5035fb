package buffer

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-imaging/img/core"
)

// Errors returned by buffer constructors and validation.
var (
	ErrEmptyBuffer = errors.New("buffer: width and height must be > 0")
	ErrPixLength   = errors.New("buffer: pixel data length must equal width*height*4")
	ErrNilBuffer   = errors.New("buffer: nil buffer")
)

// Buffer is a rectangular grid of interleaved 8-bit RGBA samples.
// Pix has length exactly W*H*4 in row-major order.
//
// Transforms in this module treat buffers as values: they never mutate
// their input and always return a freshly allocated result.
type Buffer struct {
	W, H int
	Pix  []uint8
}

// New returns an all-zero (transparent black) buffer of the given size.
func New(w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyBuffer, w, h)
	}
	return &Buffer{W: w, H: h, Pix: make([]uint8, w*h*4)}, nil
}

// FromPix wraps existing interleaved RGBA samples without copying.
// The slice length must equal w*h*4.
func FromPix(w, h int, pix []uint8) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyBuffer, w, h)
	}
	if len(pix) != w*h*4 {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPixLength, len(pix), w*h*4)
	}
	return &Buffer{W: w, H: h, Pix: pix}, nil
}

// Validate reports whether b satisfies the buffer invariants.
func Validate(b *Buffer) error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.W <= 0 || b.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyBuffer, b.W, b.H)
	}
	if len(b.Pix) != b.W*b.H*4 {
		return fmt.Errorf("%w: got %d, want %d", ErrPixLength, len(b.Pix), b.W*b.H*4)
	}
	return nil
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{W: b.W, H: b.H, Pix: pix}
}

// At returns the four channel samples at (x, y).
// Coordinates must lie in the canonical [0,W)x[0,H) domain.
func (b *Buffer) At(x, y int) (r, g, bl, a uint8) {
	i := (y*b.W + x) * 4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// Set writes all four channel samples at (x, y).
func (b *Buffer) Set(x, y int, r, g, bl, a uint8) {
	i := (y*b.W + x) * 4
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	b.Pix[i+3] = a
}

// SetRGB writes the color channels at (x, y), leaving alpha untouched.
func (b *Buffer) SetRGB(x, y int, r, g, bl uint8) {
	i := (y*b.W + x) * 4
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
}

// IsAchromatic reports whether every pixel has equal R, G and B samples.
func (b *Buffer) IsAchromatic() bool {
	for i := 0; i < len(b.Pix); i += 4 {
		if b.Pix[i] != b.Pix[i+1] || b.Pix[i] != b.Pix[i+2] {
			return false
		}
	}
	return true
}

// Luminance returns the rounded BT.601 luma of an RGB triple.
func Luminance(r, g, b uint8) uint8 {
	return core.ClampU8(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
}

// Grayscale returns a new achromatic buffer with every pixel's color
// channels replaced by the pixel's luminance. Alpha is preserved.
// Applying Grayscale to an already achromatic buffer is the identity.
func Grayscale(src *Buffer) (*Buffer, error) {
	if err := Validate(src); err != nil {
		return nil, err
	}

	dst := src.Clone()
	for i := 0; i < len(dst.Pix); i += 4 {
		y := Luminance(dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2])
		dst.Pix[i] = y
		dst.Pix[i+1] = y
		dst.Pix[i+2] = y
	}
	return dst, nil
}
