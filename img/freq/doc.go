// Package freq implements frequency-domain processing of pixel buffers:
// luminance extraction, zero-padding to power-of-two dimensions, a 2D
// forward/inverse FFT with spectrum centering, radial low/high-pass masking,
// a log-magnitude spectrum visualization, and additive two-spectrum
// hybrid-image synthesis.
//
// The forward transform multiplies each padded sample by (-1)^(x+y) before
// transforming. This checkerboard sign flip is algebraically equivalent to
// shifting the spectrum afterwards, so the zero frequency lands at the
// geometric center of the padded planes without a separate rearrangement
// pass.
//
// Spectra are immutable values: masking and combination return new Spectra
// and the inverse transform leaves its input untouched.
package freq
