// Package buffer provides the shared pixel representation for the imaging
// algorithms: a rectangular grid of interleaved 8-bit RGBA samples. All
// transform packages consume and produce *buffer.Buffer values and follow a
// strict read-only input contract; results are always freshly allocated.
package buffer
