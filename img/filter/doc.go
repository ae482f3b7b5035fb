// Package filter implements spatial-domain filtering over pixel buffers:
// a generic 2D convolution primitive with replicate-border sampling, the
// derived box, Gaussian and median filters, the Sobel, Prewitt and Roberts
// gradient edge detectors, and a multi-stage Canny edge detector with
// non-maximum suppression and double thresholding.
//
// All filters follow the read-only input contract: the source buffer is
// never mutated and every call returns a freshly allocated result. Channel
// arithmetic rounds to the nearest integer and clamps to [0,255].
package filter
