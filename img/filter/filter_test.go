package filter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-imaging/img/buffer"
)

func checkerboard2x2(t *testing.T) *buffer.Buffer {
	t.Helper()
	b, err := buffer.FromPix(2, 2, []uint8{
		0, 0, 0, 255, 255, 255, 255, 255,
		0, 0, 0, 255, 255, 255, 255, 255,
	})
	if err != nil {
		t.Fatalf("FromPix: %v", err)
	}
	return b
}

func grayRamp(t *testing.T, w, h int) *buffer.Buffer {
	t.Helper()
	b, err := buffer.New(w, h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x*37 + y*11) % 256)
			b.Set(x, y, v, v, v, 255)
		}
	}
	return b
}

func TestKernelValidation(t *testing.T) {
	if _, err := NewKernel(3, 0, nil); !errors.Is(err, ErrKernelDims) {
		t.Errorf("err = %v, want ErrKernelDims", err)
	}
	if _, err := NewKernel(3, 3, make([]float64, 8)); !errors.Is(err, ErrKernelWeights) {
		t.Errorf("err = %v, want ErrKernelWeights", err)
	}
	for _, size := range []int{0, -3, 2, 4} {
		if _, err := Box(size); !errors.Is(err, ErrKernelSize) {
			t.Errorf("Box(%d) err = %v, want ErrKernelSize", size, err)
		}
		if _, err := Gaussian(size); !errors.Is(err, ErrKernelSize) {
			t.Errorf("Gaussian(%d) err = %v, want ErrKernelSize", size, err)
		}
	}
}

func TestConvolveIdentityKernel(t *testing.T) {
	src := grayRamp(t, 5, 4)
	k, err := NewKernel(3, 3, []float64{0, 0, 0, 0, 1, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}

	dst, err := Convolve(src, k, false)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("identity kernel changed byte %d: %d != %d", i, dst.Pix[i], src.Pix[i])
		}
	}
}

func TestConvolveZeroWeightKernel(t *testing.T) {
	src := grayRamp(t, 4, 4)
	k, err := NewKernel(3, 3, []float64{-1, 0, 1, -1, 0, 1, -1, 0, 1})
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}

	// Zero total weight with normalize must fall back to a divisor of 1
	// instead of dividing by zero.
	if _, err := Convolve(src, k, true); err != nil {
		t.Fatalf("Convolve: %v", err)
	}
}

func TestBoxFilterCheckerboardScenario(t *testing.T) {
	src := checkerboard2x2(t)

	dst, err := Average(src, 3)
	if err != nil {
		t.Fatalf("Average: %v", err)
	}

	// With edge replication the 3x3 neighborhood of each left pixel samples
	// the 0-column six times and the 255-column three times (avg 85), and
	// vice versa for the right pixels (avg 170).
	want := map[[2]int]uint8{
		{0, 0}: 85, {1, 0}: 170,
		{0, 1}: 85, {1, 1}: 170,
	}
	for pos, w := range want {
		r, g, b, a := dst.At(pos[0], pos[1])
		if r != w || g != w || b != w {
			t.Errorf("pixel (%d,%d) = (%d,%d,%d), want uniform %d", pos[0], pos[1], r, g, b, w)
		}
		if a != 255 {
			t.Errorf("pixel (%d,%d) alpha = %d, want 255", pos[0], pos[1], a)
		}
	}
}

func TestConvolveDoesNotMutateInput(t *testing.T) {
	src := grayRamp(t, 6, 6)
	want := src.Clone()

	if _, err := GaussianBlur(src, 5); err != nil {
		t.Fatalf("GaussianBlur: %v", err)
	}
	for i := range src.Pix {
		if src.Pix[i] != want.Pix[i] {
			t.Fatalf("input mutated at byte %d", i)
		}
	}
}

func TestGaussianBlurFlatImageIsIdentity(t *testing.T) {
	src, _ := buffer.New(6, 6)
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 90
		src.Pix[i+1] = 90
		src.Pix[i+2] = 90
		src.Pix[i+3] = 255
	}

	dst, err := GaussianBlur(src, 5)
	if err != nil {
		t.Fatalf("GaussianBlur: %v", err)
	}
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("flat image changed at byte %d: %d", i, dst.Pix[i])
		}
	}
}

func TestMedianRemovesImpulse(t *testing.T) {
	src, _ := buffer.New(5, 5)
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+3] = 255
	}
	src.SetRGB(2, 2, 255, 255, 255)

	dst, err := Median(src, 3)
	if err != nil {
		t.Fatalf("Median: %v", err)
	}
	r, g, b, _ := dst.At(2, 2)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("impulse survived median filter: (%d,%d,%d)", r, g, b)
	}
}

func TestMedianEvenSizeRejected(t *testing.T) {
	src := grayRamp(t, 4, 4)
	if _, err := Median(src, 4); !errors.Is(err, ErrKernelSize) {
		t.Fatalf("err = %v, want ErrKernelSize", err)
	}
}

func TestApplyDispatch(t *testing.T) {
	src := grayRamp(t, 8, 8)

	for _, typ := range []Type{TypeAverage, TypeGaussian, TypeMedian, TypeSobel, TypeRoberts, TypePrewitt, TypeCanny} {
		dst, err := Apply(src, typ, 3)
		if err != nil {
			t.Fatalf("Apply(%d): %v", typ, err)
		}
		if dst.W != src.W || dst.H != src.H {
			t.Fatalf("Apply(%d) changed dimensions", typ)
		}
	}

	if _, err := Apply(src, Type(42), 3); err == nil {
		t.Fatal("unknown type expected error")
	}
}
