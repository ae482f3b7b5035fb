package noise

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-imaging/img/buffer"
)

func midGray(w, h int) *buffer.Buffer {
	b, _ := buffer.New(w, h)
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] = 128
		b.Pix[i+1] = 128
		b.Pix[i+2] = 128
		b.Pix[i+3] = 255
	}
	return b
}

func TestValidation(t *testing.T) {
	src := midGray(4, 4)

	for _, pct := range []float64{0, -5, 100.1, 500} {
		if _, err := Uniform(src, pct); err == nil {
			t.Errorf("Uniform(pct=%v) expected error", pct)
		}
	}

	if _, err := Gaussian(nil, 50); !errors.Is(err, buffer.ErrNilBuffer) {
		t.Errorf("nil buffer err = %v, want ErrNilBuffer", err)
	}

	if _, err := Apply(src, Type(99), 50); err == nil {
		t.Error("unknown type expected error")
	}
}

func TestInputUntouchedAndAlphaPreserved(t *testing.T) {
	for _, typ := range []Type{TypeUniform, TypeGaussian, TypeSaltPepper} {
		src := midGray(8, 8)
		want := src.Clone()

		dst, err := Apply(src, typ, 80, WithSeed(7))
		if err != nil {
			t.Fatalf("Apply(%d): %v", typ, err)
		}

		for i := range src.Pix {
			if src.Pix[i] != want.Pix[i] {
				t.Fatalf("type %d mutated its input at byte %d", typ, i)
			}
		}
		for i := 3; i < len(dst.Pix); i += 4 {
			if dst.Pix[i] != 255 {
				t.Fatalf("type %d changed alpha at byte %d: %d", typ, i, dst.Pix[i])
			}
		}
	}
}

func TestUniformBounded(t *testing.T) {
	src := midGray(16, 16)
	const pct = 10.0
	amplitude := pct / 100 * 255

	dst, err := Uniform(src, pct, WithSeed(42))
	if err != nil {
		t.Fatalf("Uniform: %v", err)
	}

	changed := false
	for i := 0; i < len(dst.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			d := float64(dst.Pix[i+c]) - 128
			if d > amplitude+0.5 || d < -amplitude-0.5 {
				t.Fatalf("offset %v exceeds amplitude %v", d, amplitude)
			}
			if d != 0 {
				changed = true
			}
		}
	}
	if !changed {
		t.Fatal("uniform noise at 10% left every sample unchanged")
	}
}

func TestGaussianChangesSamples(t *testing.T) {
	src := midGray(16, 16)

	dst, err := Gaussian(src, 50, WithSeed(3))
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}

	changed := 0
	for i := 0; i < len(dst.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			if dst.Pix[i+c] != 128 {
				changed++
			}
		}
	}
	// sigma = 40; staying within +-0.5 of the mean is rare, so nearly all
	// of the 768 samples should move.
	if changed < 700 {
		t.Fatalf("only %d samples changed", changed)
	}
}

func TestGaussianDrawsPerChannel(t *testing.T) {
	src := midGray(16, 16)

	dst, err := Gaussian(src, 50, WithSeed(5))
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}

	// Each channel gets its own draw, so a gray input does not stay gray:
	// a shared per-pixel draw would shift R, G and B identically.
	split := 0
	for i := 0; i < len(dst.Pix); i += 4 {
		r, g, b := dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2]
		if r != g || r != b {
			split++
		}
	}
	if split == 0 {
		t.Fatal("every pixel stayed achromatic; channel draws are not independent")
	}
}

func TestSaltPepperFullCoverage(t *testing.T) {
	src := midGray(16, 16)

	dst, err := SaltPepper(src, 100, WithSeed(11))
	if err != nil {
		t.Fatalf("SaltPepper: %v", err)
	}

	salt, pepper := 0, 0
	for i := 0; i < len(dst.Pix); i += 4 {
		r, g, b := dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2]
		if r != g || r != b {
			t.Fatalf("impulse pixel not achromatic: (%d,%d,%d)", r, g, b)
		}
		switch r {
		case 0:
			pepper++
		case 255:
			salt++
		default:
			t.Fatalf("pixel at intermediate value %d after 100%% salt-pepper", r)
		}
	}
	if salt == 0 || pepper == 0 {
		t.Fatalf("expected both impulse colors: salt=%d pepper=%d", salt, pepper)
	}
}

func TestSaltPepperLowRateLeavesMostPixels(t *testing.T) {
	src := midGray(32, 32)

	dst, err := SaltPepper(src, 5, WithSeed(23))
	if err != nil {
		t.Fatalf("SaltPepper: %v", err)
	}

	forced := 0
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 128 {
			forced++
		}
	}
	// 1024 pixels at 5%: expectation 51, spread a few sigma wide.
	if forced == 0 || forced > 120 {
		t.Fatalf("forced pixel count %d implausible for 5%%", forced)
	}
}

func TestSeedDeterminism(t *testing.T) {
	src := midGray(8, 8)

	a, err := Gaussian(src, 30, WithSeed(99))
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	b, err := Gaussian(src, 30, WithSeed(99))
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("same seed produced different output at byte %d", i)
		}
	}
}
