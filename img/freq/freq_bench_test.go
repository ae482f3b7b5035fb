package freq

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-imaging/img/buffer"
)

func benchImage(b *testing.B, w, h int) *buffer.Buffer {
	b.Helper()
	img, err := buffer.New(w, h)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

func BenchmarkFFT1D(b *testing.B) {
	for _, n := range []int{256, 1024} {
		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(2))
			re := make([]float64, n)
			im := make([]float64, n)
			for i := range re {
				re[i] = rng.Float64()
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := fft(re, im, false); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkForward(b *testing.B) {
	src := benchImage(b, 256, 256)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Forward(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	src := benchImage(b, 128, 128)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := Forward(src)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := Inverse(s); err != nil {
			b.Fatal(err)
		}
	}
}
