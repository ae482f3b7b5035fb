package freq_test

import (
	"fmt"

	"github.com/cwbudde/algo-imaging/img/buffer"
	"github.com/cwbudde/algo-imaging/img/freq"
)

func ExampleForward() {
	src, _ := buffer.New(5, 3)

	// Non-power-of-two inputs are zero-padded, never truncated.
	s, _ := freq.Forward(src)
	fmt.Println(s.PadW(), s.PadH(), s.W, s.H)

	// Output:
	// 8 4 5 3
}

func ExampleHybrid() {
	a, _ := buffer.New(8, 8)
	b, _ := buffer.New(8, 8)

	sa, _ := freq.Forward(a)
	sb, _ := freq.Forward(b)

	// Low frequencies of a plus high frequencies of b.
	out, _ := freq.Hybrid(sa, sb, freq.PassLow, 20, freq.PassHigh, 20)
	fmt.Println(out.W, out.H)

	// Output:
	// 8 8
}
