//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-imaging/img/buffer"
	"github.com/cwbudde/algo-imaging/img/filter"
	"github.com/cwbudde/algo-imaging/img/freq"
	"github.com/cwbudde/algo-imaging/img/noise"
	"github.com/cwbudde/algo-imaging/img/tone"
)

var funcs []js.Func

// The API mirrors canvas ImageData: pixel arguments are Uint8ClampedArray
// RGBA bytes plus width and height, results are fresh Uint8Array RGBA bytes
// (or an error string).
func main() {
	api := js.Global().Get("Object").New()

	api.Set("filter", export(func(args []js.Value) any {
		if len(args) < 4 {
			return "filter: need name, pixels, width, height"
		}
		src, err := toBuffer(args[1], args[2].Int(), args[3].Int())
		if err != nil {
			return err.Error()
		}
		size := 3
		if len(args) > 4 {
			size = args[4].Int()
		}

		typ, ok := filterTypes[args[0].String()]
		if !ok {
			return "filter: unknown name " + args[0].String()
		}
		dst, err := filter.Apply(src, typ, size)
		if err != nil {
			return err.Error()
		}
		return fromBuffer(dst)
	}))

	api.Set("noise", export(func(args []js.Value) any {
		if len(args) < 5 {
			return "noise: need name, pixels, width, height, percentage"
		}
		src, err := toBuffer(args[1], args[2].Int(), args[3].Int())
		if err != nil {
			return err.Error()
		}

		typ, ok := noiseTypes[args[0].String()]
		if !ok {
			return "noise: unknown name " + args[0].String()
		}
		dst, err := noise.Apply(src, typ, args[4].Float())
		if err != nil {
			return err.Error()
		}
		return fromBuffer(dst)
	}))

	api.Set("normalize", export(toneOp(tone.Normalize)))
	api.Set("equalize", export(toneOp(tone.Equalize)))
	api.Set("grayscale", export(toneOp(buffer.Grayscale)))

	api.Set("frequencyFilter", export(func(args []js.Value) any {
		if len(args) < 5 {
			return "frequencyFilter: need pass, pixels, width, height, radius"
		}
		src, err := toBuffer(args[1], args[2].Int(), args[3].Int())
		if err != nil {
			return err.Error()
		}
		pass := freq.PassLow
		if args[0].String() == "high" {
			pass = freq.PassHigh
		}

		s, err := freq.Forward(src)
		if err != nil {
			return err.Error()
		}
		masked, err := freq.Mask(s, pass, args[4].Float())
		if err != nil {
			return err.Error()
		}
		dst, err := freq.Inverse(masked)
		if err != nil {
			return err.Error()
		}
		return fromBuffer(dst)
	}))

	api.Set("spectrum", export(func(args []js.Value) any {
		if len(args) < 3 {
			return "spectrum: need pixels, width, height"
		}
		src, err := toBuffer(args[0], args[1].Int(), args[2].Int())
		if err != nil {
			return err.Error()
		}
		s, err := freq.Forward(src)
		if err != nil {
			return err.Error()
		}
		viz, err := freq.Visualize(s)
		if err != nil {
			return err.Error()
		}
		out := js.Global().Get("Object").New()
		out.Set("pixels", fromBuffer(viz))
		out.Set("width", viz.W)
		out.Set("height", viz.H)
		return out
	}))

	api.Set("hybrid", export(func(args []js.Value) any {
		if len(args) < 8 {
			return "hybrid: need pixelsA, widthA, heightA, radiusA, pixelsB, widthB, heightB, radiusB"
		}
		a, err := toBuffer(args[0], args[1].Int(), args[2].Int())
		if err != nil {
			return err.Error()
		}
		b, err := toBuffer(args[4], args[5].Int(), args[6].Int())
		if err != nil {
			return err.Error()
		}

		sa, err := freq.Forward(a)
		if err != nil {
			return err.Error()
		}
		sb, err := freq.Forward(b)
		if err != nil {
			return err.Error()
		}
		dst, err := freq.Hybrid(sa, sb, freq.PassLow, args[3].Float(), freq.PassHigh, args[7].Float())
		if err != nil {
			return err.Error()
		}
		out := js.Global().Get("Object").New()
		out.Set("pixels", fromBuffer(dst))
		out.Set("width", dst.W)
		out.Set("height", dst.H)
		return out
	}))

	js.Global().Set("AlgoImaging", api)
	select {}
}

var filterTypes = map[string]filter.Type{
	"average":  filter.TypeAverage,
	"gaussian": filter.TypeGaussian,
	"median":   filter.TypeMedian,
	"sobel":    filter.TypeSobel,
	"roberts":  filter.TypeRoberts,
	"prewitt":  filter.TypePrewitt,
	"canny":    filter.TypeCanny,
}

var noiseTypes = map[string]noise.Type{
	"uniform":    noise.TypeUniform,
	"gaussian":   noise.TypeGaussian,
	"saltpepper": noise.TypeSaltPepper,
}

func toneOp(fn func(*buffer.Buffer) (*buffer.Buffer, error)) func([]js.Value) any {
	return func(args []js.Value) any {
		if len(args) < 3 {
			return "need pixels, width, height"
		}
		src, err := toBuffer(args[0], args[1].Int(), args[2].Int())
		if err != nil {
			return err.Error()
		}
		dst, err := fn(src)
		if err != nil {
			return err.Error()
		}
		return fromBuffer(dst)
	}
}

func toBuffer(pixels js.Value, w, h int) (*buffer.Buffer, error) {
	pix := make([]uint8, pixels.Length())
	js.CopyBytesToGo(pix, pixels)
	return buffer.FromPix(w, h, pix)
}

func fromBuffer(b *buffer.Buffer) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b.Pix))
	js.CopyBytesToJS(arr, b.Pix)
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
