package cutout

import "github.com/anthonynsimon/bild/parallel"

// Erode applies a size×size minimum filter.
//
// The square window is separable, so the filter runs as a horizontal pass
// followed by a vertical pass. Each pass reads a frozen source and writes a
// new grid. Windows are clamped to the grid (see the package documentation).
// A size of 1 returns a copy of src.
func Erode(src *Alpha, size int) *Alpha {
	return extremal(src, size, minUint8)
}

// Dilate applies a size×size maximum filter with the same boundary policy as
// Erode.
func Dilate(src *Alpha, size int) *Alpha {
	return extremal(src, size, maxUint8)
}

// Open erodes then dilates with the same kernel.
//
// Regions narrower than size along their thinnest axis vanish. Wider regions
// come back to approximately their original extent; axis-aligned rectangles
// come back exactly.
func Open(src *Alpha, size int) *Alpha {
	return Dilate(Erode(src, size), size)
}

func extremal(src *Alpha, size int, pick func(a, b uint8) uint8) *Alpha {
	w, h := src.Width, src.Height
	radius := size / 2

	horizontal := NewAlpha(w, h)
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			in := src.Row(y)
			out := horizontal.Row(y)
			for x := 0; x < w; x++ {
				lo := clamp(x-radius, 0, w-1)
				hi := clamp(x+radius, 0, w-1)
				v := in[lo]
				for k := lo + 1; k <= hi; k++ {
					v = pick(v, in[k])
				}
				out[x] = v
			}
		}
	})

	vertical := NewAlpha(w, h)
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			lo := clamp(y-radius, 0, h-1)
			hi := clamp(y+radius, 0, h-1)
			out := vertical.Row(y)
			copy(out, horizontal.Row(lo))
			for k := lo + 1; k <= hi; k++ {
				in := horizontal.Row(k)
				for x := 0; x < w; x++ {
					out[x] = pick(out[x], in[x])
				}
			}
		}
	})
	return vertical
}

func minUint8(a, b uint8) uint8 {
	if b < a {
		return b
	}
	return a
}

func maxUint8(a, b uint8) uint8 {
	if b > a {
		return b
	}
	return a
}

// clamp constrains val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
