package cutout

import (
	"image"
	"image/color"
)

// solidImage creates an NRGBA image filled with c.
func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// fillRect paints r onto img with c.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// alphaWithRects returns a grid with each rectangle set to 255.
func alphaWithRects(w, h int, rects ...image.Rectangle) *Alpha {
	a := NewAlpha(w, h)
	for _, r := range rects {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				setCell(a, x, y, 255)
			}
		}
	}
	return a
}

// rowImage lays colors out left to right in a single-row image.
func rowImage(colors []color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		img.SetNRGBA(x, 0, c)
	}
	return img
}

func cell(a *Alpha, x, y int) uint8 {
	return a.Pix[y*a.Width+x]
}

func setCell(a *Alpha, x, y int, v uint8) {
	a.Pix[y*a.Width+x] = v
}

func cloneAlpha(a *Alpha) *Alpha {
	pix := make([]uint8, len(a.Pix))
	copy(pix, a.Pix)
	return &Alpha{Width: a.Width, Height: a.Height, Pix: pix}
}
