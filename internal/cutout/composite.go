package cutout

import (
	"fmt"
	"image"
)

// Composite returns a copy of original whose alpha channel is taken from a.
// Red, green and blue are copied unchanged; nothing is blended or
// premultiplied.
func Composite(original *image.NRGBA, a *Alpha) (*image.NRGBA, error) {
	w, h := original.Rect.Dx(), original.Rect.Dy()
	if a.Width != w || a.Height != h {
		return nil, fmt.Errorf("%w: alpha %dx%d does not match image %dx%d",
			ErrDimension, a.Width, a.Height, w, h)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := original.Pix[y*original.Stride : y*original.Stride+w*4]
		dst := out.Pix[y*out.Stride : y*out.Stride+w*4]
		alpha := a.Row(y)
		for x := 0; x < w; x++ {
			i := x * 4
			dst[i] = src[i]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+2]
			dst[i+3] = alpha[x]
		}
	}
	return out, nil
}
