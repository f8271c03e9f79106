package cutout

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Resample filter names accepted in Settings.
const (
	ResampleLinear  = "linear"
	ResampleNearest = "nearest"
	ResampleBox     = "box"
)

// ParseResample maps a filter name to an imaging filter. Only filters that do
// not overshoot are offered, so resizing never invents colours outside the
// range of their neighbours. An empty name selects bilinear.
func ParseResample(name string) (imaging.ResampleFilter, error) {
	switch strings.ToLower(name) {
	case "", ResampleLinear, "bilinear":
		return imaging.Linear, nil
	case ResampleNearest:
		return imaging.NearestNeighbor, nil
	case ResampleBox:
		return imaging.Box, nil
	default:
		return imaging.ResampleFilter{}, fmt.Errorf("%w: unknown resample filter %q", ErrConfig, name)
	}
}

// Align returns mask with exactly the dimensions of original.
//
// When the sizes already match, no resampling happens: an *image.NRGBA at the
// origin is returned as-is and any other image type is converted losslessly.
// Otherwise the mask is made opaque and then resized with filter, so that
// its alpha never weights the resampled colours.
//
// # Errors
//
//   - ErrDimension if either image has zero area, or if the resized mask does
//     not come out at the original's size.
func Align(original, mask image.Image, filter imaging.ResampleFilter) (*image.NRGBA, error) {
	ob, mb := original.Bounds(), mask.Bounds()
	if ob.Empty() {
		return nil, fmt.Errorf("%w: original has zero area (%dx%d)", ErrDimension, ob.Dx(), ob.Dy())
	}
	if mb.Empty() {
		return nil, fmt.Errorf("%w: mask has zero area (%dx%d)", ErrDimension, mb.Dx(), mb.Dy())
	}

	if ob.Size() == mb.Size() {
		return toNRGBA(mask), nil
	}

	aligned := imaging.Resize(opaque(mask), ob.Dx(), ob.Dy(), filter)
	if aligned.Rect.Size() != ob.Size() {
		return nil, fmt.Errorf("%w: mask resized to %dx%d, want %dx%d",
			ErrDimension, aligned.Rect.Dx(), aligned.Rect.Dy(), ob.Dx(), ob.Dy())
	}
	return aligned, nil
}

// toNRGBA returns img as an *image.NRGBA anchored at (0,0).
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}

// opaque returns a copy of img with every alpha byte set to 255. Colour
// channels are kept as stored.
func opaque(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255
	}
	return out
}
