package cutout

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// Strategy names accepted in Settings.
const (
	StrategyThreshold = "threshold"
	StrategyDiffBlue  = "diff_blue"
)

// Strategy decides per pixel whether the original is kept.
//
// Classify reads the aligned mask (and, for some strategies, the original)
// and returns a fresh alpha grid of the same size. Clean is the strategy's
// post-filter; it must not modify its argument.
type Strategy interface {
	Name() string
	Validate() error
	Classify(original, mask *image.NRGBA) *Alpha
	Clean(a *Alpha) *Alpha
}

// Threshold keeps a pixel when the mask is red there:
//
//	r > Red && g < Green && b < Blue
//
// The original's pixel values play no role.
type Threshold struct {
	Red   int
	Green int
	Blue  int
}

// DefaultThreshold returns the stock red-mask thresholds (150, 100, 100).
func DefaultThreshold() Threshold {
	return Threshold{Red: 150, Green: 100, Blue: 100}
}

// Name returns "threshold".
func (t Threshold) Name() string { return StrategyThreshold }

// Validate requires every threshold in [0,255].
func (t Threshold) Validate() error {
	for _, c := range []struct {
		name string
		v    int
	}{
		{"red_thresh", t.Red},
		{"green_thresh", t.Green},
		{"blue_thresh", t.Blue},
	} {
		if c.v < 0 || c.v > 255 {
			return fmt.Errorf("%w: %s %d outside [0,255]", ErrConfig, c.name, c.v)
		}
	}
	return nil
}

// Classify ignores original.
func (t Threshold) Classify(_, mask *image.NRGBA) *Alpha {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	out := NewAlpha(w, h)
	red, green, blue := uint8(t.Red), uint8(t.Green), uint8(t.Blue)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			src := mask.Pix[y*mask.Stride : y*mask.Stride+w*4]
			dst := out.Row(y)
			for x := 0; x < w; x++ {
				r, g, b := src[x*4], src[x*4+1], src[x*4+2]
				if r > red && g < green && b < blue {
					dst[x] = 255
				}
			}
		}
	})
	return out
}

// Clean is the identity: thin strokes are tolerated by this strategy.
func (t Threshold) Clean(a *Alpha) *Alpha { return a }

// DiffBlue keeps a pixel when the mask differs from the original by more than
// DiffThresh (sum of absolute channel differences) and the mask's blue channel
// strictly exceeds both red and green. The result is opened with a square
// kernel of KernelSize to drop thin strokes.
type DiffBlue struct {
	DiffThresh int
	KernelSize int
}

// DefaultDiffBlue returns the stock change-detection settings (30, 17).
func DefaultDiffBlue() DiffBlue {
	return DiffBlue{DiffThresh: 30, KernelSize: 17}
}

// Name returns "diff_blue".
func (d DiffBlue) Name() string { return StrategyDiffBlue }

// Validate checks DiffThresh against [0,765] and requires an odd, positive
// KernelSize.
func (d DiffBlue) Validate() error {
	if d.DiffThresh < 0 || d.DiffThresh > 3*255 {
		return fmt.Errorf("%w: diff_thresh %d outside [0,765]", ErrConfig, d.DiffThresh)
	}
	return validateKernel(d.KernelSize)
}

// Classify compares mask with original pixel by pixel.
func (d DiffBlue) Classify(original, mask *image.NRGBA) *Alpha {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	out := NewAlpha(w, h)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			o := original.Pix[y*original.Stride : y*original.Stride+w*4]
			m := mask.Pix[y*mask.Stride : y*mask.Stride+w*4]
			dst := out.Row(y)
			for x := 0; x < w; x++ {
				i := x * 4
				diff := absDiff(o[i], m[i]) + absDiff(o[i+1], m[i+1]) + absDiff(o[i+2], m[i+2])
				changed := int(diff) > d.DiffThresh
				blue := m[i+2] > m[i] && m[i+2] > m[i+1]
				if changed && blue {
					dst[x] = 255
				}
			}
		}
	})
	return out
}

// Clean opens a with a KernelSize square.
func (d DiffBlue) Clean(a *Alpha) *Alpha {
	return Open(a, d.KernelSize)
}

// absDiff widens to int16 so the subtraction cannot wrap.
func absDiff(a, b uint8) int16 {
	d := int16(a) - int16(b)
	if d < 0 {
		return -d
	}
	return d
}

func validateKernel(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: kernel_size %d must be positive", ErrConfig, size)
	}
	if size%2 == 0 {
		return fmt.Errorf("%w: kernel_size %d must be odd", ErrConfig, size)
	}
	return nil
}
