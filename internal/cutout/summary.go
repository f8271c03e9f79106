package cutout

import (
	"fmt"
	"image"

	"github.com/ironsheep/mask-cutout/internal/imageio"
)

// Summary describes what a strategy would keep, without building a cutout.
type Summary struct {
	Strategy string `json:"strategy"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`

	// Kept is the number of pixels that survive classification and cleanup.
	Kept int `json:"kept"`

	// Coverage is Kept as a percentage of Width*Height (0-100).
	Coverage float64 `json:"coverage"`

	// Bounds is the bounding box of kept pixels, nil when nothing is kept.
	Bounds *Box `json:"bounds,omitempty"`

	// KeyColor is the mean mask colour over kept pixels, nil when nothing is
	// kept.
	KeyColor *imageio.ColorResult `json:"key_color,omitempty"`
}

// Box is a JSON-friendly rectangle. X2 and Y2 are exclusive.
type Box struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// NewBox converts r to a Box.
func NewBox(r image.Rectangle) *Box {
	return &Box{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// Summarize runs align, classify and clean, then reports coverage and the
// average mask colour of the kept area. It is meant for tuning thresholds.
func Summarize(original, mask image.Image, opts Options) (*Summary, error) {
	if opts.Strategy == nil {
		return nil, fmt.Errorf("%w: no strategy selected", ErrConfig)
	}
	aligned, err := Align(original, mask, opts.Resample)
	if err != nil {
		return nil, err
	}
	orig := toNRGBA(original)
	alpha := opts.Strategy.Clean(opts.Strategy.Classify(orig, aligned))

	s := &Summary{
		Strategy: opts.Strategy.Name(),
		Width:    alpha.Width,
		Height:   alpha.Height,
	}

	var sumR, sumG, sumB int
	minX, minY, maxX, maxY := alpha.Width, alpha.Height, -1, -1
	for y := 0; y < alpha.Height; y++ {
		row := alpha.Row(y)
		px := aligned.Pix[y*aligned.Stride:]
		for x, v := range row {
			if v == 0 {
				continue
			}
			s.Kept++
			sumR += int(px[x*4])
			sumG += int(px[x*4+1])
			sumB += int(px[x*4+2])
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	if s.Kept == 0 {
		return s, nil
	}
	s.Coverage = float64(s.Kept) / float64(alpha.Width*alpha.Height) * 100
	s.Bounds = &Box{X1: minX, Y1: minY, X2: maxX + 1, Y2: maxY + 1}
	c := imageio.DescribeColor(
		uint8(sumR/s.Kept),
		uint8(sumG/s.Kept),
		uint8(sumB/s.Kept),
	)
	s.KeyColor = &c
	return s, nil
}
