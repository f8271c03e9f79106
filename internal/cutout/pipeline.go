package cutout

import (
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/mask-cutout/internal/imageio"
)

// Timings records how long each pipeline stage took.
type Timings struct {
	Align     time.Duration `json:"align"`
	Classify  time.Duration `json:"classify"`
	Clean     time.Duration `json:"clean"`
	Composite time.Duration `json:"composite"`
	Crop      time.Duration `json:"crop"`
	Total     time.Duration `json:"total"`
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Image is the cutout: the original with the derived alpha, cropped to
	// Bounds when any pixel was kept.
	Image *image.NRGBA

	// Width and Height are the aligned (uncropped) dimensions.
	Width  int
	Height int

	// Bounds is the bounding box of kept pixels in aligned coordinates.
	// It is the zero rectangle when Cropped is false.
	Bounds image.Rectangle

	// Cropped is false when no pixel was kept and Image is the full frame.
	Cropped bool

	// Kept is the number of opaque pixels after cleanup.
	Kept int

	Strategy string
	Timings  Timings
}

// Run executes align, classify, clean, composite and crop on decoded images.
func Run(original, mask image.Image, opts Options) (*Result, error) {
	if opts.Strategy == nil {
		return nil, fmt.Errorf("%w: no strategy selected", ErrConfig)
	}
	start := time.Now()
	var t Timings

	stage := time.Now()
	aligned, err := Align(original, mask, opts.Resample)
	if err != nil {
		return nil, err
	}
	orig := toNRGBA(original)
	t.Align = time.Since(stage)

	stage = time.Now()
	alpha := opts.Strategy.Classify(orig, aligned)
	t.Classify = time.Since(stage)

	stage = time.Now()
	alpha = opts.Strategy.Clean(alpha)
	t.Clean = time.Since(stage)

	stage = time.Now()
	composite, err := Composite(orig, alpha)
	if err != nil {
		return nil, err
	}
	t.Composite = time.Since(stage)

	stage = time.Now()
	cropped, box, ok := CropToContent(composite)
	t.Crop = time.Since(stage)
	t.Total = time.Since(start)

	return &Result{
		Image:    cropped,
		Width:    alpha.Width,
		Height:   alpha.Height,
		Bounds:   box,
		Cropped:  ok,
		Kept:     alpha.Count(),
		Strategy: opts.Strategy.Name(),
		Timings:  t,
	}, nil
}

// Cut decodes both buffers, runs the pipeline and encodes the cutout as PNG.
//
// Decoding failures carry ErrDecode. Encoding failures are returned as they
// come from the codec.
func Cut(originalData, maskData []byte, opts Options) ([]byte, *Result, error) {
	original, mask, err := DecodePair(originalData, maskData)
	if err != nil {
		return nil, nil, err
	}

	res, err := Run(original, mask, opts)
	if err != nil {
		return nil, nil, err
	}

	out, err := imageio.EncodePNG(res.Image)
	if err != nil {
		return nil, nil, err
	}
	return out, res, nil
}

// DecodePair decodes the original and the mask, tagging failures with
// ErrDecode.
func DecodePair(originalData, maskData []byte) (original, mask image.Image, err error) {
	original, err = imageio.Decode(originalData)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: original: %w", ErrDecode, err)
	}
	mask, err = imageio.Decode(maskData)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: mask: %w", ErrDecode, err)
	}
	return original, mask, nil
}
