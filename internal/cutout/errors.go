package cutout

import "errors"

var (
	// ErrDecode reports input bytes that are not a valid image.
	ErrDecode = errors.New("decode error")

	// ErrDimension reports images that cannot be aligned or combined,
	// such as zero-area inputs or grids of mismatched size.
	ErrDimension = errors.New("dimension error")

	// ErrConfig reports invalid settings: thresholds outside the channel
	// range, a non-positive or even kernel, or an unknown name.
	ErrConfig = errors.New("config error")
)
