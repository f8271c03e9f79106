package cutout

// Alpha is a single-channel opacity grid stored row-major in Pix.
//
// Cells hold 0 (discarded) or 255 (kept). The grid owns its buffer; filters
// always return a new Alpha and never write into the one they read.
type Alpha struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewAlpha returns a fully transparent grid of the given size.
func NewAlpha(width, height int) *Alpha {
	return &Alpha{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Row returns the cells of row y. The slice aliases Pix.
func (a *Alpha) Row(y int) []uint8 {
	return a.Pix[y*a.Width : (y+1)*a.Width]
}

// Count returns the number of non-zero cells.
func (a *Alpha) Count() int {
	n := 0
	for _, v := range a.Pix {
		if v > 0 {
			n++
		}
	}
	return n
}
