package cutout

import (
	"image"

	"github.com/disintegration/imaging"
)

// AlphaBounds returns the smallest rectangle holding every pixel with a
// non-zero alpha. Min is inclusive and Max exclusive. ok is false when the
// image is fully transparent.
func AlphaBounds(img *image.NRGBA) (box image.Rectangle, ok bool) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	minX, minY := w, h
	maxX, maxY := -1, -1

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// CropToContent crops img to AlphaBounds. A fully transparent image has
// nothing to crop and is returned unchanged with ok false. A box covering the
// whole image also returns img itself.
func CropToContent(img *image.NRGBA) (cropped *image.NRGBA, box image.Rectangle, ok bool) {
	box, ok = AlphaBounds(img)
	if !ok {
		return img, box, false
	}
	if box == img.Rect {
		return img, box, true
	}
	return imaging.Crop(img, box), box, true
}
