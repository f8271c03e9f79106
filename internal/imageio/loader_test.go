package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// testImage creates a small image with a distinct colour per quadrant.
func testImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			switch {
			case x < width/2 && y < height/2:
				c = color.NRGBA{255, 0, 0, 255}
			case x >= width/2 && y < height/2:
				c = color.NRGBA{0, 255, 0, 255}
			case x < width/2:
				c = color.NRGBA{0, 0, 255, 255}
			default:
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDecode_Formats(t *testing.T) {
	img := testImage(16, 12)

	var pngBuf, jpegBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	if err := jpeg.Encode(&jpegBuf, img, nil); err != nil {
		t.Fatalf("jpeg encode: %v", err)
	}
	if err := bmp.Encode(&bmpBuf, img); err != nil {
		t.Fatalf("bmp encode: %v", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"png", pngBuf.Bytes()},
		{"jpeg", jpegBuf.Bytes()},
		{"bmp", bmpBuf.Bytes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if b := got.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
				t.Errorf("bounds = %v, want 16x12", b)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("nil data: got %v, want ErrEmpty", err)
	}
	if _, err := Decode([]byte("definitely not an image")); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestEncodePNG_PreservesAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 0})
	img.SetNRGBA(1, 0, color.NRGBA{40, 50, 60, 255})
	img.SetNRGBA(2, 0, color.NRGBA{70, 80, 90, 0})

	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	for x := 0; x < 3; x++ {
		got := color.NRGBAModel.Convert(decoded.At(x, 0)).(color.NRGBA)
		if want := img.NRGBAAt(x, 0); got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestWriteFile_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "out.jpg")

	if err := WriteFile(path, []byte("payload")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("contents = %q", got)
	}

	// Overwrites an existing file.
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile() overwrite error = %v", err)
	}
	if got, _ := os.ReadFile(path); string(got) != "second" {
		t.Errorf("contents after overwrite = %q", got)
	}
}

func TestDimensions(t *testing.T) {
	data, err := EncodePNG(testImage(21, 13))
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	dims, err := Dimensions(data)
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if dims.Width != 21 || dims.Height != 13 || dims.Format != "png" {
		t.Errorf("Dimensions() = %+v", dims)
	}

	if _, err := Dimensions(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("nil data: got %v, want ErrEmpty", err)
	}
	if _, err := Dimensions([]byte("nope")); err == nil {
		t.Error("expected error for garbage header")
	}
}
