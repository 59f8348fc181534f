package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFitSize(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{100, 50, 400, 225, 100, 50},
		{800, 400, 400, 225, 400, 200},
		{400, 900, 400, 225, 100, 225},
		{5000, 1, 10, 10, 10, 1},
		{0, 10, 10, 10, 0, 0},
	}
	for _, c := range cases {
		w, h := FitSize(c.w, c.h, c.maxW, c.maxH)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("FitSize(%d,%d,%d,%d) = %d,%d want %d,%d", c.w, c.h, c.maxW, c.maxH, w, h, c.wantW, c.wantH)
		}
	}
}

func TestScaleToFit_KeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	if got := ScaleToFit(src, 100, 100); got != image.Image(src) {
		t.Fatalf("expected original image when it already fits")
	}
	if ScaleToFit(nil, 10, 10) != nil {
		t.Fatalf("expected nil for nil source")
	}
}

func TestScaleToFit_ScalesUniformColour(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 300))
	fill := color.RGBA{R: 10, G: 200, B: 30, A: 255}
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = fill.R, fill.G, fill.B, fill.A
	}
	got := ScaleToFit(src, 300, 300)
	if got.Bounds().Dx() != 300 || got.Bounds().Dy() != 150 {
		t.Fatalf("unexpected scaled bounds %v", got.Bounds())
	}
	r, g, b, a := got.At(150, 75).RGBA()
	if uint8(r>>8) != fill.R || uint8(g>>8) != fill.G || uint8(b>>8) != fill.B || uint8(a>>8) != fill.A {
		t.Fatalf("colour not preserved: %v %v %v %v", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestEncodePNG(t *testing.T) {
	if EncodePNG(nil) != nil {
		t.Fatalf("expected nil for nil image")
	}
	data := EncodePNG(image.NewRGBA(image.Rect(0, 0, 3, 2)))
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}
