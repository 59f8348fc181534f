package geometry

import (
	"errors"
	"image"
	"testing"
)

func TestResolvePixels_Units(t *testing.T) {
	if got, err := ResolvePixels("200px", 0); err != nil || got != 200 {
		t.Fatalf("200px: got %d err=%v", got, err)
	}
	if got, err := ResolvePixels("120", 0); err != nil || got != 120 {
		t.Fatalf("bare number: got %d err=%v", got, err)
	}
	if got, err := ResolvePixels("200.9px", 0); err != nil || got != 200 {
		t.Fatalf("fractional px should floor: got %d err=%v", got, err)
	}
}

func TestResolvePixels_PercentUsesReferenceAtCallTime(t *testing.T) {
	d := Dimension("50%")
	a, err := ResolvePixels(d, 800)
	if err != nil || a != 400 {
		t.Fatalf("50%% of 800: got %d err=%v", a, err)
	}
	b, err := ResolvePixels(d, 1000)
	if err != nil || b != 500 {
		t.Fatalf("50%% of 1000: got %d err=%v", b, err)
	}
}

func TestResolvePixels_Malformed(t *testing.T) {
	for _, d := range []Dimension{"", "px", "abc", "12em", "NaN", "Inf%"} {
		if _, err := ResolvePixels(d, 100); !errors.Is(err, ErrParse) {
			t.Fatalf("%q: expected ErrParse, got %v", d, err)
		}
	}
}

func TestResolvePixels_RejectsNegative(t *testing.T) {
	for _, d := range []Dimension{"-40px", "-1", "-10%"} {
		if _, err := ResolvePixels(d, 100); !errors.Is(err, ErrParse) {
			t.Fatalf("%q: expected ErrParse, got %v", d, err)
		}
	}
	if got, err := ResolvePixels("0px", 100); err != nil || got != 0 {
		t.Fatalf("zero should parse: got %d err=%v", got, err)
	}
}

func TestToRasterRect_NegativeSizeIsError(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: "-50px", Height: "40px"}
	if got, err := ToRasterRect(r, Scroll{}, Viewport{Width: 800, Height: 600}); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for negative width, got %v err=%v", got, err)
	}
}

func TestPx(t *testing.T) {
	if Px(300) != "300px" {
		t.Fatalf("unexpected %q", Px(300))
	}
}

func TestToRasterRect_AddsVerticalScrollOnly(t *testing.T) {
	r := Rect{X: 40, Y: 25, Width: "300px", Height: "150px"}
	got, err := ToRasterRect(r, Scroll{X: 70, Y: 500}, Viewport{Width: 1280, Height: 720})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := image.Rect(40, 525, 340, 675)
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestToRasterRect_FloorsFractionalOrigin(t *testing.T) {
	r := Rect{X: 10.7, Y: 3.2, Width: "10px", Height: "10px"}
	got, err := ToRasterRect(r, Scroll{Y: 0.9}, Viewport{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Min != (image.Point{X: 10, Y: 4}) {
		t.Fatalf("unexpected origin %v", got.Min)
	}
}

func TestToRasterRect_PropagatesParseError(t *testing.T) {
	r := Rect{Width: "wide", Height: "10px"}
	if _, err := ToRasterRect(r, Scroll{}, Viewport{Width: 10, Height: 10}); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestCentered_DefaultSquare(t *testing.T) {
	r, err := Centered(Viewport{Width: 1280, Height: 720}, "200px", "200px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.X != 540 || r.Y != 260 {
		t.Fatalf("expected (540,260), got (%v,%v)", r.X, r.Y)
	}
}

func TestClamp(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)
	if got := Clamp(image.Rect(90, 95, 120, 125), bounds); got != image.Rect(70, 70, 100, 100) {
		t.Fatalf("expected translate inside, got %v", got)
	}
	if got := Clamp(image.Rect(-10, -5, 20, 25), bounds); got != image.Rect(0, 0, 30, 30) {
		t.Fatalf("expected translate from negative, got %v", got)
	}
	if got := Clamp(image.Rect(10, 10, 250, 40), bounds); got != image.Rect(0, 10, 100, 40) {
		t.Fatalf("expected shrink on oversize axis, got %v", got)
	}
	r := image.Rect(-5, -5, 5, 5)
	if got := Clamp(r, image.Rectangle{}); got != r {
		t.Fatalf("empty bounds should not clamp, got %v", got)
	}
}

func TestSnapToGrid(t *testing.T) {
	if SnapToGrid(29, 20) != 20 || SnapToGrid(31, 20) != 40 {
		t.Fatalf("unexpected snap")
	}
	if SnapToGrid(31, 0) != 31 {
		t.Fatalf("grid 0 should disable snapping")
	}
}
