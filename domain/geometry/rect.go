package geometry

import (
	"fmt"
	"image"
	"math"
)

// Viewport is the visible extent of the surface in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Bounds returns the viewport as a rectangle anchored at the origin.
func (v Viewport) Bounds() image.Rectangle { return image.Rect(0, 0, v.Width, v.Height) }

// Scroll is the scroll offset of the surface relative to its raster origin.
type Scroll struct {
	X float64
	Y float64
}

// Rect is an on-screen rectangle: viewport-relative origin plus unit-bearing size.
type Rect struct {
	X      float64
	Y      float64
	Width  Dimension
	Height Dimension
}

func (r Rect) String() string {
	return fmt.Sprintf("%s x %s @ (%.1f,%.1f)", r.Width, r.Height, r.X, r.Y)
}

// Resolve converts r to integer viewport coordinates. Origins are floored;
// percentages are taken of the viewport extent on the matching axis.
func (r Rect) Resolve(vp Viewport) (image.Rectangle, error) {
	w, err := ResolvePixels(r.Width, vp.Width)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("width: %w", err)
	}
	h, err := ResolvePixels(r.Height, vp.Height)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("height: %w", err)
	}
	x := int(math.Floor(r.X))
	y := int(math.Floor(r.Y))
	return image.Rect(x, y, x+w, y+h), nil
}

// Centered returns a rectangle of the given size centred in vp. The size is
// resolved now so the origin reflects the viewport at call time.
func Centered(vp Viewport, width, height Dimension) (Rect, error) {
	w, err := ResolvePixels(width, vp.Width)
	if err != nil {
		return Rect{}, err
	}
	h, err := ResolvePixels(height, vp.Height)
	if err != nil {
		return Rect{}, err
	}
	return Rect{
		X:      float64(vp.Width)/2 - float64(w)/2,
		Y:      float64(vp.Height)/2 - float64(h)/2,
		Width:  width,
		Height: height,
	}, nil
}

// Clamp moves r so it lies inside bounds. r is shrunk only when it is larger
// than bounds on an axis. An empty bounds leaves r untouched.
func Clamp(r, bounds image.Rectangle) image.Rectangle {
	if bounds.Empty() {
		return r
	}
	w, h := r.Dx(), r.Dy()
	if w > bounds.Dx() {
		w = bounds.Dx()
	}
	if h > bounds.Dy() {
		h = bounds.Dy()
	}
	x, y := r.Min.X, r.Min.Y
	if x+w > bounds.Max.X {
		x = bounds.Max.X - w
	}
	if y+h > bounds.Max.Y {
		y = bounds.Max.Y - h
	}
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	if y < bounds.Min.Y {
		y = bounds.Min.Y
	}
	return image.Rect(x, y, x+w, y+h)
}

// ToRasterRect maps an on-screen rectangle into the coordinate space of a
// full-surface raster capture. Only vertical scroll is compensated; the
// surface is assumed to scroll vertically. Coordinates are floored.
func ToRasterRect(r Rect, scroll Scroll, vp Viewport) (image.Rectangle, error) {
	w, err := ResolvePixels(r.Width, vp.Width)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("width: %w", err)
	}
	h, err := ResolvePixels(r.Height, vp.Height)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("height: %w", err)
	}
	x := int(math.Floor(r.X))
	y := int(math.Floor(r.Y + scroll.Y))
	return image.Rect(x, y, x+w, y+h), nil
}

// SnapToGrid rounds v to the nearest multiple of grid. grid <= 0 disables snapping.
func SnapToGrid(v float64, grid int) float64 {
	if grid <= 0 {
		return v
	}
	g := float64(grid)
	return math.Round(v/g) * g
}
