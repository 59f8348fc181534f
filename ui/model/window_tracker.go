package model

import (
	"image"
	"math"

	"github.com/soocke/snapnote/domain/geometry"
)

// WindowEventKind classifies a tracker event.
type WindowEventKind int

const (
	WindowDragStart WindowEventKind = iota
	WindowDragEnd
	WindowResizeEnd
)

// WindowEvent is a drag or resize gesture derived from polled geometry.
type WindowEvent struct {
	Kind WindowEventKind
	Rect image.Rectangle
}

// WindowTracker turns successive window geometries into drag and resize
// gestures. A gesture ends once the geometry has been stable for
// SettleTicks observations. On drag end the position is snapped to Grid;
// on resize end the size is raised to the minimum. Both are then kept
// inside Bounds.
type WindowTracker struct {
	Grid        int
	MinW, MinH  int
	Bounds      image.Rectangle
	SettleTicks int

	last     image.Rectangle
	primed   bool
	moving   bool
	resizing bool
	stable   int
}

// Reset forgets any gesture in progress and treats r as the settled geometry.
func (t *WindowTracker) Reset(r image.Rectangle) {
	t.last = r
	t.primed = true
	t.moving, t.resizing = false, false
	t.stable = 0
}

// Busy reports whether a gesture is in progress.
func (t *WindowTracker) Busy() bool { return t.moving || t.resizing }

// Observe feeds the geometry seen this tick. When a gesture ends and its
// final geometry had to be corrected, the corrected rectangle is returned
// with fix set; the caller should move the window there.
func (t *WindowTracker) Observe(r image.Rectangle) (events []WindowEvent, corrected image.Rectangle, fix bool) {
	if !t.primed {
		t.Reset(r)
		return nil, image.Rectangle{}, false
	}
	if r != t.last {
		if r.Size() != t.last.Size() {
			t.resizing = true
		} else if !t.moving && !t.resizing {
			t.moving = true
			events = append(events, WindowEvent{Kind: WindowDragStart, Rect: r})
		}
		t.last = r
		t.stable = 0
		return events, image.Rectangle{}, false
	}
	if !t.Busy() {
		return nil, image.Rectangle{}, false
	}
	t.stable++
	settle := t.SettleTicks
	if settle < 1 {
		settle = 1
	}
	if t.stable < settle {
		return nil, image.Rectangle{}, false
	}

	final := r
	kind := WindowDragEnd
	if t.resizing {
		kind = WindowResizeEnd
		final = t.enforceMin(final)
	} else {
		final = t.snap(final)
	}
	final = geometry.Clamp(final, t.Bounds)
	events = append(events, WindowEvent{Kind: kind, Rect: final})
	t.Reset(final)
	return events, final, final != r
}

// Open constrains r and treats the result as the settled geometry. changed
// reports whether the window ended up elsewhere than r, in which case the
// owner of r must be told.
func (t *WindowTracker) Open(r image.Rectangle) (placed image.Rectangle, changed bool) {
	placed = t.Constrain(r)
	t.Reset(placed)
	return placed, placed != r
}

// Constrain applies the minimum size and bounds to r without snapping.
func (t *WindowTracker) Constrain(r image.Rectangle) image.Rectangle {
	return geometry.Clamp(t.enforceMin(r), t.Bounds)
}

func (t *WindowTracker) enforceMin(r image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()
	if w < t.MinW {
		w = t.MinW
	}
	if h < t.MinH {
		h = t.MinH
	}
	return image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Min.Y+h)
}

func (t *WindowTracker) snap(r image.Rectangle) image.Rectangle {
	if t.Grid <= 0 {
		return r
	}
	x := int(math.Round(geometry.SnapToGrid(float64(r.Min.X), t.Grid)))
	y := int(math.Round(geometry.SnapToGrid(float64(r.Min.Y), t.Grid)))
	return r.Add(image.Pt(x-r.Min.X, y-r.Min.Y))
}
