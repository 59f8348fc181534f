package model

import (
	"image"
	"testing"
)

func newTracker() *WindowTracker {
	return &WindowTracker{Grid: 20, MinW: 100, MinH: 100, Bounds: image.Rect(0, 0, 1280, 720), SettleTicks: 2}
}

func TestWindowTracker_DragSnapsToGrid(t *testing.T) {
	tr := newTracker()
	start := image.Rect(540, 260, 740, 460)
	tr.Observe(start)

	ev, _, _ := tr.Observe(start.Add(image.Pt(10, 0)))
	if len(ev) != 1 || ev[0].Kind != WindowDragStart {
		t.Fatalf("expected drag start, got %v", ev)
	}
	moved := start.Add(image.Pt(33, -9))
	if ev, _, _ := tr.Observe(moved); len(ev) != 0 {
		t.Fatalf("continued movement should not emit, got %v", ev)
	}
	tr.Observe(moved)
	ev, corrected, fix := tr.Observe(moved)
	if len(ev) != 1 || ev[0].Kind != WindowDragEnd {
		t.Fatalf("expected drag end after settling, got %v", ev)
	}
	want := image.Rect(580, 260, 780, 460)
	if ev[0].Rect != want || !fix || corrected != want {
		t.Fatalf("expected snapped %v, got %v fix=%v", want, ev[0].Rect, fix)
	}
	if ev, _, _ := tr.Observe(want); len(ev) != 0 {
		t.Fatalf("applying the correction must not start a new drag")
	}
}

func TestWindowTracker_ResizeEnforcesMinimum(t *testing.T) {
	tr := newTracker()
	tr.Observe(image.Rect(100, 100, 300, 300))
	small := image.Rect(100, 100, 160, 300)
	tr.Observe(small)
	tr.Observe(small)
	ev, corrected, fix := tr.Observe(small)
	if len(ev) != 1 || ev[0].Kind != WindowResizeEnd {
		t.Fatalf("expected resize end, got %v", ev)
	}
	if corrected.Dx() != 100 || corrected.Dy() != 200 || !fix {
		t.Fatalf("expected width raised to 100, got %v", corrected)
	}
}

func TestWindowTracker_ClampsToBounds(t *testing.T) {
	tr := newTracker()
	tr.Grid = 0
	tr.Observe(image.Rect(0, 0, 200, 200))
	off := image.Rect(1200, -40, 1400, 160)
	tr.Observe(off)
	tr.Observe(off)
	ev, corrected, _ := tr.Observe(off)
	if len(ev) != 1 {
		t.Fatalf("expected drag end, got %v", ev)
	}
	if corrected != image.Rect(1080, 0, 1280, 200) {
		t.Fatalf("expected clamp inside bounds, got %v", corrected)
	}
}

func TestWindowTracker_StableGeometryIsQuiet(t *testing.T) {
	tr := newTracker()
	r := image.Rect(0, 0, 200, 200)
	for i := 0; i < 5; i++ {
		if ev, _, fix := tr.Observe(r); len(ev) != 0 || fix {
			t.Fatalf("tick %d: unexpected events %v", i, ev)
		}
	}
	if tr.Busy() {
		t.Fatalf("tracker should be idle")
	}
}

func TestWindowTracker_Constrain(t *testing.T) {
	tr := newTracker()
	got := tr.Constrain(image.Rect(-10, 700, 40, 760))
	if got != image.Rect(0, 620, 100, 720) {
		t.Fatalf("unexpected constrained rect %v", got)
	}
}

func TestWindowTracker_OpenReportsCorrection(t *testing.T) {
	tr := newTracker()
	requested := image.Rect(615, 340, 665, 380)
	placed, changed := tr.Open(requested)
	if !changed || placed != image.Rect(615, 340, 715, 440) {
		t.Fatalf("undersized rect must be raised to the minimum and reported, got %v changed=%v", placed, changed)
	}
	if ev, _, _ := tr.Observe(placed); len(ev) != 0 {
		t.Fatalf("opened geometry must count as settled, got %v", ev)
	}

	ok := image.Rect(540, 260, 740, 460)
	if placed, changed := tr.Open(ok); changed || placed != ok {
		t.Fatalf("valid rect must be kept as is, got %v changed=%v", placed, changed)
	}
}
