package model

import (
	"errors"
	"testing"

	"github.com/soocke/snapnote/domain/geometry"
	"github.com/soocke/snapnote/domain/selection"
)

func TestDeriveOverlay_Idle(t *testing.T) {
	st := DeriveOverlay(selection.Snapshot{})
	if st.Visible || st.ButtonEnabled || st.ControlsOpacity != OpacityNormal {
		t.Fatalf("idle overlay should be hidden: %+v", st)
	}
}

func TestDeriveOverlay_ButtonNeedsNote(t *testing.T) {
	snap := selection.Snapshot{Phase: selection.PhaseSelecting, Rect: geometry.Rect{Width: "200px", Height: "200px"}}
	if st := DeriveOverlay(snap); !st.Visible || st.ButtonEnabled {
		t.Fatalf("empty note must disable the button: %+v", st)
	}
	snap.Note = "x"
	if st := DeriveOverlay(snap); !st.ButtonEnabled {
		t.Fatalf("non-empty note should enable the button")
	}
	snap.Capturing = true
	if st := DeriveOverlay(snap); st.ButtonEnabled || st.Status != "Capturing..." {
		t.Fatalf("button must be disabled while capturing: %+v", st)
	}
}

func TestDeriveOverlay_DraggingDimsControls(t *testing.T) {
	st := DeriveOverlay(selection.Snapshot{Phase: selection.PhaseSelecting, Dragging: true})
	if st.ControlsOpacity != OpacityDragging {
		t.Fatalf("expected dimmed controls, got %v", st.ControlsOpacity)
	}
}

func TestDeriveOverlay_Error(t *testing.T) {
	st := DeriveOverlay(selection.Snapshot{Phase: selection.PhaseSelecting, Err: errors.New("no display")})
	if st.Error != "Capture failed: no display" {
		t.Fatalf("unexpected error text %q", st.Error)
	}
}
