package model

import (
	"github.com/soocke/snapnote/domain/selection"
)

// Controls fade to this opacity while the selection is being dragged.
const (
	OpacityDragging = 0.1
	OpacityNormal   = 1.0
)

// OverlayState is the view-facing projection of a selection snapshot.
type OverlayState struct {
	Visible         bool
	ButtonEnabled   bool
	ControlsOpacity float64
	Status          string
	Error           string
}

// DeriveOverlay maps a session snapshot to what the overlay should show.
// The capture button is enabled only with a non-empty note and no capture
// in flight.
func DeriveOverlay(s selection.Snapshot) OverlayState {
	st := OverlayState{ControlsOpacity: OpacityNormal}
	if s.Phase != selection.PhaseSelecting {
		st.Status = "Idle"
		return st
	}
	st.Visible = true
	st.ButtonEnabled = s.Note != "" && !s.Capturing
	switch {
	case s.Capturing:
		st.Status = "Capturing..."
	case s.Dragging:
		st.Status = "Moving selection"
		st.ControlsOpacity = OpacityDragging
	default:
		st.Status = "Selecting " + s.Rect.String()
	}
	if s.Err != nil {
		st.Error = "Capture failed: " + s.Err.Error()
	}
	return st
}
