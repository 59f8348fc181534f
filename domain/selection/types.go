package selection

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/soocke/snapnote/domain/capture"
	"github.com/soocke/snapnote/domain/geometry"
)

var (
	// ErrInvalidTrigger is returned when AttachTrigger is not given exactly one trigger.
	ErrInvalidTrigger = errors.New("selection: exactly one trigger element is required")
	// ErrCaptureInFlight is returned by Submit while a previous capture is running.
	ErrCaptureInFlight = errors.New("selection: capture already in progress")
	// ErrCaptureCancelled is returned when the session is toggled off or closed mid-capture.
	ErrCaptureCancelled = errors.New("selection: capture cancelled")
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSelecting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelecting:
		return "selecting"
	default:
		return "unknown"
	}
}

// TargetID identifies the control a pointer drag started on.
type TargetID string

const (
	TargetHandle    TargetID = "capture-section"
	TargetNoteInput TargetID = "feedback-input"
)

// Snapshot is a read-only copy of session state.
type Snapshot struct {
	Phase     Phase
	Rect      geometry.Rect
	Note      string
	Dragging  bool
	Capturing bool
	// Err holds the last capture failure until the next edit or toggle.
	Err error
}

// CaptureResult is emitted once per successful Submit.
type CaptureResult struct {
	Image    capture.EncodedImage `json:"image"`
	Feedback string               `json:"feedback"`
	Date     time.Time            `json:"date"`
	Path     string               `json:"path"`
	Region   image.Rectangle      `json:"region"`
}

// Listener observes state changes. It is called outside the session lock.
type Listener func(prev, next Snapshot)

// Trigger is a clickable control that toggles the session.
type Trigger interface {
	OnClick(func())
}

// Host is the UI the session is bound to.
type Host interface {
	Viewport() geometry.Viewport
	Scroll() geometry.Scroll
	// Path names the context the capture was taken in (page path, window).
	Path() string
	// HideOverlay returns once the selection overlay no longer paints.
	HideOverlay(ctx context.Context) error
	ShowOverlay()
}

// InitialRect configures the rectangle a session starts with.
type InitialRect struct {
	Width  geometry.Dimension
	Height geometry.Dimension
	// Centered recomputes the origin from the viewport on every activation.
	Centered bool
	X, Y     float64
}

// DefaultInitialRect is a 200x200 square centred in the viewport.
func DefaultInitialRect() InitialRect {
	return InitialRect{Width: "200px", Height: "200px", Centered: true}
}

// Options configures a Session. Host and Surface are required.
type Options struct {
	Initial     InitialRect
	Host        Host
	Surface     capture.Surface
	OnCapture   func(CaptureResult)
	Cropper     capture.Cropper
	SettleDelay time.Duration
	Now         func() time.Time
}
