package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/soocke/snapnote/domain/geometry"
)

// Session is the region-selection state machine. It exclusively owns the
// selection rectangle and note; all mutation goes through its methods.
// Methods are safe to call from any goroutine. Submit blocks for the
// duration of the capture.
type Session struct {
	mu        sync.Mutex
	logger    *slog.Logger
	opts      Options
	phase     Phase
	rect      geometry.Rect
	note      string
	dragging  bool
	capturing bool
	lastErr   error
	gen       uint64 // bumped on every exit from Selecting; stale captures compare against it
	cancel    context.CancelFunc
	closed    bool
	trigger   Trigger
	listeners []Listener
}

// New constructs an idle session.
func New(logger *slog.Logger, opts Options) (*Session, error) {
	if opts.Host == nil {
		return nil, errors.New("selection: Host is required")
	}
	if opts.Surface == nil {
		return nil, errors.New("selection: Surface is required")
	}
	if opts.Initial.Width == "" || opts.Initial.Height == "" {
		opts.Initial = DefaultInitialRect()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{logger: logger, opts: opts}, nil
}

// AttachTrigger binds the single clickable control that toggles the session.
func (s *Session) AttachTrigger(triggers ...Trigger) error {
	if len(triggers) != 1 || triggers[0] == nil {
		return fmt.Errorf("%w: got %d", ErrInvalidTrigger, len(triggers))
	}
	s.mu.Lock()
	if s.trigger != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: trigger already attached", ErrInvalidTrigger)
	}
	s.trigger = triggers[0]
	s.mu.Unlock()
	triggers[0].OnClick(s.Toggle)
	return nil
}

// AddListener registers l for state changes.
func (s *Session) AddListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:     s.phase,
		Rect:      s.rect,
		Note:      s.note,
		Dragging:  s.dragging,
		Capturing: s.capturing,
		Err:       s.lastErr,
	}
}

// update runs fn under the lock and notifies listeners if it reports a change.
func (s *Session) update(fn func() bool) {
	s.mu.Lock()
	prev := s.snapshotLocked()
	if !fn() {
		s.mu.Unlock()
		return
	}
	next := s.snapshotLocked()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	s.notify(listeners, prev, next)
}

func (s *Session) notify(listeners []Listener, prev, next Snapshot) {
	if s.logger != nil && prev.Phase != next.Phase {
		s.logger.Debug("selection state transition", "from", prev.Phase.String(), "to", next.Phase.String())
	}
	for _, l := range listeners {
		l(prev, next)
	}
}

// editable reports whether rectangle and note events apply.
func (s *Session) editable() bool {
	return !s.closed && s.phase == PhaseSelecting && !s.capturing
}

// Toggle flips between Idle and Selecting. Entering Selecting resets the
// rectangle and clears the note; leaving it discards all state and cancels
// an in-flight capture.
func (s *Session) Toggle() {
	s.update(func() bool {
		if s.closed {
			return false
		}
		if s.phase == PhaseSelecting {
			s.enterIdleLocked()
		} else {
			s.enterSelectingLocked()
		}
		return true
	})
}

func (s *Session) enterSelectingLocked() {
	s.phase = PhaseSelecting
	s.rect = s.initialRectLocked()
	s.note = ""
	s.dragging = false
	s.capturing = false
	s.lastErr = nil
}

func (s *Session) enterIdleLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.phase = PhaseIdle
	s.rect = geometry.Rect{}
	s.note = ""
	s.dragging = false
	s.capturing = false
	s.lastErr = nil
}

// initialRectLocked computes the starting rectangle from the viewport as it
// is now, so window changes between activations are respected.
func (s *Session) initialRectLocked() geometry.Rect {
	init := s.opts.Initial
	vp := s.opts.Host.Viewport()
	r := geometry.Rect{X: init.X, Y: init.Y, Width: init.Width, Height: init.Height}
	if init.Centered {
		c, err := geometry.Centered(vp, init.Width, init.Height)
		if err != nil {
			if s.logger != nil {
				s.logger.Error("initial rectangle", "error", err)
			}
			def := DefaultInitialRect()
			c, _ = geometry.Centered(vp, def.Width, def.Height)
		}
		r = c
	}
	resolved, err := r.Resolve(vp)
	if err != nil {
		return r
	}
	clamped := geometry.Clamp(resolved, vp.Bounds())
	if clamped.Min != resolved.Min {
		r.X, r.Y = float64(clamped.Min.X), float64(clamped.Min.Y)
	}
	if clamped.Dx() != resolved.Dx() {
		r.Width = geometry.Px(clamped.Dx())
	}
	if clamped.Dy() != resolved.Dy() {
		r.Height = geometry.Px(clamped.Dy())
	}
	return r
}

// OnDragMove marks the rectangle as being dragged unless the pointer went
// down on the note input, which sits inside the draggable area.
func (s *Session) OnDragMove(target TargetID) {
	s.update(func() bool {
		if !s.editable() || target == TargetNoteInput || s.dragging {
			return false
		}
		s.dragging = true
		return true
	})
}

// OnDragEnd records the final position reported by the drag backend.
func (s *Session) OnDragEnd(x, y float64) {
	s.update(func() bool {
		if !s.editable() {
			return false
		}
		s.dragging = false
		s.rect.X, s.rect.Y = x, y
		s.lastErr = nil
		return true
	})
}

// OnResizeEnd replaces the rectangle with the post-resize geometry. The
// minimum size is enforced by the resize backend and not re-checked here.
func (s *Session) OnResizeEnd(width, height geometry.Dimension, x, y float64) {
	s.update(func() bool {
		if !s.editable() {
			return false
		}
		s.dragging = false
		s.rect = geometry.Rect{X: x, Y: y, Width: width, Height: height}
		s.lastErr = nil
		return true
	})
}

// OnNoteChange replaces the note text.
func (s *Session) OnNoteChange(text string) {
	s.update(func() bool {
		if !s.editable() || text == s.note {
			return false
		}
		s.note = text
		s.lastErr = nil
		return true
	})
}

// OnKey reports whether the note editor must swallow key. Enter neither
// inserts a newline nor submits.
func (s *Session) OnKey(key string) bool {
	switch key {
	case "Return", "KP_Enter", "Enter":
		return true
	}
	return false
}

// Submit captures the selected region. It is a silent no-op (nil, nil)
// when idle or when the note is empty. On success the consumer callback
// runs exactly once and the session returns to Idle. On failure the
// session stays in Selecting with Snapshot.Err set and the overlay shown.
func (s *Session) Submit(ctx context.Context) (*CaptureResult, error) {
	s.mu.Lock()
	if s.closed || s.phase != PhaseSelecting || s.note == "" {
		s.mu.Unlock()
		return nil, nil
	}
	if s.capturing {
		s.mu.Unlock()
		return nil, ErrCaptureInFlight
	}
	prev := s.snapshotLocked()
	s.capturing = true
	s.dragging = false
	s.lastErr = nil
	gen := s.gen
	rect, note := s.rect, s.note
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	next := s.snapshotLocked()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	s.notify(listeners, prev, next)
	defer cancel()

	res, err := s.capture(jobCtx, rect, note)
	return s.finish(gen, res, err)
}

func (s *Session) capture(ctx context.Context, rect geometry.Rect, note string) (*CaptureResult, error) {
	host := s.opts.Host
	if err := host.HideOverlay(ctx); err != nil {
		return nil, fmt.Errorf("hide overlay: %w", err)
	}
	if d := s.opts.SettleDelay; d > 0 {
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	region, err := geometry.ToRasterRect(rect, host.Scroll(), host.Viewport())
	if err != nil {
		return nil, fmt.Errorf("resolve region: %w", err)
	}
	img, err := s.opts.Surface.Render(ctx)
	if err != nil {
		return nil, fmt.Errorf("render surface: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	enc, err := s.opts.Cropper.CropEncode(img, region)
	if err != nil {
		return nil, fmt.Errorf("crop: %w", err)
	}
	return &CaptureResult{
		Image:    enc,
		Feedback: note,
		Date:     s.opts.Now(),
		Path:     host.Path(),
		Region:   region,
	}, nil
}

func (s *Session) finish(gen uint64, res *CaptureResult, err error) (*CaptureResult, error) {
	s.mu.Lock()
	if s.closed || s.gen != gen {
		s.mu.Unlock()
		if s.logger != nil {
			s.logger.Info("capture discarded", "reason", "session left selecting")
		}
		return nil, ErrCaptureCancelled
	}
	prev := s.snapshotLocked()
	s.cancel = nil
	s.capturing = false
	if err != nil {
		s.lastErr = err
		next := s.snapshotLocked()
		listeners := append([]Listener(nil), s.listeners...)
		s.mu.Unlock()
		if s.logger != nil {
			s.logger.Error("capture failed", "error", err)
		}
		s.opts.Host.ShowOverlay()
		s.notify(listeners, prev, next)
		return nil, err
	}
	s.enterIdleLocked()
	next := s.snapshotLocked()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	if s.logger != nil {
		s.logger.Info("capture complete", "path", res.Path, "region", res.Region.String(), "feedback_len", len(res.Feedback))
	}
	s.emit(*res)
	s.notify(listeners, prev, next)
	return res, nil
}

func (s *Session) emit(res CaptureResult) {
	if s.opts.OnCapture == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil && s.logger != nil {
			s.logger.Error("capture consumer panic", "error", r)
		}
	}()
	s.opts.OnCapture(res)
}

// Close cancels any in-flight capture and turns later events into no-ops.
func (s *Session) Close() {
	s.update(func() bool {
		if s.closed {
			return false
		}
		s.enterIdleLocked()
		s.closed = true
		return true
	})
}
