package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Selection *SelectionPresenter
	Capture   *CapturePresenter
	Session   *SessionPresenter
	// Before runs first on every tick; the view uses it to poll the overlay.
	Before   func(now time.Time)
	Schedule func()
}

func NewLoop(sel *SelectionPresenter, capture *CapturePresenter, sess *SessionPresenter, schedule func()) *Loop {
	return &Loop{Selection: sel, Capture: capture, Session: sess, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Before != nil {
		l.Before(now)
	}
	// Capture outcomes first so a finished capture and its phase change land together.
	if l.Capture != nil {
		l.Capture.Tick()
	}
	if l.Selection != nil {
		l.Selection.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
