package presenter

import (
	"time"

	"github.com/soocke/snapnote/domain/selection"
	"github.com/soocke/snapnote/ui/model"
)

// PhaseSource reports the current session phase.
type PhaseSource interface{ Phase() selection.Phase }

// SessionView displays selection durations, the number of selection
// sessions and the capture count.
type SessionView interface {
	SetSession(session, total time.Duration, sessions, captures int)
}

// SessionPresenter formats session and total selecting time from the model to the view.
type SessionPresenter struct {
	sess     *model.SessionModel
	captures *model.CaptureModel
	phase    PhaseSource
	view     SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, captures *model.CaptureModel, phase PhaseSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, captures: captures, phase: phase, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.phase == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.phase.Phase() == selection.PhaseSelecting, now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t, p.sess.Sessions(), p.captures.Count())
}
