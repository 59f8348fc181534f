package presenter

import (
	"sync"
	"time"

	"github.com/soocke/snapnote/domain/geometry"
	"github.com/soocke/snapnote/domain/selection"
	"github.com/soocke/snapnote/ui/model"
)

// OverlayView opens, closes and refreshes the selection overlay.
type OverlayView interface {
	OpenOverlay(r geometry.Rect)
	CloseOverlay()
	ApplyOverlay(st model.OverlayState)
	SetStateLabel(string)
}

// SelectionPresenter receives session state changes and reflects the most
// recent one on the next Tick. Changes may arrive from any goroutine.
type SelectionPresenter struct {
	view    OverlayView
	mu      sync.Mutex
	pending []selection.Snapshot
	latest  selection.Snapshot
	applied model.OverlayState
	primed  bool
}

func NewSelectionPresenter(view OverlayView) *SelectionPresenter {
	return &SelectionPresenter{view: view}
}

// OnState queues a snapshot; it matches selection.Listener.
func (p *SelectionPresenter) OnState(prev, next selection.Snapshot) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, next)
	p.mu.Unlock()
}

// Tick processes queued snapshots and updates the view. Only phase edges
// open or close the overlay; intermediate snapshots are collapsed.
func (p *SelectionPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	pending := p.pending
	p.pending = nil
	p.mu.Unlock()
	if len(pending) == 0 {
		return
	}
	for _, s := range pending {
		if s.Phase != p.latest.Phase {
			if s.Phase == selection.PhaseSelecting {
				p.view.OpenOverlay(s.Rect)
			} else {
				p.view.CloseOverlay()
			}
			p.view.SetStateLabel("State: " + s.Phase.String())
		}
		p.latest = s
	}
	st := model.DeriveOverlay(p.latest)
	if !p.primed || st != p.applied {
		p.primed = true
		p.applied = st
		p.view.ApplyOverlay(st)
	}
}
