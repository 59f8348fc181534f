package presenter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/soocke/snapnote/domain/selection"
	"github.com/soocke/snapnote/ui/model"
)

// Submitter is the part of the selection session the presenter drives.
type Submitter interface {
	Submit(ctx context.Context) (*selection.CaptureResult, error)
}

// CaptureView shows capture outcomes.
type CaptureView interface {
	UpdateCapture(img image.Image)
	PreviewReset()
	SetError(msg string)
}

type captureOutcome struct {
	res *selection.CaptureResult
	err error
}

// CapturePresenter runs captures off the UI goroutine and hands outcomes
// back to the view on Tick.
type CapturePresenter struct {
	ctx     context.Context
	session Submitter
	model   *model.CaptureModel
	view    CaptureView
	logger  *slog.Logger
	results chan captureOutcome
	wg      sync.WaitGroup
}

func NewCapturePresenter(ctx context.Context, session Submitter, m *model.CaptureModel, view CaptureView, logger *slog.Logger) *CapturePresenter {
	return &CapturePresenter{ctx: ctx, session: session, model: m, view: view, logger: logger, results: make(chan captureOutcome, 4)}
}

// Submit starts a capture in the background. It returns immediately.
func (c *CapturePresenter) Submit() {
	if c == nil || c.session == nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				if c.logger != nil {
					c.logger.Error("capture goroutine panic", "error", r)
				}
				c.push(captureOutcome{err: fmt.Errorf("capture panic: %v", r)})
			}
		}()
		res, err := c.session.Submit(c.ctx)
		if res == nil && err == nil {
			return // nothing to submit
		}
		c.push(captureOutcome{res: res, err: err})
	}()
}

func (c *CapturePresenter) push(o captureOutcome) {
	select {
	case c.results <- o:
	default:
		if c.logger != nil {
			c.logger.Warn("capture outcome dropped", "reason", "queue full")
		}
	}
}

// Wait blocks until background captures have returned.
func (c *CapturePresenter) Wait() {
	if c != nil {
		c.wg.Wait()
	}
}

// Tick drains finished captures into the model and view.
func (c *CapturePresenter) Tick() {
	if c == nil {
		return
	}
	for {
		select {
		case o := <-c.results:
			c.apply(o)
		default:
			return
		}
	}
}

func (c *CapturePresenter) apply(o captureOutcome) {
	if o.err != nil {
		if errors.Is(o.err, selection.ErrCaptureCancelled) || errors.Is(o.err, context.Canceled) {
			return
		}
		if c.view != nil {
			c.view.SetError(o.err.Error())
		}
		return
	}
	if c.model != nil {
		c.model.Record(*o.res)
	}
	if c.view == nil {
		return
	}
	c.view.SetError("")
	img, err := o.res.Image.Decode()
	if err != nil {
		if c.logger != nil {
			c.logger.Error("decode capture preview", "error", err)
		}
		c.view.PreviewReset()
		return
	}
	c.view.UpdateCapture(img)
}
