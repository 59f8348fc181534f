package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/soocke/snapnote/config"
	"github.com/soocke/snapnote/debug"
	"github.com/soocke/snapnote/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	afterID string
}

// NewApp builds the container and configures the root window.
func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, stdout io.Writer) (*app, error) {
	ctx, cancel := context.WithCancel(context.Background())
	c, err := BuildContainer(ctx, cfg, logger, stdout)
	if err != nil {
		cancel()
		return nil, err
	}
	a := &app{c: c, logger: logger, ctx: ctx, cancel: cancel}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a, nil
}

// Start builds the UI, attaches the trigger and runs the Tk event loop
// until the window is closed.
func (a *app) Start() error {
	c := a.c
	theme.InitStyles(c.Config.Dark, c.Styles, a.logger)
	c.RootView.Build(a.exitHandler)
	if err := c.Session.AttachTrigger(c.RootView.Trigger); err != nil {
		return err
	}
	if c.Config.Debug {
		debug.StartGoroutineLogger(a.ctx, 5*time.Second, a.logger)
		debug.StartMemLogger(a.ctx, 10*time.Second, a.logger)
	}
	c.Loop.Schedule = a.scheduleUpdate
	a.scheduleUpdate()
	if a.logger != nil {
		a.logger.Info("snapnote started", "surface", c.Config.Surface, "consumers", c.Config.Consumers)
	}

	App.Wait()

	a.cancel()
	c.CapturePresenter.Wait()
	if a.logger != nil {
		st := c.Renders.Stats()
		a.logger.Info("snapnote stopped", "renders", st.Renders, "failures", st.Failures, "captures", c.Captures.Count())
	}
	return nil
}

func (a *app) update() {
	defer func() {
		if r := recover(); r != nil && a.logger != nil {
			a.logger.Error("update loop panic", "error", r)
			a.scheduleUpdate()
		}
	}()
	a.c.Loop.Tick()
}

func (a *app) exitHandler() {
	a.cancel()
	a.c.Session.Close()
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	if a.ctx.Err() != nil {
		return
	}
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}
