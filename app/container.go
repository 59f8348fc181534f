package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/soocke/snapnote/app/consumer"
	surfaces "github.com/soocke/snapnote/capture"
	"github.com/soocke/snapnote/config"
	"github.com/soocke/snapnote/domain/capture"
	"github.com/soocke/snapnote/domain/geometry"
	"github.com/soocke/snapnote/domain/selection"
	"github.com/soocke/snapnote/ui/model"
	"github.com/soocke/snapnote/ui/presenter"
	"github.com/soocke/snapnote/ui/style"
	"github.com/soocke/snapnote/ui/view"
)

// AppContainer assembles models, services, presenters and views.
type AppContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	Styles  style.Styles
	Surface surfaces.Provider
	Renders *capture.RenderService
	Session *selection.Session

	Captures     *model.CaptureModel
	SessionModel *model.SessionModel
	RootView     *view.RootView
	Overlay      *view.SelectionOverlay

	// Presenters
	SelectionPresenter *presenter.SelectionPresenter
	CapturePresenter   *presenter.CapturePresenter
	SessionPresenter   *presenter.SessionPresenter
	Loop               *presenter.Loop
}

// overlayPanel routes the state label to the root view.
type overlayPanel struct {
	*view.SelectionOverlay
	root *view.RootView
}

func (o overlayPanel) SetStateLabel(s string) { o.root.SetStateLabel(s) }

// BuildContainer constructs all components. No Tk widgets are created;
// RootView.Build and the overlay window are deferred to the app.
func BuildContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}
	provider, err := surfaces.Open(cfg.Surface, cfg.SurfacePath)
	if err != nil {
		return nil, err
	}
	c.Surface = provider
	c.Renders = capture.NewRenderService(logger, provider)

	format, err := capture.ParseFormat(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	sinks, err := consumer.Build(cfg.Consumers, stdout, logger)
	if err != nil {
		return nil, fmt.Errorf("consumers: %w", err)
	}

	c.Styles = style.Resolve(cfg.Dark, style.Overrides{
		Input:   cfg.InputStyle,
		Button:  cfg.ButtonStyle,
		Overlay: cfg.OverlayStyle,
	})
	c.Overlay = view.NewSelectionOverlay(view.OverlayOptions{
		MinWidth:    cfg.MinWidth,
		MinHeight:   cfg.MinHeight,
		DragGrid:    cfg.DragGrid,
		Placeholder: cfg.Placeholder,
		Path:        cfg.Path,
		Styles:      c.Styles,
		Viewport:    provider.Viewport,
	}, logger)

	c.Session, err = selection.New(logger, selection.Options{
		Initial: selection.InitialRect{
			Width:    geometry.Dimension(cfg.InitialWidth),
			Height:   geometry.Dimension(cfg.InitialHeight),
			Centered: cfg.Centered,
			X:        float64(cfg.InitialX),
			Y:        float64(cfg.InitialY),
		},
		Host:        c.Overlay,
		Surface:     c.Renders,
		OnCapture:   consumer.Fanout(logger, sinks...),
		Cropper:     capture.Cropper{Format: format, Quality: cfg.JPEGQuality},
		SettleDelay: time.Duration(cfg.SettleDelayMillis) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	c.Captures = &model.CaptureModel{}
	c.SessionModel = model.NewSessionModel()
	c.RootView = view.NewRootView(logger)

	c.SelectionPresenter = presenter.NewSelectionPresenter(overlayPanel{SelectionOverlay: c.Overlay, root: c.RootView})
	c.CapturePresenter = presenter.NewCapturePresenter(ctx, c.Session, c.Captures, c.RootView, logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.SessionModel, c.Captures, c.Session, c.RootView)
	c.Overlay.Bind(c.Session, c.CapturePresenter.Submit)
	c.Session.AddListener(c.SelectionPresenter.OnState)
	c.Loop = presenter.NewLoop(c.SelectionPresenter, c.CapturePresenter, c.SessionPresenter, nil)
	c.Loop.Before = c.Overlay.Poll
	return c, nil
}
