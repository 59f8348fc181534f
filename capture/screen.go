package capture

import (
	"context"
	"fmt"
	"image"

	"github.com/soocke/snapnote/domain/geometry"
	"github.com/vova616/screenshot"
)

// ScreenSurface renders the primary screen.
type ScreenSurface struct{}

// NewScreenSurface returns a surface backed by a full primary-screen grab.
func NewScreenSurface() *ScreenSurface { return &ScreenSurface{} }

// Render grabs the whole primary screen. The grab itself cannot be
// interrupted; a cancelled ctx returns early and the frame is dropped.
func (s *ScreenSurface) Render(ctx context.Context) (image.Image, error) {
	return grab(ctx, screenshot.CaptureScreen)
}

// Viewport reports the primary screen size.
func (s *ScreenSurface) Viewport() (geometry.Viewport, error) {
	r, err := screenshot.ScreenRect()
	if err != nil {
		return geometry.Viewport{}, fmt.Errorf("screen rect: %w", err)
	}
	return geometry.Viewport{Width: r.Dx(), Height: r.Dy()}, nil
}

type grabResult struct {
	img *image.RGBA
	err error
}

// grab runs fn off the caller's goroutine so ctx cancellation is honoured.
func grab(ctx context.Context, fn func() (*image.RGBA, error)) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ch := make(chan grabResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- grabResult{err: fmt.Errorf("screen grab panic: %v", r)}
			}
		}()
		img, err := fn()
		ch <- grabResult{img: img, err: err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}
		if res.img == nil {
			return nil, fmt.Errorf("screen grab returned no image")
		}
		return res.img, nil
	}
}
