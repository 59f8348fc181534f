package capture

import (
	"context"
	"errors"
	"image"

	"github.com/kbinani/screenshot"
	"github.com/soocke/snapnote/domain/geometry"
)

// ErrNoDisplays is returned when no active display is found.
var ErrNoDisplays = errors.New("capture: no active displays")

// DisplaySurface renders the union of every active display. The raster
// origin is the top-left corner of that union.
type DisplaySurface struct{}

func NewDisplaySurface() *DisplaySurface { return &DisplaySurface{} }

func (d *DisplaySurface) Render(ctx context.Context) (image.Image, error) {
	union, err := displayUnion()
	if err != nil {
		return nil, err
	}
	img, err := grab(ctx, func() (*image.RGBA, error) { return screenshot.CaptureRect(union) })
	if err != nil {
		return nil, err
	}
	// Rebase so raster coordinates start at (0,0) like the other surfaces.
	rgba := img.(*image.RGBA)
	rgba.Rect = rgba.Rect.Sub(rgba.Rect.Min)
	return rgba, nil
}

func (d *DisplaySurface) Viewport() (geometry.Viewport, error) {
	union, err := displayUnion()
	if err != nil {
		return geometry.Viewport{}, err
	}
	return geometry.Viewport{Width: union.Dx(), Height: union.Dy()}, nil
}

func displayUnion() (image.Rectangle, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return image.Rectangle{}, ErrNoDisplays
	}
	union := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		union = union.Union(screenshot.GetDisplayBounds(i))
	}
	return union, nil
}
