package capture

import (
	"context"
	"image"
)

// Surface renders the current visual state of the host into a raster image.
// Implementations must honour ctx cancellation where the underlying capture
// allows it.
type Surface interface {
	Render(ctx context.Context) (image.Image, error)
}

// SurfaceFunc adapts a plain function to Surface.
type SurfaceFunc func(ctx context.Context) (image.Image, error)

func (f SurfaceFunc) Render(ctx context.Context) (image.Image, error) { return f(ctx) }

// StatsSource exposes render instrumentation.
type StatsSource interface{ Stats() RenderStats }
