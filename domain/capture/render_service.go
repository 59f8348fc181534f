package capture

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"
)

const renderStatsLogEvery = 10

// RenderService wraps a Surface and records how renders behave. It is safe
// for concurrent use; use NewRenderService to construct one.
type RenderService struct {
	surface     Surface
	logger      *slog.Logger
	renders     atomic.Uint64
	failures    atomic.Uint64
	renderNanos atomic.Uint64
	last        atomic.Pointer[renderMark]
}

type renderMark struct {
	at   time.Time
	size image.Point
}

// NewRenderService returns an instrumented Surface delegating to surface.
func NewRenderService(logger *slog.Logger, surface Surface) *RenderService {
	return &RenderService{surface: surface, logger: logger}
}

// Render delegates to the wrapped surface and records timing.
func (s *RenderService) Render(ctx context.Context) (image.Image, error) {
	if s.surface == nil {
		return nil, fmt.Errorf("capture: no surface configured")
	}
	start := time.Now()
	img, err := s.surface.Render(ctx)
	if err == nil && img == nil {
		err = fmt.Errorf("capture: surface returned no image")
	}
	if err != nil {
		s.failures.Add(1)
		if s.logger != nil {
			s.logger.Error("surface render", "error", err)
		}
		return nil, err
	}
	elapsed := time.Since(start)
	s.renderNanos.Add(uint64(elapsed.Nanoseconds()))
	n := s.renders.Add(1)
	s.last.Store(&renderMark{at: time.Now(), size: img.Bounds().Size()})
	if s.logger != nil {
		s.logger.Debug("surface rendered", "elapsed", elapsed, "size", img.Bounds().Size().String())
		if n%renderStatsLogEvery == 0 {
			s.logStats()
		}
	}
	return img, nil
}

func (s *RenderService) Stats() RenderStats {
	renders := s.renders.Load()
	total := s.renderNanos.Load()
	var avg time.Duration
	avgMilli := 0.0
	if renders > 0 && total > 0 {
		avg = time.Duration(total / renders)
		avgMilli = float64(avg) / float64(time.Millisecond)
	}
	st := RenderStats{
		Renders:        renders,
		Failures:       s.failures.Load(),
		AvgRender:      avg,
		AvgRenderMilli: avgMilli,
	}
	if m := s.last.Load(); m != nil {
		st.LastRender = m.at
		st.LastSize = m.size.String()
	}
	return st
}

func (s *RenderService) logStats() {
	stats := s.Stats()
	s.logger.Info("render.stats",
		"renders", stats.Renders,
		"failures", stats.Failures,
		"avg_render", stats.AvgRender,
		"last_size", stats.LastSize,
	)
}

var _ Surface = (*RenderService)(nil)
var _ StatsSource = (*RenderService)(nil)
