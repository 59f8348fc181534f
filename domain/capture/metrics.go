package capture

import (
	"time"
)

// RenderStats summarises surface render behaviour for instrumentation.
type RenderStats struct {
	Renders        uint64
	Failures       uint64
	AvgRender      time.Duration
	AvgRenderMilli float64
	LastRender     time.Time
	LastSize       string
}
