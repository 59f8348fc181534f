package model

import (
	"sync/atomic"

	"github.com/soocke/snapnote/domain/selection"
)

// CaptureModel holds the most recent capture result and a running count.
// The zero value is empty and usable. Concurrency-safe because results
// arrive from the capture goroutine while presenter ticks read them.
type CaptureModel struct {
	last  atomic.Pointer[selection.CaptureResult]
	count atomic.Int64
}

// Record stores r as the latest capture.
func (m *CaptureModel) Record(r selection.CaptureResult) {
	if m == nil {
		return
	}
	m.last.Store(&r)
	m.count.Add(1)
}

// Last returns the latest capture, if any.
func (m *CaptureModel) Last() (selection.CaptureResult, bool) {
	if m == nil {
		return selection.CaptureResult{}, false
	}
	p := m.last.Load()
	if p == nil {
		return selection.CaptureResult{}, false
	}
	return *p, true
}

// Count returns how many captures were recorded.
func (m *CaptureModel) Count() int {
	if m == nil {
		return 0
	}
	return int(m.count.Load())
}
