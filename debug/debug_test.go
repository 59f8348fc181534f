package debug

import (
	"bytes"
	"context"
	"log/slog"
	"runtime/metrics"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestGoroutineAttrs(t *testing.T) {
	attrs := goroutineAttrs([]metrics.Sample{{Name: "/sched/goroutines:goroutines"}})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if a, ok := attrs[0].(slog.Attr); !ok || a.Key != "goroutines" || a.Value.Uint64() == 0 {
		t.Fatalf("unexpected goroutine attr %v", attrs[0])
	}
}

func TestLoggersStopWithContext(t *testing.T) {
	var out syncBuffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))
	ctx, cancel := context.WithCancel(context.Background())
	StartGoroutineLogger(ctx, 5*time.Millisecond, logger)
	StartMemLogger(ctx, 5*time.Millisecond, logger)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s := out.String()
		if strings.Contains(s, "goroutine-stacks") && strings.Contains(s, "memstats") {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	s := out.String()
	if !strings.Contains(s, "goroutine-stacks") || !strings.Contains(s, "memstats") {
		t.Fatalf("expected both loggers to emit, got %q", s)
	}
}
