package consumer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.design/x/clipboard"

	"github.com/soocke/snapnote/config"
	"github.com/soocke/snapnote/domain/capture"
	"github.com/soocke/snapnote/domain/selection"
)

// Consumer receives each successful capture.
type Consumer func(selection.CaptureResult)

// Fanout delivers a result to every consumer in order. A panicking consumer
// is logged and does not stop the others.
func Fanout(logger *slog.Logger, consumers ...Consumer) Consumer {
	return func(r selection.CaptureResult) {
		for i, c := range consumers {
			if c == nil {
				continue
			}
			func() {
				defer func() {
					if rec := recover(); rec != nil && logger != nil {
						logger.Error("consumer panic", "index", i, "error", rec)
					}
				}()
				c(r)
			}()
		}
	}
}

// Log logs capture metadata. The image payload is summarised, not logged.
func Log(logger *slog.Logger) Consumer {
	return func(r selection.CaptureResult) {
		if logger == nil {
			return
		}
		logger.Info("capture",
			"feedback", r.Feedback,
			"path", r.Path,
			"date", r.Date,
			"region", r.Region.String(),
			"media_type", r.Image.MediaType(),
			"data_url_len", len(r.Image),
		)
	}
}

// Stdout writes one JSON object per capture to w. Write failures are logged.
func Stdout(w io.Writer, logger *slog.Logger) Consumer {
	var mu sync.Mutex
	enc := json.NewEncoder(w)
	return func(r selection.CaptureResult) {
		mu.Lock()
		defer mu.Unlock()
		if err := enc.Encode(r); err != nil && logger != nil {
			logger.Error("stdout consumer write", "path", r.Path, "error", err)
		}
	}
}

// ClipboardWriter matches clipboard.Write without its change channel.
type ClipboardWriter func(f clipboard.Format, data []byte)

// Clipboard puts PNG captures on the clipboard as an image and
// anything else as the data URL text.
func Clipboard(write ClipboardWriter, logger *slog.Logger) Consumer {
	var mu sync.Mutex
	return func(r selection.CaptureResult) {
		mu.Lock()
		defer mu.Unlock()
		if r.Image.MediaType() == capture.FormatPNG.MediaType() {
			data, err := r.Image.Bytes()
			if err == nil {
				write(clipboard.FmtImage, data)
				return
			}
			if logger != nil {
				logger.Warn("clipboard image decode failed", "error", err)
			}
		}
		write(clipboard.FmtText, []byte(r.Image))
	}
}

// systemClipboard initialises the OS clipboard once.
var systemClipboard = sync.OnceValues(func() (ClipboardWriter, error) {
	if err := clipboard.Init(); err != nil {
		return nil, err
	}
	return func(f clipboard.Format, data []byte) { clipboard.Write(f, data) }, nil
})

// Build resolves configured consumer names. The clipboard consumer
// is skipped with a warning when no clipboard is available.
func Build(names []string, stdout io.Writer, logger *slog.Logger) ([]Consumer, error) {
	var out []Consumer
	for _, name := range names {
		switch name {
		case config.ConsumerLog:
			out = append(out, Log(logger))
		case config.ConsumerStdout:
			out = append(out, Stdout(stdout, logger))
		case config.ConsumerClipboard:
			write, err := systemClipboard()
			if err != nil {
				if logger != nil {
					logger.Warn("clipboard unavailable", "error", err)
				}
				continue
			}
			out = append(out, Clipboard(write, logger))
		default:
			return nil, fmt.Errorf("unknown consumer %q", name)
		}
	}
	return out, nil
}
