package consumer

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"log/slog"
	"strings"
	"testing"
	"time"

	"golang.design/x/clipboard"

	"github.com/soocke/snapnote/domain/capture"
	"github.com/soocke/snapnote/domain/selection"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func sampleResult(t *testing.T, f capture.Format) selection.CaptureResult {
	t.Helper()
	enc, err := capture.Encode(image.NewRGBA(image.Rect(0, 0, 4, 4)), f, 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return selection.CaptureResult{
		Image:    enc,
		Feedback: "looks broken here",
		Date:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Path:     "/dashboard",
		Region:   image.Rect(10, 20, 14, 24),
	}
}

func TestFanout_DeliversToAllDespitePanic(t *testing.T) {
	var got []string
	c := Fanout(discardLogger,
		func(r selection.CaptureResult) { got = append(got, "a:"+r.Feedback) },
		func(r selection.CaptureResult) { panic("bad consumer") },
		nil,
		func(r selection.CaptureResult) { got = append(got, "c:"+r.Feedback) },
	)
	c(selection.CaptureResult{Feedback: "x"})
	if len(got) != 2 || got[0] != "a:x" || got[1] != "c:x" {
		t.Fatalf("unexpected deliveries %v", got)
	}
}

func TestStdout_WritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult(t, capture.FormatPNG)
	Stdout(&buf, discardLogger)(res)
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("expected newline-terminated JSON")
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"image", "feedback", "date", "path", "region"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %q in %v", key, decoded)
		}
	}
	if decoded["feedback"] != "looks broken here" || decoded["path"] != "/dashboard" {
		t.Fatalf("unexpected values %v", decoded)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestStdout_LogsWriteErrors(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	Stdout(failingWriter{}, logger)(sampleResult(t, capture.FormatPNG))
	if !strings.Contains(logs.String(), "broken pipe") || !strings.Contains(logs.String(), "stdout consumer write") {
		t.Fatalf("expected write error to be logged, got %q", logs.String())
	}
}

func TestClipboard_PNGAsImageOtherwiseText(t *testing.T) {
	var formats []clipboard.Format
	var payloads [][]byte
	write := func(f clipboard.Format, data []byte) {
		formats = append(formats, f)
		payloads = append(payloads, data)
	}
	c := Clipboard(write, discardLogger)

	c(sampleResult(t, capture.FormatPNG))
	if formats[0] != clipboard.FmtImage || !bytes.HasPrefix(payloads[0], []byte("\x89PNG")) {
		t.Fatalf("expected PNG image on clipboard")
	}

	jpeg := sampleResult(t, capture.FormatJPEG)
	c(jpeg)
	if formats[1] != clipboard.FmtText || string(payloads[1]) != string(jpeg.Image) {
		t.Fatalf("expected data URL text for JPEG capture")
	}
}

func TestBuild(t *testing.T) {
	cs, err := Build([]string{"log", "stdout"}, &bytes.Buffer{}, discardLogger)
	if err != nil || len(cs) != 2 {
		t.Fatalf("expected two consumers, got %d, %v", len(cs), err)
	}
	if _, err := Build([]string{"fax"}, nil, discardLogger); err == nil {
		t.Fatalf("expected error for unknown consumer")
	}
}
