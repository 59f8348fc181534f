package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/snapnote/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Trigger     *TriggerButton
	Session     SessionStats
	CapturePrev CapturePreview

	// Widgets
	StateLabel *TLabelWidget
	ErrorLabel *TLabelWidget
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout. onExit is invoked by the Exit button.
func (rv *RootView) Build(onExit func()) {
	if rv == nil {
		return
	}
	// Row 0: trigger, state label, exit
	rv.Trigger = NewTriggerButton("Report region")
	Grid(rv.Trigger.Widget(), Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.StateLabel = TLabel(Style(theme.StyleStateLabel), Txt("State: idle"))
	Grid(rv.StateLabel, Row(0), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	exitBtn := TButton(Txt("Exit"), Command(onExit))
	Grid(exitBtn, Row(0), Column(2), Sticky("e"), Padx("0.4m"), Pady("0.3m"))

	// Row 1: stats
	rv.Session = NewSessionStats(1, 0)

	// Row 2: errors
	rv.ErrorLabel = TLabel(Style(theme.StyleErrorLabel), Txt(""))
	Grid(rv.ErrorLabel, Row(2), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"))

	// Row 3: preview of the last capture
	rv.CapturePrev = NewCapturePreview(3)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetError shows msg below the controls; an empty msg clears it.
func (rv *RootView) SetError(msg string) {
	if rv != nil && rv.ErrorLabel != nil {
		rv.ErrorLabel.Configure(Txt(msg))
	}
}

// UpdateCapture proxies to the capture preview view.
func (rv *RootView) UpdateCapture(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateCapture(img)
	}
}

// PreviewReset clears the capture preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.Reset()
	}
}

// SetSession updates durations, the session count and the capture count.
func (rv *RootView) SetSession(session, total time.Duration, sessions, captures int) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total, sessions)
	rv.Session.SetCaptures(captures)
}
