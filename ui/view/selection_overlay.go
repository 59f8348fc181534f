package view

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/soocke/snapnote/assets"
	"github.com/soocke/snapnote/domain/geometry"
	"github.com/soocke/snapnote/domain/selection"
	"github.com/soocke/snapnote/ui/model"
	"github.com/soocke/snapnote/ui/style"
	"github.com/soocke/snapnote/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// EventSink receives user gestures from the overlay. *selection.Session
// satisfies it.
type EventSink interface {
	Toggle()
	OnDragMove(target selection.TargetID)
	OnDragEnd(x, y float64)
	OnResizeEnd(width, height geometry.Dimension, x, y float64)
	OnNoteChange(text string)
	OnKey(key string) bool
}

// OverlayOptions configures the selection overlay window.
type OverlayOptions struct {
	MinWidth, MinHeight int
	DragGrid            int
	Placeholder         string
	Path                string
	Styles              style.Styles
	// Viewport reports the extent of the capture surface.
	Viewport func() (geometry.Viewport, error)
}

const (
	overlayAlpha     = 0.55
	settleTicks      = 2
	viewportInterval = 2 * time.Second
)

// SelectionOverlay is the movable, resizable selection window. It is the
// drag/resize backend for the session and implements selection.Host.
// Tk calls happen only in Tk callbacks and Poll; Host methods called from
// other goroutines are queued and applied on the next Poll.
type SelectionOverlay struct {
	logger *slog.Logger
	opts   OverlayOptions

	sink     EventSink
	onSubmit func()

	win     *ToplevelWidget
	note    *TextWidget
	hint    *LabelWidget
	status  *LabelWidget
	button  *TButtonWidget
	icon    *Img
	tracker model.WindowTracker
	noteBuf model.NoteBuffer
	hidden  bool
	opacity float64

	viewport    atomic.Pointer[geometry.Viewport]
	vpRefreshed time.Time

	mu  sync.Mutex
	ops []func()
}

var _ selection.Host = (*SelectionOverlay)(nil)

// NewSelectionOverlay creates the overlay manager. No window exists until
// OpenOverlay is called.
func NewSelectionOverlay(opts OverlayOptions, logger *slog.Logger) *SelectionOverlay {
	v := &SelectionOverlay{logger: logger, opts: opts, opacity: model.OpacityNormal}
	v.tracker = model.WindowTracker{
		Grid:        opts.DragGrid,
		MinW:        opts.MinWidth,
		MinH:        opts.MinHeight,
		SettleTicks: settleTicks,
	}
	v.refreshViewport(time.Now())
	return v
}

// Bind connects the overlay to the session and the capture action.
func (v *SelectionOverlay) Bind(sink EventSink, onSubmit func()) {
	v.sink = sink
	v.onSubmit = onSubmit
}

// --- selection.Host ---

// Viewport returns the last known surface extent. Safe from any goroutine.
func (v *SelectionOverlay) Viewport() geometry.Viewport {
	if vp := v.viewport.Load(); vp != nil {
		return *vp
	}
	return geometry.Viewport{}
}

// Scroll is always zero: desktop surfaces do not scroll.
func (v *SelectionOverlay) Scroll() geometry.Scroll { return geometry.Scroll{} }

func (v *SelectionOverlay) Path() string { return v.opts.Path }

// HideOverlay makes the overlay fully transparent and returns once that has
// been applied on the Tk goroutine.
func (v *SelectionOverlay) HideOverlay(ctx context.Context) error {
	done := make(chan struct{})
	v.enqueue(func() {
		v.hidden = true
		v.applyAlpha()
		close(done)
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ShowOverlay restores the overlay after a failed capture.
func (v *SelectionOverlay) ShowOverlay() {
	v.enqueue(func() {
		v.hidden = false
		v.applyAlpha()
	})
}

func (v *SelectionOverlay) enqueue(op func()) {
	v.mu.Lock()
	v.ops = append(v.ops, op)
	v.mu.Unlock()
}

// Poll runs on the Tk goroutine every tick. It applies queued Host
// operations, refreshes the viewport and turns window geometry changes
// into session events.
func (v *SelectionOverlay) Poll(now time.Time) {
	v.mu.Lock()
	ops := v.ops
	v.ops = nil
	v.mu.Unlock()
	for _, op := range ops {
		op()
	}
	v.refreshViewport(now)
	if v.win == nil || v.hidden || v.sink == nil {
		return
	}
	v.syncNote()
	r, ok := model.ParseGeometry(WmGeometry(v.win.Window))
	if !ok {
		return
	}
	events, corrected, fix := v.tracker.Observe(r)
	if fix {
		WmGeometry(v.win.Window, model.FormatGeometry(corrected))
	}
	for _, ev := range events {
		switch ev.Kind {
		case model.WindowDragStart:
			v.sink.OnDragMove(selection.TargetHandle)
		case model.WindowDragEnd:
			v.sink.OnDragEnd(float64(ev.Rect.Min.X), float64(ev.Rect.Min.Y))
		case model.WindowResizeEnd:
			v.sink.OnResizeEnd(geometry.Px(ev.Rect.Dx()), geometry.Px(ev.Rect.Dy()), float64(ev.Rect.Min.X), float64(ev.Rect.Min.Y))
		}
	}
}

func (v *SelectionOverlay) refreshViewport(now time.Time) {
	if v.opts.Viewport == nil || now.Sub(v.vpRefreshed) < viewportInterval {
		return
	}
	v.vpRefreshed = now
	vp, err := v.opts.Viewport()
	if err != nil {
		if v.logger != nil {
			v.logger.Warn("viewport refresh failed", "error", err)
		}
		return
	}
	if prev := v.viewport.Load(); prev == nil || *prev != vp {
		v.viewport.Store(&vp)
		v.tracker.Bounds = vp.Bounds()
		if v.logger != nil {
			v.logger.Debug("viewport", "width", vp.Width, "height", vp.Height)
		}
	}
}

// --- presenter.OverlayView ---

// OpenOverlay shows the overlay at r, creating the window if needed.
func (v *SelectionOverlay) OpenOverlay(r geometry.Rect) {
	vp := v.Viewport()
	rect, err := r.Resolve(vp)
	if err != nil {
		if v.logger != nil {
			v.logger.Error("resolve overlay rect", "rect", r.String(), "error", err)
		}
		return
	}
	if v.win == nil {
		v.build()
	}
	placed, changed := v.tracker.Open(rect)
	v.hidden = false
	v.opacity = model.OpacityNormal
	v.note.Delete("1.0", END)
	v.noteBuf.Reset()
	v.hint.Configure(Txt(v.opts.Placeholder))
	WmGeometry(v.win.Window, model.FormatGeometry(placed))
	v.applyAlpha()
	Focus(v.note)
	if changed && v.sink != nil {
		// The session must capture what is on screen, not what it asked for.
		v.sink.OnResizeEnd(geometry.Px(placed.Dx()), geometry.Px(placed.Dy()), float64(placed.Min.X), float64(placed.Min.Y))
	}
}

// CloseOverlay destroys the overlay window.
func (v *SelectionOverlay) CloseOverlay() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
		v.note, v.hint, v.status, v.button = nil, nil, nil, nil
	}
	v.hidden = false
}

// ApplyOverlay reflects derived state onto the controls.
func (v *SelectionOverlay) ApplyOverlay(st model.OverlayState) {
	if v.win == nil {
		return
	}
	if st.ButtonEnabled {
		v.button.Configure(State("normal"))
	} else {
		v.button.Configure(State("disabled"))
	}
	msg := st.Status
	if st.Error != "" {
		msg = st.Error
	}
	v.status.Configure(Txt(msg))
	v.opacity = st.ControlsOpacity
	v.applyAlpha()
}

func (v *SelectionOverlay) applyAlpha() {
	if v.win == nil {
		return
	}
	alpha := overlayAlpha * v.opacity
	if v.hidden {
		alpha = 0
	}
	WmAttributes(v.win.Window, "-alpha", alpha)
}

func (v *SelectionOverlay) build() {
	overlayOpts, skipped := theme.Options(v.opts.Styles.Overlay, theme.ToplevelKeys...)
	if len(skipped) > 0 && v.logger != nil {
		v.logger.Debug("style declarations not applied", "element", "overlay", "declarations", skipped)
	}
	win := App.Toplevel(overlayOpts...)
	win.WmTitle("Select region")
	v.win = win
	WmAttributes(win.Window, "-topmost", 1)
	if runtime.GOOS == "windows" {
		WmAttributes(win.Window, "-toolwindow", true)
	}
	WmProtocol(win.Window, "WM_DELETE_WINDOW", func() {
		if v.sink != nil {
			v.sink.Toggle()
		}
	})
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))

	bg := style.Value(v.opts.Styles.Overlay, style.KeyBackground)
	if bg == "" {
		bg = theme.CurrentPalette().Primary
	}
	center := win.Frame(Background(bg))
	Grid(center, Row(0), Column(0), Sticky("nsew"))

	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Sticky("we"))
	GridColumnConfigure(controls.Window, 0, Weight(1))

	v.hint = win.Label(Txt(v.opts.Placeholder), Anchor("w"))
	Grid(v.hint, In(controls), Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"))

	inputOpts, skipped := theme.Options(v.opts.Styles.Input, theme.TextKeys...)
	if len(skipped) > 0 && v.logger != nil {
		v.logger.Debug("style declarations not applied", "element", "input", "declarations", skipped)
	}
	v.note = win.Text(append([]Opt{Height(2), Width(20), Wrap("word")}, inputOpts...)...)
	Grid(v.note, In(controls), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	// Enter is stopped before the Text class binding inserts a newline.
	for _, seq := range []string{"<Return>", "<KP_Enter>"} {
		Bind(v.note.Window, seq, Command(v.keyPressed))
	}
	Bind(v.note.Window, "<KeyRelease>", Command(v.syncNote))
	Bind(v.note.Window, "<B1-Motion>", Command(func() {
		if v.sink != nil {
			v.sink.OnDragMove(selection.TargetNoteInput)
		}
	}))

	btnOpts := []Opt{Style(theme.StyleCaptureButton), Txt("Capture"), Command(v.submit)}
	if v.icon == nil {
		v.icon = NewPhoto(Data(assets.CameraPNG))
	}
	btnOpts = append(btnOpts, Image(v.icon), Compound("left"))
	v.button = win.TButton(btnOpts...)
	Grid(v.button, In(controls), Row(1), Column(1), Sticky("e"), Padx("0.2m"), Pady("0.2m"))
	v.button.Configure(State("disabled"))

	v.status = win.Label(Txt(""), Anchor("w"))
	Grid(v.status, In(controls), Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"))

	Bind(win.Window, "<Escape>", Command(func() {
		if v.sink != nil {
			v.sink.Toggle()
		}
	}))
}

func (v *SelectionOverlay) keyPressed(e *Event) {
	if v.sink != nil && v.sink.OnKey(e.Keysym) {
		e.SetReturnCodeBreak()
	}
}

// syncNote forwards the editor content when it changed. It runs on key
// release and on every Poll, so pastes and other edits are picked up too.
func (v *SelectionOverlay) syncNote() {
	if v.note == nil || v.sink == nil {
		return
	}
	text, changed := v.noteBuf.Sync(strings.Join(v.note.Get("1.0", END), ""))
	if !changed {
		return
	}
	if text == "" {
		v.hint.Configure(Txt(v.opts.Placeholder))
	} else {
		v.hint.Configure(Txt(""))
	}
	v.sink.OnNoteChange(text)
}

func (v *SelectionOverlay) submit() {
	if v.onSubmit != nil {
		v.onSubmit()
	}
}
