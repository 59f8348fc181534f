package theme

// Tk styling for the snapnote UI. InitStyles activates the base theme and
// configures the semantic ttk styles from resolved style declarations.

import (
	"log/slog"

	"github.com/soocke/snapnote/ui/style"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// style names used with Style("capture.TButton") etc.
const (
	StyleTriggerButton = "trigger.TButton"
	StyleCaptureButton = "capture.TButton"
	StyleStateLabel    = "state.TLabel"
	StyleErrorLabel    = "error.TLabel"
)

// internal flag for current mode
var darkMode bool

// CurrentPalette returns colors for the active mode.
func CurrentPalette() style.PaletteSnapshot { return style.Palette(darkMode) }

// InitStyles applies the palette and the capture button style. Input and
// overlay declarations are applied by the widgets that own them.
func InitStyles(dark bool, s style.Styles, logger *slog.Logger) {
	darkMode = dark
	p := style.Palette(dark)
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(p.AppBg))

	btn, skipped := Options(s.Button)
	args := make([]any, len(btn))
	for i, o := range btn {
		args[i] = o
	}
	StyleConfigure(StyleCaptureButton, args...)
	if len(skipped) > 0 && logger != nil {
		logger.Debug("style declarations not applied", "element", "button", "declarations", skipped)
	}
	StyleConfigure(StyleTriggerButton,
		Background(p.Surface),
		Foreground(p.Text),
		Padding("2p 2p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground(p.TextMuted),
		Background(p.AppBg),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleErrorLabel,
		Foreground(p.Danger),
		Background(p.AppBg),
		Padding("2p 1p"),
	)
}
