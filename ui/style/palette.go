package style

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, note input
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // buttons, overlay frame
	ColorDanger    = "#dc2626"
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for one mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

// Palette returns colors for dark or light mode.
func Palette(dark bool) PaletteSnapshot {
	if dark {
		return PaletteSnapshot{
			AppBg:     "#0f172a",
			Surface:   "#1e293b",
			Border:    "#334155",
			Primary:   "#3b82f6",
			Danger:    "#ef4444",
			Accent:    "#10b981",
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Accent:    ColorAccent,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// Overrides are caller-supplied declarations merged over the base styles.
type Overrides struct {
	Input   string
	Button  string
	Overlay string
}

// Styles holds the merged declarations for each styled element.
type Styles struct {
	Input   string
	Button  string
	Overlay string
}

// Resolve merges o over the base declarations for the given mode.
func Resolve(dark bool, o Overrides) Styles {
	p := Palette(dark)
	return Styles{
		Input:   Merge("background:"+p.Surface+"; foreground:"+p.Text+"; borderwidth:1; relief:solid", o.Input),
		Button:  Merge("background:"+p.Primary+"; foreground:white; padding:4p 3p; borderwidth:1; relief:ridge", o.Button),
		Overlay: Merge("background:"+p.Primary+"; borderwidth:2", o.Overlay),
	}
}
