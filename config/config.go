package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/soocke/snapnote/domain/capture"
	"github.com/soocke/snapnote/domain/geometry"
)

// Consumer names accepted in Config.Consumers.
const (
	ConsumerLog       = "log"
	ConsumerStdout    = "stdout"
	ConsumerClipboard = "clipboard"
)

// Config holds runtime configuration for the selection overlay and capture.
// Fields may be loaded from a JSON file, overlaid by .env / SNAPNOTE_*
// environment variables and finally by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Initial selection rectangle. Centered recomputes the origin from the
	// screen size on each activation and ignores InitialX/InitialY.
	InitialWidth  string `json:"initial_width"`
	InitialHeight string `json:"initial_height"`
	InitialX      int    `json:"initial_x"`
	InitialY      int    `json:"initial_y"`
	Centered      bool   `json:"centered"`

	// Overlay constraints
	MinWidth  int `json:"min_width"`
	MinHeight int `json:"min_height"`
	DragGrid  int `json:"drag_grid"`

	// Presentation
	Dark         bool   `json:"dark"`
	Placeholder  string `json:"placeholder"`
	InputStyle   string `json:"input_style"`
	ButtonStyle  string `json:"button_style"`
	OverlayStyle string `json:"overlay_style"`

	// Output
	Encoding    string   `json:"encoding"`
	JPEGQuality int      `json:"jpeg_quality"`
	Consumers   []string `json:"consumers"`

	// Surface selects the render provider: screen, displays or file.
	Surface           string `json:"surface"`
	SurfacePath       string `json:"surface_path"`
	Path              string `json:"path"`
	SettleDelayMillis int    `json:"settle_delay_ms"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		InitialWidth:      "200px",
		InitialHeight:     "200px",
		Centered:          true,
		MinWidth:          100,
		MinHeight:         100,
		DragGrid:          20,
		Placeholder:       "Enter feedback...",
		Encoding:          string(capture.FormatPNG),
		JPEGQuality:       85,
		Consumers:         []string{ConsumerLog},
		Surface:           "screen",
		Path:              "desktop",
		SettleDelayMillis: 150,
	}
}

// ErrAdjusted is wrapped by Validate when it had to change or drop values.
// The config is still usable afterwards.
var ErrAdjusted = errors.New("config: values adjusted")

// Validate clamps/normalizes values to safe ranges. Every value it had to
// replace is reported in the returned error.
func (c *Config) Validate() error {
	var notes []string
	if c.MinWidth <= 0 {
		c.MinWidth = 100
	}
	if c.MinHeight <= 0 {
		c.MinHeight = 100
	}
	var note string
	c.InitialWidth, note = normalizeInitial("initial_width", c.InitialWidth, c.MinWidth)
	notes = appendNote(notes, note)
	c.InitialHeight, note = normalizeInitial("initial_height", c.InitialHeight, c.MinHeight)
	notes = appendNote(notes, note)
	if c.DragGrid < 0 {
		c.DragGrid = 0
	}
	if strings.TrimSpace(c.Placeholder) == "" {
		c.Placeholder = "Enter feedback..."
	}
	if f, err := capture.ParseFormat(c.Encoding); err != nil {
		notes = append(notes, fmt.Sprintf("encoding %q replaced by png", c.Encoding))
		c.Encoding = string(capture.FormatPNG)
	} else {
		c.Encoding = string(f)
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = 85
	}
	if c.SettleDelayMillis < 0 {
		c.SettleDelayMillis = 0
	}
	if c.SettleDelayMillis > 5000 {
		c.SettleDelayMillis = 5000
	}
	var dropped []string
	c.Consumers, dropped = normalizeConsumers(c.Consumers)
	if len(dropped) > 0 {
		notes = append(notes, fmt.Sprintf("unknown consumers dropped: %s", strings.Join(dropped, ", ")))
	}
	if c.Surface == "" {
		c.Surface = "screen"
	}
	if len(notes) > 0 {
		return fmt.Errorf("%w: %s", ErrAdjusted, strings.Join(notes, "; "))
	}
	return nil
}

func appendNote(notes []string, note string) []string {
	if note == "" {
		return notes
	}
	return append(notes, note)
}

// normalizeInitial keeps an initial size usable: malformed, negative or zero
// values fall back to 200px and pixel sizes are raised to min. Percentages
// depend on the screen and are constrained by the overlay when it opens.
func normalizeInitial(name, d string, min int) (string, string) {
	v, unit, err := geometry.ParseDimension(geometry.Dimension(d))
	switch {
	case strings.TrimSpace(d) == "":
		d, v, unit = "200px", 200, geometry.UnitPixels
	case err != nil || v <= 0:
		out, _ := normalizeInitial(name, "", min)
		return out, fmt.Sprintf("%s %q replaced by %s", name, d, out)
	}
	if unit == geometry.UnitPixels && v < float64(min) {
		out := string(geometry.Px(min))
		return out, fmt.Sprintf("%s %q raised to minimum %s", name, d, out)
	}
	return d, ""
}

// normalizeConsumers lowercases, drops unknown names and duplicates, and
// falls back to the log consumer when nothing is left. Unknown names are
// returned in dropped.
func normalizeConsumers(in []string) (out, dropped []string) {
	out = make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, raw := range in {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case ConsumerLog, ConsumerStdout, ConsumerClipboard:
		default:
			dropped = append(dropped, raw)
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		out = append(out, ConsumerLog)
	}
	return out, dropped
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// Values are not validated; call Validate once every source has been applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
