package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment key read by ApplyEnv.
const EnvPrefix = "SNAPNOTE_"

// LoadEnv overlays cfg with values from the .env file at envPath (if any)
// and then from the process environment. The process environment wins.
// The process environment itself is never modified.
func LoadEnv(cfg *Config, envPath string) error {
	values := map[string]string{}
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			read, err := godotenv.Read(envPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", envPath, err)
			}
			values = read
		}
	}
	return ApplyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	})
}

// ApplyEnv overlays cfg from lookup. Malformed numeric or boolean values are
// reported together; well-formed keys are still applied.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var bad []string
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(name string, dst *int) {
		v, ok := lookup(EnvPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			bad = append(bad, EnvPrefix+name)
			return
		}
		*dst = n
	}
	flag := func(name string, dst *bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			bad = append(bad, EnvPrefix+name)
			return
		}
		*dst = b
	}

	flag("DEBUG", &cfg.Debug)
	flag("DARK", &cfg.Dark)
	str("INITIAL_WIDTH", &cfg.InitialWidth)
	str("INITIAL_HEIGHT", &cfg.InitialHeight)
	flag("CENTERED", &cfg.Centered)
	num("DRAG_GRID", &cfg.DragGrid)
	str("PLACEHOLDER", &cfg.Placeholder)
	str("ENCODING", &cfg.Encoding)
	num("JPEG_QUALITY", &cfg.JPEGQuality)
	str("SURFACE", &cfg.Surface)
	str("SURFACE_PATH", &cfg.SurfacePath)
	str("PATH", &cfg.Path)
	num("SETTLE_MS", &cfg.SettleDelayMillis)
	if v, ok := lookup(EnvPrefix + "CONSUMERS"); ok && strings.TrimSpace(v) != "" {
		var names []string
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				names = append(names, trimmed)
			}
		}
		cfg.Consumers = names
	}

	if len(bad) > 0 {
		return fmt.Errorf("config: malformed environment values: %s", strings.Join(bad, ", "))
	}
	return nil
}
