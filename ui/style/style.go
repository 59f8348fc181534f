package style

import (
	"strings"
)

// Canonical declaration keys.
const (
	KeyBackground  = "background"
	KeyForeground  = "foreground"
	KeyPadding     = "padding"
	KeyBorderwidth = "borderwidth"
	KeyRelief      = "relief"
)

var aliases = map[string]string{
	"bg":           KeyBackground,
	"fg":           KeyForeground,
	"color":        KeyForeground,
	"border-width": KeyBorderwidth,
}

// Canonical maps an alias like "bg" to the key it stands for. Keys are
// compared case-insensitively.
func Canonical(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if k, ok := aliases[key]; ok {
		return k
	}
	return key
}

// Declaration is one style token. Bare tokens (no colon) have an empty Key
// and carry the token in Value.
type Declaration struct {
	Key   string
	Value string
}

func (d Declaration) String() string {
	if d.Key == "" {
		return d.Value
	}
	return d.Key + ":" + d.Value
}

// Parse splits a style string of ';'-separated declarations. Keys are
// canonicalised so aliases and the keys they stand for compare equal;
// empty declarations are dropped.
func Parse(s string) []Declaration {
	var out []Declaration
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			out = append(out, Declaration{Value: part})
			continue
		}
		key = Canonical(key)
		if key == "" {
			continue
		}
		out = append(out, Declaration{Key: key, Value: strings.TrimSpace(value)})
	}
	return out
}

// Merge combines base and override declarations. An override key replaces
// the base value in place; new keys are appended in override order. Bare
// tokens are appended once.
func Merge(base, override string) string {
	decls := Parse(base)
	index := make(map[string]int, len(decls))
	bare := make(map[string]bool)
	out := decls[:0:0]
	for _, d := range decls {
		if d.Key == "" {
			if bare[d.Value] {
				continue
			}
			bare[d.Value] = true
			out = append(out, d)
			continue
		}
		if i, ok := index[d.Key]; ok {
			out[i] = d
			continue
		}
		index[d.Key] = len(out)
		out = append(out, d)
	}
	for _, d := range Parse(override) {
		if d.Key == "" {
			if !bare[d.Value] {
				bare[d.Value] = true
				out = append(out, d)
			}
			continue
		}
		if i, ok := index[d.Key]; ok {
			out[i] = d
			continue
		}
		index[d.Key] = len(out)
		out = append(out, d)
	}
	parts := make([]string, len(out))
	for i, d := range out {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}

// Value returns the value of key in style, or "" when absent.
func Value(style, key string) string {
	key = Canonical(key)
	v := ""
	for _, d := range Parse(style) {
		if d.Key == key {
			v = d.Value
		}
	}
	return v
}
