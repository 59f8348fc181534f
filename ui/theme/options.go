package theme

import (
	"slices"

	"github.com/soocke/snapnote/ui/style"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Keys accepted by classic Tk widgets; -padding exists only on ttk.
var (
	ToplevelKeys = []string{style.KeyBackground, style.KeyBorderwidth, style.KeyRelief}
	TextKeys     = []string{style.KeyBackground, style.KeyForeground, style.KeyBorderwidth, style.KeyRelief}
)

// Options converts declarations into widget options. When allowed is
// non-empty only those keys are converted. Everything else, bare tokens
// included, is returned in skipped.
func Options(decls string, allowed ...string) (opts []Opt, skipped []string) {
	for _, d := range style.Parse(decls) {
		key := d.Key
		if len(allowed) > 0 && !slices.Contains(allowed, key) {
			skipped = append(skipped, d.String())
			continue
		}
		switch key {
		case style.KeyBackground:
			opts = append(opts, Background(d.Value))
		case style.KeyForeground:
			opts = append(opts, Foreground(d.Value))
		case style.KeyPadding:
			opts = append(opts, Padding(d.Value))
		case style.KeyBorderwidth:
			opts = append(opts, Borderwidth(d.Value))
		case style.KeyRelief:
			opts = append(opts, Relief(d.Value))
		default:
			skipped = append(skipped, d.String())
		}
	}
	return opts, skipped
}
