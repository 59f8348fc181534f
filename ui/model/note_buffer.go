package model

import "strings"

// NoteBuffer remembers the note text last forwarded to the session so the
// editor can be polled without repeating unchanged values.
type NoteBuffer struct {
	last string
}

// Sync normalises raw editor content and reports whether it differs from
// what was forwarded last. Tk text widgets always end with a newline.
func (b *NoteBuffer) Sync(raw string) (text string, changed bool) {
	text = strings.TrimSuffix(raw, "\n")
	if text == b.last {
		return text, false
	}
	b.last = text
	return text, true
}

// Reset forgets the forwarded text, for a freshly cleared editor.
func (b *NoteBuffer) Reset() { b.last = "" }
