package model

import "testing"

func TestNoteBuffer_ForwardsOnlyChanges(t *testing.T) {
	var b NoteBuffer
	if _, changed := b.Sync("\n"); changed {
		t.Fatalf("empty editor must not report a change")
	}
	text, changed := b.Sync("pasted without typing\n")
	if !changed || text != "pasted without typing" {
		t.Fatalf("expected pasted text forwarded, got %q changed=%v", text, changed)
	}
	if _, changed := b.Sync("pasted without typing\n"); changed {
		t.Fatalf("unchanged content must not be forwarded again")
	}
	if text, changed := b.Sync("\n"); !changed || text != "" {
		t.Fatalf("clearing the editor must be forwarded, got %q changed=%v", text, changed)
	}
	b.Sync("x\n")
	b.Reset()
	if _, changed := b.Sync("x\n"); !changed {
		t.Fatalf("after reset the same text counts as new")
	}
}
