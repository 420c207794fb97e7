package editor

import (
	"strings"
	"testing"
)

func TestSetFilenameResetsScroll(t *testing.T) {
	e := New()
	e.SetFilename("a.js")
	e.SetContent(strings.Repeat("line\n", 40))
	e.ScrollBy(10, 5)
	e.SetFilename("b.js")
	if e.scroll != 0 {
		t.Fatalf("scroll = %d, want 0 after rebind", e.scroll)
	}
}

func TestScrollClampsToContent(t *testing.T) {
	e := New()
	e.SetFilename("a.js")
	e.SetContent("one\ntwo\nthree")
	e.ScrollBy(100, 2)
	if e.scroll != 1 {
		t.Fatalf("scroll = %d, want 1", e.scroll)
	}
	e.ScrollBy(-100, 2)
	if e.scroll != 0 {
		t.Fatalf("scroll = %d, want 0", e.scroll)
	}
}

func TestViewShowsPlaceholderWithoutFile(t *testing.T) {
	e := New()
	out := e.View(40, 10)
	if !strings.Contains(out, "Select a tab") {
		t.Fatalf("expected placeholder, got:\n%s", out)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("code-editor"); ok {
		t.Fatalf("lookup should miss before registration")
	}
	e := New()
	r.Register("code-editor", e)
	got, ok := r.Lookup("code-editor")
	if !ok || got != e {
		t.Fatalf("lookup should return the registered pane")
	}
}
