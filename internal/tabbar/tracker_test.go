package tabbar

import (
	"testing"

	"sandpad/internal/project"
)

func visible(names ...string) []project.File {
	out := make([]project.File, 0, len(names))
	for _, n := range names {
		out = append(out, project.File{Name: n})
	}
	return out
}

func TestRecoverKeepsIdentityAcrossReorder(t *testing.T) {
	// a.js was active at index 1, then got moved to index 2.
	name, idx := Recover(visible("index.html", "b.js", "a.js"), "a.js", 1, false)
	if name != "a.js" || idx != 2 {
		t.Fatalf("got (%q, %d), want (a.js, 2)", name, idx)
	}
}

func TestRecoverFallsBackLeftOnDeletion(t *testing.T) {
	// Scenario: [index.html, a.js, b.js] with a.js active; a.js deleted.
	name, idx := Recover(visible("index.html", "b.js"), "a.js", 1, false)
	if name != "index.html" || idx != 0 {
		t.Fatalf("got (%q, %d), want (index.html, 0)", name, idx)
	}
}

func TestRecoverDeletionOfLastFile(t *testing.T) {
	name, idx := Recover(visible("index.html", "a.js"), "b.js", 2, false)
	if name != "a.js" || idx != 1 {
		t.Fatalf("got (%q, %d), want (a.js, 1)", name, idx)
	}
}

func TestRecoverClampsStaleIndex(t *testing.T) {
	name, idx := Recover(visible("index.html"), "gone.js", 9, false)
	if name != "index.html" || idx != 0 {
		t.Fatalf("got (%q, %d), want (index.html, 0)", name, idx)
	}
}

func TestRecoverEmptySequenceIsTerminal(t *testing.T) {
	name, idx := Recover(nil, "a.js", 3, false)
	if name != "" || idx != 0 {
		t.Fatalf("got (%q, %d), want empty name and index 0", name, idx)
	}
}

func TestRecoverProjectLoadHonoursSelectedHint(t *testing.T) {
	// Scenario: load with [{index.html}, {a.js, selected}].
	files := []project.File{{Name: "index.html"}, {Name: "a.js", Selected: true}}
	name, idx := Recover(files, "", 0, true)
	if name != "a.js" || idx != 1 {
		t.Fatalf("got (%q, %d), want (a.js, 1)", name, idx)
	}
}

func TestRecoverLoadWithoutHintFallsThroughToName(t *testing.T) {
	files := []project.File{{Name: "index.html"}, {Name: "a.js"}}
	name, idx := Recover(files, "a.js", 1, true)
	if name != "a.js" || idx != 1 {
		t.Fatalf("got (%q, %d), want (a.js, 1)", name, idx)
	}
}

func TestRecoverNamePrecedesIndex(t *testing.T) {
	// The remembered index points elsewhere; the name must win.
	name, idx := Recover(visible("index.html", "a.js", "b.js"), "b.js", 0, false)
	if name != "b.js" || idx != 2 {
		t.Fatalf("got (%q, %d), want (b.js, 2)", name, idx)
	}
}
