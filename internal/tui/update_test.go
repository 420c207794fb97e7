package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sandpad/internal/config"
	"sandpad/internal/logging"
	"sandpad/internal/project"
)

func newTestModel(t *testing.T, names ...string) Model {
	t.Helper()
	files := make([]project.File, len(names))
	for i, n := range names {
		files[i] = project.File{ID: n, Name: n, Content: "// " + n}
	}
	proj := project.New()
	proj.Load(files)

	cfg := config.Config{}
	cfg.UI.TabMaxWidth = 20
	m := NewModel(context.Background(), cfg, logging.Discard(), nil, proj)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func visibleNames(m Model) []string {
	visible := m.proj.VisibleFiles()
	names := make([]string, len(visible))
	for i, f := range visible {
		names[i] = f.Name
	}
	return names
}

func TestClickSelectsTab(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js", "b.js")
	// Tab layout: index.html [0,12), a.js [13,19), b.js [20,26).
	m = apply(t, m, press(14, tabStripRow))
	m = apply(t, m, release(14, tabStripRow))

	if got := m.bridge.State().ActiveFileName; got != "a.js" {
		t.Fatalf("active = %q, want a.js", got)
	}
}

func TestDragReordersAcrossTheStrip(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js", "b.js", "c.js")
	// c.js sits at [27,33). Press it, drag over a.js's left half, drop.
	m = apply(t, m, press(28, tabStripRow))
	if !m.drag.Active() {
		t.Fatalf("drag did not start")
	}
	// a.js spans [13,19); column 14 is left of its midpoint, so the
	// proposed insertion point is after index.html.
	m = apply(t, m, motion(14, tabStripRow))
	if !m.drag.HasTarget() {
		t.Fatalf("no drop target proposed")
	}
	m = apply(t, m, release(14, tabStripRow))

	want := []string{"index.html", "c.js", "a.js", "b.js"}
	got := visibleNames(m)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if m.drag.Active() {
		t.Fatalf("drag survived the drop")
	}
	// The moved file was selected by the press and stays active by name.
	if m.bridge.State().ActiveFileName != "c.js" {
		t.Fatalf("active = %q, want c.js", m.bridge.State().ActiveFileName)
	}
}

func TestDragOfPinnedTabNeverStarts(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js", "b.js")
	m = apply(t, m, press(1, tabStripRow))
	if m.drag.Active() {
		t.Fatalf("pinned tab must not be draggable")
	}
	// The press still selects it.
	if m.bridge.State().ActiveFileName != "index.html" {
		t.Fatalf("active = %q", m.bridge.State().ActiveFileName)
	}
}

func TestReleaseOffStripCancelsDrag(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js", "b.js", "c.js")
	m = apply(t, m, press(28, tabStripRow))
	m = apply(t, m, motion(14, tabStripRow))
	m = apply(t, m, release(14, 10))

	if m.drag.Active() {
		t.Fatalf("drag survived an off-strip release")
	}
	want := []string{"index.html", "a.js", "b.js", "c.js"}
	got := visibleNames(m)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order changed on a cancelled drag: %v", got)
		}
	}
}

func TestMotionOffTheTabsClearsTarget(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js", "b.js", "c.js")
	m = apply(t, m, press(28, tabStripRow))
	m = apply(t, m, motion(14, tabStripRow))
	if !m.drag.HasTarget() {
		t.Fatalf("no target before leaving")
	}
	m = apply(t, m, motion(60, tabStripRow))
	if m.drag.HasTarget() {
		t.Fatalf("target survived leaving the tabs")
	}
	if !m.drag.Active() {
		t.Fatalf("drag itself must survive")
	}
}

func TestNewFileModalCreatesAndSelects(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if m.mode != modeNewFile {
		t.Fatalf("mode = %q", m.mode)
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b.js")})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeMain {
		t.Fatalf("modal still open")
	}
	if _, ok := m.proj.FileByName("b.js"); !ok {
		t.Fatalf("b.js was not created")
	}
	if m.bridge.State().ActiveFileName != "b.js" {
		t.Fatalf("new file not selected: %q", m.bridge.State().ActiveFileName)
	}
}

func TestDeleteConfirmRemovesActiveFile(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js", "b.js")
	m = apply(t, m, press(14, tabStripRow)) // select a.js
	m = apply(t, m, release(14, tabStripRow))
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if m.mode != modeConfirmDelete {
		t.Fatalf("mode = %q", m.mode)
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	if _, ok := m.proj.FileByName("a.js"); ok {
		t.Fatalf("a.js still present")
	}
	// Recovery walks left from the vacated slot.
	if m.bridge.State().ActiveFileName != "index.html" {
		t.Fatalf("active = %q, want index.html", m.bridge.State().ActiveFileName)
	}
}

func TestDeletingPinnedFileIsRefused(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js")
	m = apply(t, m, press(1, tabStripRow)) // select index.html
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if m.mode != modeMain {
		t.Fatalf("delete modal opened for the pinned file")
	}
	if m.status == "" {
		t.Fatalf("refusal should be surfaced in the status line")
	}
}

func TestRenameKeepsFileActive(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js")
	m = apply(t, m, press(14, tabStripRow)) // select a.js
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.mode != modeRename || m.inputBuffer != "a.js" {
		t.Fatalf("rename modal should prefill the current name, got %q", m.inputBuffer)
	}
	for range "a.js" {
		m = apply(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("app.js")})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if _, ok := m.proj.FileByName("app.js"); !ok {
		t.Fatalf("rename did not apply")
	}
	if m.bridge.State().ActiveFileName != "app.js" {
		t.Fatalf("active = %q, want app.js", m.bridge.State().ActiveFileName)
	}
}

func TestTabCyclingWrapsAround(t *testing.T) {
	m := newTestModel(t, "index.html", "a.js", "b.js")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.bridge.State().ActiveFileName != "a.js" {
		t.Fatalf("active = %q after one step", m.bridge.State().ActiveFileName)
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.bridge.State().ActiveFileName != "index.html" {
		t.Fatalf("cycling did not wrap: %q", m.bridge.State().ActiveFileName)
	}
}
