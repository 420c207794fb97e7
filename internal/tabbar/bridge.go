package tabbar

import "sandpad/internal/project"

// Editor is the collaborator the bridge pushes the active filename to. The
// sync is one-way: the tab core writes, the editor is otherwise opaque.
type Editor interface {
	SetFilename(name string)
}

// EditorLookup resolves an editor identifier against the enclosing UI
// scope. The referenced editor may not exist yet at binding time.
type EditorLookup func(id string) (Editor, bool)

type bindingState int

const (
	bindingNone bindingState = iota
	bindingPending
	bindingResolved
)

// State is the tab-bar state owned exclusively by this subsystem. The name
// is the source of truth for identity; the index is a position memory used
// for recovery after the active file disappears.
type State struct {
	ActiveFileName  string
	ActiveFileIndex int
}

// Bridge subscribes to a Project's change notifications and keeps the
// active-file selection and the editor binding consistent with them.
// Exactly one subscription is live at a time.
type Bridge struct {
	proj      *project.Project
	cancel    func()
	state     State
	editor    Editor
	editorID  string
	binding   bindingState
	lookup    EditorLookup
	onRefresh func()
}

// NewBridge returns a detached bridge. onRefresh is invoked after every
// recovery pass so the render layer can repaint; it may be nil.
func NewBridge(onRefresh func()) *Bridge {
	return &Bridge{onRefresh: onRefresh}
}

// Attach subscribes to the project's notifications, dropping any previous
// subscription first, and derives the initial selection from the current
// collection.
func (b *Bridge) Attach(p *project.Project) {
	b.Detach()
	b.proj = p
	b.cancel = p.Subscribe(b.handleFilesChanged)
	b.recover(true)
}

// Detach drops the live subscription, if any. Tab-bar state is kept; a
// later Attach recovers against the new collection.
func (b *Bridge) Detach() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.proj = nil
}

// State returns the current tab-bar state.
func (b *Bridge) State() State { return b.state }

// BindEditor binds the editor collaborator directly.
func (b *Bridge) BindEditor(e Editor) {
	b.editor = e
	b.editorID = ""
	b.binding = bindingResolved
	b.pushFilename()
}

// BindEditorID records an identifier to be resolved later, once the render
// layer has had a paint cycle to create the element. The binding stays
// pending until ResolveEditor is called.
func (b *Bridge) BindEditorID(id string, lookup EditorLookup) {
	b.editor = nil
	b.editorID = id
	b.lookup = lookup
	b.binding = bindingPending
}

// ResolveEditor attempts the deferred identifier resolution. A lookup miss
// leaves the binding pending; it is never retried automatically — only a
// later explicit rebind (or another ResolveEditor call) completes it.
func (b *Bridge) ResolveEditor() bool {
	if b.binding != bindingPending || b.lookup == nil {
		return b.binding == bindingResolved
	}
	e, ok := b.lookup(b.editorID)
	if !ok {
		return false
	}
	b.editor = e
	b.binding = bindingResolved
	b.pushFilename()
	return true
}

// SelectFile handles a tab click: the named file becomes active if it is
// currently visible. Unknown or hidden names are ignored.
func (b *Bridge) SelectFile(name string) {
	if b.proj == nil {
		return
	}
	for i, f := range b.proj.VisibleFiles() {
		if f.Name == name {
			b.setActive(f.Name, i)
			b.refresh()
			return
		}
	}
}

func (b *Bridge) handleFilesChanged(ev project.FilesChanged) {
	b.recover(ev.ProjectLoaded)
}

func (b *Bridge) recover(justLoaded bool) {
	if b.proj == nil {
		return
	}
	name, idx := Recover(b.proj.VisibleFiles(), b.state.ActiveFileName, b.state.ActiveFileIndex, justLoaded)
	b.setActive(name, idx)
	b.refresh()
}

func (b *Bridge) setActive(name string, idx int) {
	changed := name != b.state.ActiveFileName
	b.state.ActiveFileName = name
	b.state.ActiveFileIndex = idx
	if changed {
		b.pushFilename()
	}
}

func (b *Bridge) pushFilename() {
	if b.binding != bindingResolved || b.editor == nil {
		return
	}
	b.editor.SetFilename(b.state.ActiveFileName)
}

func (b *Bridge) refresh() {
	if b.onRefresh != nil {
		b.onRefresh()
	}
}
