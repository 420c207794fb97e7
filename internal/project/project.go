package project

import (
	"fmt"
	"strings"
)

// PinnedFileName is the required entry file. It always exists, always sits
// at the front of the file order, and is never reorderable.
const PinnedFileName = "index.html"

// File is a single project file record. Name is the identity: it is unique
// among the files currently in the project.
type File struct {
	ID       string
	Name     string
	Label    string
	Hidden   bool
	Selected bool
	Content  string
}

// DisplayName returns the label when set, otherwise the file name.
func (f File) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// FilesChanged is delivered to subscribers after any mutation of the file
// collection. ProjectLoaded distinguishes a whole-project replacement from
// an incremental edit (create/delete/rename/reorder).
type FilesChanged struct {
	ProjectLoaded bool
}

// Project owns the ordered file collection. It is the single writer; every
// other component only reads. All methods run on the UI goroutine, so no
// locking is needed and subscribers are notified synchronously.
type Project struct {
	files   []File
	subs    map[int]func(FilesChanged)
	nextSub int
}

func New() *Project {
	return &Project{subs: map[int]func(FilesChanged){}}
}

// Files returns a copy of the full ordered collection, hidden files included.
func (p *Project) Files() []File {
	out := make([]File, len(p.files))
	copy(out, p.files)
	return out
}

// VisibleFiles returns the files eligible for tab display, in project order.
// The view is recomputed on every call; callers must not cache it across a
// mutation.
func (p *Project) VisibleFiles() []File {
	var out []File
	for _, f := range p.files {
		if !f.Hidden {
			out = append(out, f)
		}
	}
	return out
}

// FileByName returns the file with the given name, if present.
func (p *Project) FileByName(name string) (File, bool) {
	for _, f := range p.files {
		if f.Name == name {
			return f, true
		}
	}
	return File{}, false
}

// Load replaces the whole collection and notifies subscribers with
// ProjectLoaded set. The given order is kept except that the pinned file is
// forced to the front; when none of the visible files carries the Selected
// hint, the first visible file gets it so the load lands on an active tab.
func (p *Project) Load(files []File) {
	p.files = make([]File, len(files))
	copy(p.files, files)
	p.pinFirst()
	p.ensureSelected()
	p.notify(true)
}

// Add appends a file to the end of the order. Names must be unique.
func (p *Project) Add(f File) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("add file: empty name")
	}
	if _, ok := p.FileByName(f.Name); ok {
		return fmt.Errorf("add file: %q already exists", f.Name)
	}
	p.files = append(p.files, f)
	p.pinFirst()
	p.notify(false)
	return nil
}

// Remove deletes the named file. Removing the pinned file is refused.
func (p *Project) Remove(name string) error {
	if name == PinnedFileName {
		return fmt.Errorf("remove file: %q is required", name)
	}
	idx := p.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("remove file: %q not found", name)
	}
	p.files = append(p.files[:idx], p.files[idx+1:]...)
	p.notify(false)
	return nil
}

// Rename changes a file's identity. The pinned file keeps its name.
func (p *Project) Rename(oldName, newName string) error {
	if oldName == PinnedFileName {
		return fmt.Errorf("rename file: %q is required", oldName)
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("rename file: empty name")
	}
	if _, ok := p.FileByName(newName); ok {
		return fmt.Errorf("rename file: %q already exists", newName)
	}
	idx := p.indexOf(oldName)
	if idx < 0 {
		return fmt.Errorf("rename file: %q not found", oldName)
	}
	p.files[idx].Name = newName
	p.notify(false)
	return nil
}

// SetHidden toggles a file in or out of the visible tab set.
func (p *Project) SetHidden(name string, hidden bool) error {
	if name == PinnedFileName && hidden {
		return fmt.Errorf("hide file: %q is required", name)
	}
	idx := p.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("hide file: %q not found", name)
	}
	p.files[idx].Hidden = hidden
	p.notify(false)
	return nil
}

// SetContent replaces a file's content without reordering anything.
func (p *Project) SetContent(name, content string) error {
	idx := p.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("set content: %q not found", name)
	}
	p.files[idx].Content = content
	p.notify(false)
	return nil
}

// MoveFileAfter splices the source file out of the order and reinserts it
// immediately after the target file, as one atomic mutation. The collection
// stays gap-free with unique names; subscribers see a single notification.
func (p *Project) MoveFileAfter(sourceName, targetName string) error {
	if sourceName == PinnedFileName {
		return fmt.Errorf("move file: %q is pinned", sourceName)
	}
	if sourceName == targetName {
		return fmt.Errorf("move file: source and target are the same")
	}
	src := p.indexOf(sourceName)
	if src < 0 {
		return fmt.Errorf("move file: %q not found", sourceName)
	}
	moved := p.files[src]
	rest := append(append([]File{}, p.files[:src]...), p.files[src+1:]...)
	tgt := -1
	for i, f := range rest {
		if f.Name == targetName {
			tgt = i
			break
		}
	}
	if tgt < 0 {
		return fmt.Errorf("move file: %q not found", targetName)
	}
	out := make([]File, 0, len(p.files))
	out = append(out, rest[:tgt+1]...)
	out = append(out, moved)
	out = append(out, rest[tgt+1:]...)
	p.files = out
	p.pinFirst()
	p.notify(false)
	return nil
}

// Subscribe registers a change listener and returns its cancel func.
func (p *Project) Subscribe(fn func(FilesChanged)) func() {
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	return func() { delete(p.subs, id) }
}

func (p *Project) notify(loaded bool) {
	for _, fn := range p.subs {
		fn(FilesChanged{ProjectLoaded: loaded})
	}
}

func (p *Project) indexOf(name string) int {
	for i, f := range p.files {
		if f.Name == name {
			return i
		}
	}
	return -1
}

func (p *Project) pinFirst() {
	idx := p.indexOf(PinnedFileName)
	if idx <= 0 {
		return
	}
	pinned := p.files[idx]
	p.files = append(p.files[:idx], p.files[idx+1:]...)
	p.files = append([]File{pinned}, p.files...)
}

func (p *Project) ensureSelected() {
	for _, f := range p.files {
		if f.Selected && !f.Hidden {
			return
		}
	}
	for i := range p.files {
		if !p.files[i].Hidden {
			p.files[i].Selected = true
			return
		}
	}
}
