// Package editor holds the display-only code pane the tab bar binds the
// active file to. The pane is opaque to the tab core except for its
// filename field; content editing is handled elsewhere in the playground.
package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// Editor renders one file's content under the filename the tab bar pushed.
type Editor struct {
	filename string
	content  string
	scroll   int
}

func New() *Editor {
	return &Editor{}
}

// SetFilename rebinds the pane to a file. An empty name means no file is
// active; the pane shows a placeholder instead of stale content.
func (e *Editor) SetFilename(name string) {
	if name != e.filename {
		e.scroll = 0
	}
	e.filename = name
}

func (e *Editor) Filename() string { return e.filename }

// SetContent replaces the displayed text. The caller looks the content up
// by the bound filename; the editor itself never reads the project.
func (e *Editor) SetContent(content string) {
	e.content = content
}

// ScrollBy moves the viewport, clamped to the content.
func (e *Editor) ScrollBy(delta, height int) {
	lines := strings.Count(e.content, "\n") + 1
	e.scroll += delta
	if max := lines - height; e.scroll > max {
		e.scroll = max
	}
	if e.scroll < 0 {
		e.scroll = 0
	}
}

// View renders the pane at the given outer size.
func (e *Editor) View(width, height int) string {
	innerW := width - frameStyle.GetHorizontalFrameSize()
	innerH := height - frameStyle.GetVerticalFrameSize() - 1 // title line
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 1 {
		innerH = 1
	}

	title := titleStyle.Render(e.filename)
	if e.filename == "" {
		title = emptyStyle.Render("no file")
	}

	var body string
	if e.filename == "" {
		body = emptyStyle.Render("Select a tab to view a file.")
	} else {
		body = e.renderContent(innerW, innerH)
	}
	return frameStyle.Width(innerW).Render(title + "\n" + body)
}

func (e *Editor) renderContent(width, height int) string {
	lines := strings.Split(e.content, "\n")
	start := e.scroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%3d ", i+1)))
		b.WriteString(truncate(lines[i], width-4))
	}
	if end == start {
		b.WriteString(emptyStyle.Render("(empty file)"))
	}
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

// Registry resolves editor identifiers for the tab bridge's deferred
// binding. Panes register when the UI creates them.
type Registry struct {
	editors map[string]*Editor
}

func NewRegistry() *Registry {
	return &Registry{editors: map[string]*Editor{}}
}

func (r *Registry) Register(id string, e *Editor) {
	r.editors[id] = e
}

func (r *Registry) Lookup(id string) (*Editor, bool) {
	e, ok := r.editors[id]
	return e, ok
}
