package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sandpad/internal/project"
)

// ---------------------------------------------------------------------------
// File-picker item (implements list.Item)
// ---------------------------------------------------------------------------

type fileItem struct {
	name   string
	label  string
	hidden bool
}

func (f fileItem) Title() string       { return f.label }
func (f fileItem) Description() string { return "" }
func (f fileItem) FilterValue() string { return f.name }

type fileItemDelegate struct{}

func (d fileItemDelegate) Height() int  { return 1 }
func (d fileItemDelegate) Spacing() int { return 0 }
func (d fileItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d fileItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(fileItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render("> ")
	}
	line := prefix + entry.label
	if entry.hidden {
		line += hiddenMarkStyle.Render(" (hidden)")
	}
	fmt.Fprint(w, padRight(line, m.Width()))
}

func newFileList() list.Model {
	l := list.New([]list.Item{}, fileItemDelegate{}, 0, 0)
	l.Title = "Files"
	l.Styles.Title = titleStyle
	l.Styles.NoItems = lipgloss.NewStyle()
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

// ---------------------------------------------------------------------------
// Query ranking
// ---------------------------------------------------------------------------

// rankFiles orders the full file set against a typed query. Substring
// matches come first in collection order; everything else follows by edit
// distance, so a typo like "stlye" still surfaces style.css near the top.
// An empty query keeps collection order.
func rankFiles(files []project.File, query string) []list.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	type scored struct {
		item fileItem
		rank int
		dist int
		pos  int
	}
	rows := make([]scored, 0, len(files))
	for i, f := range files {
		name := strings.ToLower(f.Name)
		s := scored{
			item: fileItem{name: f.Name, label: f.DisplayName(), hidden: f.Hidden},
			pos:  i,
		}
		switch {
		case q == "" || strings.Contains(name, q):
			s.rank = 0
		default:
			s.rank = 1
			s.dist = levenshtein.ComputeDistance(name, q)
		}
		rows = append(rows, s)
	}
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].rank != rows[b].rank {
			return rows[a].rank < rows[b].rank
		}
		if rows[a].rank == 1 && rows[a].dist != rows[b].dist {
			return rows[a].dist < rows[b].dist
		}
		return rows[a].pos < rows[b].pos
	})
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = r.item
	}
	return items
}
