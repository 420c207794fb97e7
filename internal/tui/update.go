package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"sandpad/internal/database"
	"sandpad/internal/database/repository"
	"sandpad/internal/project"
	"sandpad/internal/tabbar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case persistDoneMsg:
		return m.handlePersistDone(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizePicker()
		// The first frame exists now; complete the deferred editor binding.
		m.bridge.ResolveEditor()
		m.refreshLayout()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		switch m.mode {
		case modeMain:
			return m.updateMain(msg)
		case modePicker:
			return m.updatePicker(msg)
		default:
			return m.updateModal(msg)
		}
	}
	return m, nil
}

func (m Model) handlePersistDone(msg persistDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.WithError(msg.err).WithField("op", msg.op).Error("persist failed")
		m.status = fmt.Sprintf("save failed (%s): %v", msg.op, msg.err)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Pointer gestures
// ---------------------------------------------------------------------------

// handleMouse translates terminal mouse events into drag-controller events.
// The controller itself stays pure; this adapter owns the mapping from
// screen cells to visible tab indices.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeMain {
		return m, nil
	}
	visible := m.proj.VisibleFiles()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.ed.ScrollBy(-3, m.editorHeight())
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.ed.ScrollBy(3, m.editorHeight())
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y != tabStripRow {
			return m, nil
		}
		idx := hitTab(m.bounds, msg.X)
		if idx < 0 || idx >= len(visible) {
			return m, nil
		}
		// A press both selects the tab and arms a drag gesture.
		m.bridge.SelectFile(visible[idx].Name)
		m.drag, _ = tabbar.Transition(m.drag, tabbar.Start{Source: idx}, visible)
		m.hoverBounds = m.bounds[idx]
		m.refreshLayout()
		return m, nil

	case msg.Action == tea.MouseActionMotion:
		if msg.Y == tabStripRow {
			if idx := hitTab(m.bounds, msg.X); idx >= 0 {
				m.drag, _ = tabbar.Transition(m.drag, tabbar.Over{
					Candidate: idx,
					PointerX:  msg.X,
					Bounds:    m.bounds[idx],
				}, visible)
				m.hoverBounds = m.bounds[idx]
				return m, nil
			}
		}
		m.drag, _ = tabbar.Transition(m.drag, tabbar.Leave{
			PointerX: msg.X,
			Bounds:   m.hoverBounds,
		}, visible)
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		if !m.drag.Active() {
			return m, nil
		}
		if msg.Y != tabStripRow {
			m.drag, _ = tabbar.Transition(m.drag, tabbar.End{}, visible)
			return m, nil
		}
		var cmd *tabbar.Command
		m.drag, cmd = tabbar.Transition(m.drag, tabbar.Drop{}, visible)
		if cmd != nil {
			m.applyReorder(*cmd, visible)
		}
		return m, nil
	}
	return m, nil
}

// applyReorder resolves the drop command's visible indices to names and
// issues the single atomic move. Order is an in-memory property only, so
// there is nothing to persist.
func (m *Model) applyReorder(cmd tabbar.Command, visible []project.File) {
	if cmd.Source >= len(visible) || cmd.Target >= len(visible) {
		return
	}
	source := visible[cmd.Source].Name
	target := visible[cmd.Target].Name
	if err := m.proj.MoveFileAfter(source, target); err != nil {
		m.log.WithError(err).Error("reorder rejected")
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("moved %s after %s", source, target)
	m.refreshLayout()
}

// ---------------------------------------------------------------------------
// Main-mode keys
// ---------------------------------------------------------------------------

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewFile):
		m.mode = modeNewFile
		m.inputBuffer = ""
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		name := m.bridge.State().ActiveFileName
		if name == "" {
			return m, nil
		}
		if name == project.PinnedFileName {
			m.status = fmt.Sprintf("%s cannot be renamed", name)
			return m, nil
		}
		m.mode = modeRename
		m.renaming = name
		m.inputBuffer = name
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		name := m.bridge.State().ActiveFileName
		if name == "" {
			return m, nil
		}
		if name == project.PinnedFileName {
			m.status = fmt.Sprintf("%s cannot be deleted", name)
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.deleting = name
		return m, nil

	case key.Matches(msg, m.keys.Hide):
		return m.hideActive()

	case key.Matches(msg, m.keys.Picker):
		m.openPicker()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)
		return m, nil

	case key.Matches(msg, m.keys.UpDown):
		delta := 1
		if msg.String() == "up" {
			delta = -1
		}
		m.ed.ScrollBy(delta, m.editorHeight())
		return m, nil
	}
	return m, nil
}

func (m *Model) cycleTab(step int) {
	visible := m.proj.VisibleFiles()
	if len(visible) == 0 {
		return
	}
	cur := 0
	for i, f := range visible {
		if f.Name == m.bridge.State().ActiveFileName {
			cur = i
			break
		}
	}
	next := (cur + step + len(visible)) % len(visible)
	m.bridge.SelectFile(visible[next].Name)
	m.refreshLayout()
}

func (m Model) hideActive() (tea.Model, tea.Cmd) {
	name := m.bridge.State().ActiveFileName
	if name == "" {
		return m, nil
	}
	if err := m.proj.SetHidden(name, true); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = fmt.Sprintf("hid %s", name)
	m.refreshLayout()
	repo, target := m.repo, name
	return m, m.persist("hide", func(ctx context.Context) error {
		return repo.SetHidden(ctx, target, true, database.Now())
	})
}

// ---------------------------------------------------------------------------
// Modal input (new file / rename / confirm delete)
// ---------------------------------------------------------------------------

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMain
		m.inputBuffer = ""
		m.renaming = ""
		m.deleting = ""
		return m, nil
	case "enter":
		return m.commitModal()
	case "y":
		if m.mode == modeConfirmDelete {
			return m.commitModal()
		}
	case "n":
		if m.mode == modeConfirmDelete {
			m.mode = modeMain
			m.deleting = ""
			return m, nil
		}
	case "backspace":
		if len(m.inputBuffer) > 0 {
			m.inputBuffer = m.inputBuffer[:len(m.inputBuffer)-1]
		}
		return m, nil
	}
	if m.mode != modeConfirmDelete && msg.Type == tea.KeyRunes {
		m.inputBuffer += string(msg.Runes)
	}
	return m, nil
}

func (m Model) commitModal() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeNewFile:
		name := strings.TrimSpace(m.inputBuffer)
		m.mode = modeMain
		m.inputBuffer = ""
		if name == "" {
			return m, nil
		}
		f := project.File{ID: uuid.NewString(), Name: name}
		if err := m.proj.Add(f); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.bridge.SelectFile(name)
		m.status = fmt.Sprintf("created %s", name)
		m.refreshLayout()
		repo := m.repo
		return m, m.persist("create", func(ctx context.Context) error {
			now := database.Now()
			return repo.Upsert(ctx, fileRecord(f, now))
		})

	case modeRename:
		newName := strings.TrimSpace(m.inputBuffer)
		oldName := m.renaming
		m.mode = modeMain
		m.inputBuffer = ""
		m.renaming = ""
		if newName == "" || newName == oldName {
			return m, nil
		}
		// Capture before the rename: the recovery pass that runs on the
		// change notification no longer sees the old name.
		wasActive := m.bridge.State().ActiveFileName == oldName
		if err := m.proj.Rename(oldName, newName); err != nil {
			m.status = err.Error()
			return m, nil
		}
		// Renaming the active file keeps it active under its new name.
		if wasActive {
			m.bridge.SelectFile(newName)
		}
		m.status = fmt.Sprintf("renamed %s to %s", oldName, newName)
		m.refreshLayout()
		repo := m.repo
		return m, m.persist("rename", func(ctx context.Context) error {
			return repo.Rename(ctx, oldName, newName, database.Now())
		})

	case modeConfirmDelete:
		name := m.deleting
		m.mode = modeMain
		m.deleting = ""
		if err := m.proj.Remove(name); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("deleted %s", name)
		m.refreshLayout()
		repo := m.repo
		return m, m.persist("delete", func(ctx context.Context) error {
			return repo.Delete(ctx, name)
		})
	}
	m.mode = modeMain
	return m, nil
}

// ---------------------------------------------------------------------------
// Picker mode
// ---------------------------------------------------------------------------

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMain
		m.pickerQuery = ""
		return m, nil
	case "enter":
		item, ok := m.fileList.SelectedItem().(fileItem)
		if !ok {
			m.mode = modeMain
			return m, nil
		}
		m.mode = modeMain
		m.pickerQuery = ""
		return m.jumpToFile(item)
	case "up", "down", "ctrl+p", "ctrl+n":
		var cmd tea.Cmd
		m.fileList, cmd = m.fileList.Update(msg)
		return m, cmd
	case "backspace":
		if len(m.pickerQuery) > 0 {
			m.pickerQuery = m.pickerQuery[:len(m.pickerQuery)-1]
			m.fileList.SetItems(rankFiles(m.proj.Files(), m.pickerQuery))
			m.fileList.Select(0)
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.pickerQuery += string(msg.Runes)
		m.fileList.SetItems(rankFiles(m.proj.Files(), m.pickerQuery))
		m.fileList.Select(0)
	}
	return m, nil
}

// jumpToFile activates the chosen file, unhiding it first when needed so
// the selection lands on a visible tab.
func (m Model) jumpToFile(item fileItem) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if item.hidden {
		if err := m.proj.SetHidden(item.name, false); err != nil {
			m.status = err.Error()
			return m, nil
		}
		repo, name := m.repo, item.name
		cmd = m.persist("unhide", func(ctx context.Context) error {
			return repo.SetHidden(ctx, name, false, database.Now())
		})
	}
	m.bridge.SelectFile(item.name)
	m.refreshLayout()
	return m, cmd
}

// fileRecord maps a project file to its storage row.
func fileRecord(f project.File, now time.Time) repository.FileRecord {
	return repository.FileRecord{
		ID:        f.ID,
		Name:      f.Name,
		Label:     f.Label,
		Hidden:    f.Hidden,
		Selected:  f.Selected,
		Content:   f.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
