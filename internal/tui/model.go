package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"sandpad/internal/config"
	"sandpad/internal/database/repository"
	"sandpad/internal/editor"
	"sandpad/internal/project"
	"sandpad/internal/tabbar"
)

const appName = "sandpad"

// mainEditorID is the identifier the tab bridge resolves against the
// editor registry once the first frame has been laid out.
const mainEditorID = "editor-main"

// ---------------------------------------------------------------------------
// UI modes
// ---------------------------------------------------------------------------

type uiMode string

const (
	modeMain          uiMode = "main"
	modeNewFile       uiMode = "newFile"
	modeRename        uiMode = "renameFile"
	modeConfirmDelete uiMode = "confirmDelete"
	modePicker        uiMode = "picker"
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type persistDoneMsg struct {
	op  string
	err error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the top-level Bubble Tea model. All state mutation happens on
// the single Update goroutine; none of the collaborators need locking.
type Model struct {
	ctx  context.Context
	cfg  config.Config
	log  *logrus.Logger
	repo *repository.FileRepo

	proj     *project.Project
	bridge   *tabbar.Bridge
	registry *editor.Registry
	ed       *editor.Editor

	drag        tabbar.DragSession
	bounds      []tabbar.TabBounds
	hoverBounds tabbar.TabBounds

	keys      keyMap
	modalKeys modalKeyMap

	mode        uiMode
	inputBuffer string
	renaming    string
	deleting    string

	fileList    list.Model
	pickerQuery string

	status string
	width  int
	height int
	ready  bool
}

// NewModel wires the collaborators together. The project is expected to be
// loaded already; the bridge derives the initial selection on Attach.
func NewModel(ctx context.Context, cfg config.Config, log *logrus.Logger, repo *repository.FileRepo, proj *project.Project) Model {
	reg := editor.NewRegistry()
	ed := editor.New()
	reg.Register(mainEditorID, ed)

	bridge := tabbar.NewBridge(nil)
	bridge.BindEditorID(mainEditorID, func(id string) (tabbar.Editor, bool) {
		e, ok := reg.Lookup(id)
		if !ok {
			return nil, false
		}
		return e, true
	})
	bridge.Attach(proj)

	m := Model{
		ctx:       ctx,
		cfg:       cfg,
		log:       log,
		repo:      repo,
		proj:      proj,
		bridge:    bridge,
		registry:  reg,
		ed:        ed,
		drag:      tabbar.IdleSession(),
		keys:      newKeyMap(),
		modalKeys: modalKeyMap{keyMap: newKeyMap()},
		mode:      modeMain,
		fileList:  newFileList(),
	}
	m.refreshLayout()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshLayout recomputes tab geometry and pushes the active file's
// content into the editor. Called after every collection mutation and
// selection change; the visible sequence is re-read each time.
func (m *Model) refreshLayout() {
	visible := m.proj.VisibleFiles()
	m.bounds = layoutTabs(visible, m.cfg.UI.TabMaxWidth)

	name := m.bridge.State().ActiveFileName
	if name == "" {
		m.ed.SetContent("")
		return
	}
	if f, ok := m.proj.FileByName(name); ok {
		m.ed.SetContent(f.Content)
	}
}

// persist runs one repository write off the update loop.
func (m Model) persist(op string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return persistDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m *Model) openPicker() {
	m.mode = modePicker
	m.pickerQuery = ""
	m.fileList.SetItems(rankFiles(m.proj.Files(), ""))
	m.fileList.Select(0)
	m.resizePicker()
}

func (m *Model) resizePicker() {
	w := m.width - 8
	if w < 20 {
		w = 20
	}
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	if h > 14 {
		h = 14
	}
	m.fileList.SetSize(w, h)
}
