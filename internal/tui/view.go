package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return statusBarStyle.Render("loading…")
	}

	strip := m.renderTabStrip()
	body := m.ed.View(m.width, m.editorHeight())
	statusLine := m.renderStatus(m.status)
	footer := m.renderFooter(m.footerBindings())

	if m.mode != modeMain {
		body = m.composeModal()
	}

	return strip + "\n" + body + "\n" + statusLine + "\n" + footer
}

// editorHeight is the body height left after the tab strip, the status
// line and the footer.
func (m Model) editorHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// renderTabStrip paints the tab bar. The widths come from the same labels
// layoutTabs measured, so pointer hit-testing matches what is on screen.
func (m Model) renderTabStrip() string {
	visible := m.proj.VisibleFiles()
	if len(visible) == 0 {
		return inactiveTabStyle.Render("no files")
	}
	active := m.bridge.State().ActiveFileName

	var b strings.Builder
	for i, f := range visible {
		label := tabLabel(f, m.cfg.UI.TabMaxWidth)
		style := inactiveTabStyle
		switch {
		case m.drag.Active() && i == m.drag.Source:
			style = draggingTabStyle
		case f.Name == active:
			style = activeTabStyle
		case !m.drag.Active() && i == m.drag.Hover:
			style = hoverTabStyle
		}
		b.WriteString(style.Render(label))
		if i < len(visible)-1 {
			// The separator after tab i doubles as the insertion caret
			// when a drop would land right after it.
			if m.drag.HasTarget() && i == m.drag.Target {
				b.WriteString(dropMarkStyle.Render("┃"))
			} else {
				b.WriteString(tabSepStyle.Render("│"))
			}
		}
	}
	line := b.String()
	if m.width > 0 {
		line = padRight(line, m.width)
	}
	return line
}

func (m Model) renderStatus(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if flat == "" {
		flat = appName
	}
	if m.width == 0 {
		return statusBarStyle.Render(flat)
	}
	return statusBarStyle.Width(m.width).Render(flat)
}

func (m Model) footerBindings() []key.Binding {
	if m.mode == modeMain {
		return m.keys.ShortHelp()
	}
	return m.modalKeys.ShortHelp()
}

func (m Model) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

// composeModal renders the active modal centered in the body area.
func (m Model) composeModal() string {
	var content string
	switch m.mode {
	case modeNewFile:
		content = titleStyle.Render("New file") + "\n\n" + m.renderInput()
	case modeRename:
		content = titleStyle.Render(fmt.Sprintf("Rename %s", m.renaming)) + "\n\n" + m.renderInput()
	case modeConfirmDelete:
		content = titleStyle.Render("Delete file") + "\n\n" +
			fmt.Sprintf("Delete %s? ", m.deleting) +
			errorStyle.Render("y") + "/" + helpDescStyle.Render("n")
	case modePicker:
		query := m.pickerQuery
		if query == "" {
			query = hiddenMarkStyle.Render("(type to filter)")
		}
		content = titleStyle.Render("Go to file") + "  " + query + "\n" + m.fileList.View()
	}

	box := modalStyle.Render(content)
	if m.width == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.editorHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderInput() string {
	return m.inputBuffer + cursorStyle.Render("▏")
}

// ---------------------------------------------------------------------------
// Text helpers
// ---------------------------------------------------------------------------

// padRight pads a styled line with spaces up to the given display width.
func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
