package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NewFile key.Binding
	Rename  key.Binding
	Delete  key.Binding
	Hide    key.Binding
	Picker  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	UpDown  key.Binding
	Enter   key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NewFile: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new file")),
		Rename:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Hide:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide")),
		Picker:  key.NewBinding(key.WithKeys("/", "p"), key.WithHelp("/", "find file")),
		NextTab: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next file")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev file")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewFile, k.Rename, k.Delete, k.Hide, k.Picker, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NewFile, k.Rename, k.Delete, k.Hide, k.Picker, k.NextTab, k.PrevTab, k.Quit}}
}

type modalKeyMap struct {
	keyMap
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Close}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter, k.Close}}
}
