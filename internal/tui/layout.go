package tui

import (
	"sandpad/internal/project"
	"sandpad/internal/tabbar"
)

// tabStripRow is the terminal row the tab strip is painted on. Pointer
// events are only interpreted as tab gestures on this row.
const tabStripRow = 0

// tabSepWidth is the width of the separator cell painted between tabs.
const tabSepWidth = 1

// tabLabel is the text shown on a tab. Hidden files never reach the strip,
// so only the display name and a width clamp apply.
func tabLabel(f project.File, maxWidth int) string {
	name := f.DisplayName()
	if maxWidth > 3 && len(name) > maxWidth {
		return name[:maxWidth-1] + "…"
	}
	return name
}

// layoutTabs computes the horizontal extent of every visible tab. The
// rendered strip and the pointer hit-testing both derive from these bounds,
// so the two can never disagree. Each tab is its label plus one cell of
// padding on either side; tabs are separated by one separator cell.
func layoutTabs(visible []project.File, maxWidth int) []tabbar.TabBounds {
	bounds := make([]tabbar.TabBounds, len(visible))
	x := 0
	for i, f := range visible {
		w := len([]rune(tabLabel(f, maxWidth))) + 2
		bounds[i] = tabbar.TabBounds{X: x, Width: w}
		x += w + tabSepWidth
	}
	return bounds
}

// hitTab returns the index of the tab containing the pointer column, or -1
// when the pointer is over no tab (separators and trailing space included).
func hitTab(bounds []tabbar.TabBounds, x int) int {
	for i, b := range bounds {
		if b.Contains(x) {
			return i
		}
	}
	return -1
}
