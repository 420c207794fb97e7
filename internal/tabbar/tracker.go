package tabbar

import "sandpad/internal/project"

// Recover derives which file is active after the visible sequence changed.
// The name is authoritative for identity; the index is only a position
// memory used when the name no longer resolves.
//
// Order of precedence:
//  1. On a whole-project load, the first file carrying the Selected hint wins.
//  2. A file still carrying the previous active name keeps the selection,
//     with the index refreshed to its current position.
//  3. Otherwise the nearest file left of the remembered position is chosen
//     (the deletion case).
//  4. With no candidate at all the active name is empty and the index resets
//     to 0 — a valid terminal state, not an error.
func Recover(visible []project.File, prevName string, prevIndex int, justLoaded bool) (string, int) {
	if justLoaded {
		for i, f := range visible {
			if f.Selected {
				return f.Name, i
			}
		}
	}
	if prevName != "" {
		for i, f := range visible {
			if f.Name == prevName {
				return f.Name, i
			}
		}
	}
	i := prevIndex - 1
	if i > len(visible)-1 {
		i = len(visible) - 1
	}
	if i >= 0 {
		return visible[i].Name, i
	}
	return "", 0
}
