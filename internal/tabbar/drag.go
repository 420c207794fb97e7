package tabbar

import "sandpad/internal/project"

// none marks an unset index. Index 0 is a legitimate value everywhere in
// this package, so every check is an explicit >= 0 test, never a falsy one.
const none = -1

// TabBounds is the horizontal on-screen extent of one tab, in cells.
type TabBounds struct {
	X     int
	Width int
}

// Contains reports whether the pointer column falls inside the tab.
func (b TabBounds) Contains(x int) bool {
	return x >= b.X && x < b.X+b.Width
}

// leftOfMidpoint splits the tab in half: true means the pointer sits on the
// left side, so a drop would insert before this tab rather than after it.
func (b TabBounds) leftOfMidpoint(x int) bool {
	return x < b.X+b.Width/2
}

// DragSession is the transient state of one drag gesture. Source is the
// visible index being dragged, Target the proposed insert-after index, and
// Hover the tab under the pointer (used to reveal the drag affordance
// before a drag starts). All three are `none` when unset.
type DragSession struct {
	Source int
	Target int
	Hover  int
}

func IdleSession() DragSession {
	return DragSession{Source: none, Target: none, Hover: none}
}

// Active reports whether a drag gesture is in flight.
func (s DragSession) Active() bool { return s.Source >= 0 }

// HasTarget reports whether a valid insertion point is currently proposed.
func (s DragSession) HasTarget() bool { return s.Target >= 0 }

// Command is the single atomic reorder the controller emits on a valid
// drop: move the visible file at Source to immediately after the visible
// file at Target.
type Command struct {
	Source int
	Target int
}

// Event is a pointer-gesture event, produced by a thin adapter over the
// platform's mouse messages.
type Event interface{ isDragEvent() }

// Start begins a drag on the visible tab at Source.
type Start struct{ Source int }

// Over reports the pointer moving across the candidate tab.
type Over struct {
	Candidate int
	PointerX  int
	Bounds    TabBounds
}

// Leave reports the pointer leaving the previously hovered tab. Bounds are
// the hovered tab's; the target is only cleared when the pointer has truly
// exited them, so a leave bubbled from a child element cannot cause flicker.
type Leave struct {
	PointerX int
	Bounds   TabBounds
}

// Drop releases the gesture over the tab strip.
type Drop struct{}

// End cancels the gesture without a drop (pointer capture lost, escape).
type End struct{}

func (Start) isDragEvent() {}
func (Over) isDragEvent()  {}
func (Leave) isDragEvent() {}
func (Drop) isDragEvent()  {}
func (End) isDragEvent()   {}

// Transition applies one event to a drag session and returns the next
// session plus, for a valid drop, the one reorder command to issue. It
// never reads any state besides its arguments; the caller passes the
// current visible sequence, which must be re-read after every mutation.
func Transition(s DragSession, ev Event, visible []project.File) (DragSession, *Command) {
	switch ev := ev.(type) {
	case Start:
		if !canDrag(visible, ev.Source) {
			return s, nil
		}
		s.Source = ev.Source
		s.Target = none
		return s, nil

	case Over:
		if !s.Active() {
			// No drag in flight: just track the hover affordance.
			s.Hover = ev.Candidate
			return s, nil
		}
		if ev.Candidate == s.Source {
			s.Target = none
			return s, nil
		}
		t := ev.Candidate
		if ev.Bounds.leftOfMidpoint(ev.PointerX) {
			t = ev.Candidate - 1
		}
		if !validTarget(t, s.Source, visible) {
			s.Target = none
			return s, nil
		}
		s.Target = t
		return s, nil

	case Leave:
		if ev.Bounds.Contains(ev.PointerX) {
			return s, nil
		}
		s.Target = none
		s.Hover = none
		return s, nil

	case Drop:
		if s.Source >= 0 && s.Target >= 0 {
			cmd := &Command{Source: s.Source, Target: s.Target}
			return IdleSession(), cmd
		}
		return IdleSession(), nil

	case End:
		return IdleSession(), nil
	}
	return s, nil
}

// canDrag gates drag starts: the tab must exist, must not be the pinned
// file, and reordering only makes sense with more than two visible files
// (the pinned file plus one other leaves nothing to reorder).
func canDrag(visible []project.File, source int) bool {
	if source < 0 || source >= len(visible) {
		return false
	}
	if len(visible) <= 2 {
		return false
	}
	return visible[source].Name != project.PinnedFileName
}

// validTarget rejects insertion points that would be identity moves
// (immediately left or right of the source) and anything that would land
// in front of the collection, where the pinned file lives.
func validTarget(target, source int, visible []project.File) bool {
	if target < 0 || target >= len(visible) {
		return false
	}
	if target == source || target == source-1 {
		return false
	}
	return true
}
