// Package cycle implements the window-cycling session: the ordered candidate
// list and the controller state machine that drives it.
package cycle

import (
	"math"

	"github.com/lumen-shell/lumen/internal/domain/entity"
)

// List owns the ordered cycle candidates, the current index, the desk-scope
// mode, the tab-slider focus flag and the visual scroll offset of the preview
// strip. It is mutated only by the owning Controller; the event filter always
// goes through Controller operations.
type List struct {
	windows       []entity.CandidateWindow
	index         int
	mode          entity.CycleMode
	sliderFocused bool

	// stepped flips on the first StepBy so the all-minimized special case
	// only applies to the opening step of a session.
	stepped bool

	// scrollOffset is the preview strip pan position in item units,
	// clamped so the last item's trailing edge never passes the viewport.
	scrollOffset float64
	visibleItems int
}

// NewList creates a list over a freshly built candidate snapshot.
// visibleItems is the preview strip viewport capacity; values below one fall
// back to showing everything.
func NewList(windows []entity.CandidateWindow, mode entity.CycleMode, visibleItems int) *List {
	if visibleItems < 1 {
		visibleItems = len(windows)
	}
	return &List{
		windows:      windows,
		mode:         mode,
		visibleItems: visibleItems,
	}
}

// Len returns the number of candidates.
func (l *List) Len() int {
	return len(l.windows)
}

// Windows returns the ordered candidate snapshot.
func (l *List) Windows() []entity.CandidateWindow {
	return l.windows
}

// Mode returns the current desk-scope mode.
func (l *List) Mode() entity.CycleMode {
	return l.mode
}

// CurrentIndex returns the highlighted index. Meaningless when Len is zero.
func (l *List) CurrentIndex() int {
	return l.index
}

// Target returns the currently highlighted window, or nil when the list is
// empty.
func (l *List) Target() *entity.CandidateWindow {
	if len(l.windows) == 0 {
		return nil
	}
	return &l.windows[l.index]
}

// AllMinimized reports whether every candidate is minimized. An empty list
// reports false.
func (l *List) AllMinimized() bool {
	if len(l.windows) == 0 {
		return false
	}
	for _, w := range l.windows {
		if !w.Minimized {
			return false
		}
	}
	return true
}

// StepBy moves the current index by one in the given direction, wrapping at
// both ends. Every entry is a valid stop, minimized windows included.
//
// The opening step of a session normally lands on index 1, the natural
// "next" window after the frontmost one. When every candidate is minimized
// there is no frontmost window to step away from, so the opening step stays
// on index 0.
func (l *List) StepBy(direction entity.Direction) {
	if len(l.windows) == 0 {
		return
	}
	first := !l.stepped
	l.stepped = true
	if first && direction == entity.Forward && l.AllMinimized() {
		l.index = 0
		return
	}
	l.index = wrapIndex(l.index+int(direction), len(l.windows))
}

// JumpToIndex sets the current index directly. Out-of-range indices are
// ignored. Jumping has no side effect on the visual scroll position.
func (l *List) JumpToIndex(index int) {
	if index < 0 || index >= len(l.windows) {
		return
	}
	l.stepped = true
	l.index = index
}

// FocusTabSlider moves keyboard focus onto or off of the mode-selector
// control.
func (l *List) FocusTabSlider(focused bool) {
	l.sliderFocused = focused
}

// TabSliderFocused reports whether the tab slider has keyboard focus.
func (l *List) TabSliderFocused() bool {
	return l.sliderFocused
}

// ScrollBy pans the preview strip by the given number of item widths without
// changing the selection. The offset is clamped so there is no overscroll
// past the content on either side.
func (l *List) ScrollBy(items float64) {
	l.scrollOffset = clampFloat(l.scrollOffset+items, 0, l.maxScroll())
}

// ScrollOffset returns the pan position of the preview strip in item units.
func (l *List) ScrollOffset() float64 {
	return l.scrollOffset
}

// SnapSelectionToScroll snaps the current index to the item at the leading
// edge of the panned viewport. Used once a scroll gesture crosses its
// per-gesture distance threshold.
func (l *List) SnapSelectionToScroll() {
	if len(l.windows) == 0 {
		return
	}
	l.stepped = true
	l.index = clampInt(int(math.Round(l.scrollOffset)), 0, len(l.windows)-1)
}

// Replace swaps in a freshly rebuilt candidate snapshot and reconciles the
// highlighted target: the new index is 1 (the natural next window after the
// frontmost one) when at least two candidates exist and not all of them are
// minimized, otherwise 0. The scroll offset is re-clamped to the new bounds.
func (l *List) Replace(windows []entity.CandidateWindow, mode entity.CycleMode) {
	l.windows = windows
	l.mode = mode
	l.stepped = true

	if len(windows) >= 2 && !l.AllMinimized() {
		l.index = 1
	} else {
		l.index = 0
	}
	l.scrollOffset = clampFloat(l.scrollOffset, 0, l.maxScroll())
}

// maxScroll is the clamp bound keeping the last item's trailing edge at the
// viewport's trailing edge.
func (l *List) maxScroll() float64 {
	m := len(l.windows) - l.visibleItems
	if m < 0 {
		m = 0
	}
	return float64(m)
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
