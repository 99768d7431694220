package cycle_test

import (
	"testing"

	"github.com/lumen-shell/lumen/internal/domain/entity"
	"github.com/lumen-shell/lumen/internal/shell/cycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(n int) []entity.CandidateWindow {
	out := make([]entity.CandidateWindow, n)
	for i := range out {
		out[i] = entity.CandidateWindow{
			WindowInfo: entity.WindowInfo{
				ID:            entity.WindowID(rune('a' + i)),
				StackPosition: i,
			},
		}
	}
	return out
}

func minimizedCandidates(n int) []entity.CandidateWindow {
	out := candidates(n)
	for i := range out {
		out[i].Minimized = true
	}
	return out
}

func TestList_StepBy_OpeningStepLandsOnSecondWindow(t *testing.T) {
	l := cycle.NewList(candidates(3), entity.ModeAllDesks, 7)

	l.StepBy(entity.Forward)

	assert.Equal(t, 1, l.CurrentIndex())
}

func TestList_StepBy_WrapsForward(t *testing.T) {
	l := cycle.NewList(candidates(3), entity.ModeAllDesks, 7)

	for i := 0; i < 3; i++ {
		l.StepBy(entity.Forward)
	}

	assert.Equal(t, 0, l.CurrentIndex())
}

func TestList_StepBy_WrapsBackwardFromStart(t *testing.T) {
	l := cycle.NewList(candidates(3), entity.ModeAllDesks, 7)

	l.StepBy(entity.Backward)

	assert.Equal(t, 2, l.CurrentIndex())
}

func TestList_StepBy_FullLoopReturnsToStart(t *testing.T) {
	l := cycle.NewList(candidates(5), entity.ModeAllDesks, 7)

	start := l.CurrentIndex()
	for i := 0; i < 5; i++ {
		l.StepBy(entity.Forward)
	}

	assert.Equal(t, start, l.CurrentIndex())
}

func TestList_StepBy_ForwardThenBackwardCancelsOut(t *testing.T) {
	l := cycle.NewList(candidates(4), entity.ModeAllDesks, 7)

	l.StepBy(entity.Forward)
	l.StepBy(entity.Forward)
	l.StepBy(entity.Backward)

	assert.Equal(t, 1, l.CurrentIndex())
}

func TestList_StepBy_AllMinimizedOpeningStepStaysPut(t *testing.T) {
	l := cycle.NewList(minimizedCandidates(3), entity.ModeAllDesks, 7)

	l.StepBy(entity.Forward)
	assert.Equal(t, 0, l.CurrentIndex(), "opening step has no frontmost window to step away from")

	l.StepBy(entity.Forward)
	assert.Equal(t, 1, l.CurrentIndex(), "later steps advance normally")
}

func TestList_StepBy_AllMinimizedBackwardOpeningStepWraps(t *testing.T) {
	l := cycle.NewList(minimizedCandidates(3), entity.ModeAllDesks, 7)

	l.StepBy(entity.Backward)

	assert.Equal(t, 2, l.CurrentIndex())
}

func TestList_StepBy_EmptyListIsNoop(t *testing.T) {
	l := cycle.NewList(nil, entity.ModeAllDesks, 7)

	l.StepBy(entity.Forward)

	assert.Equal(t, 0, l.CurrentIndex())
	assert.Nil(t, l.Target())
}

func TestList_StepBy_SingleWindowStaysStable(t *testing.T) {
	l := cycle.NewList(candidates(1), entity.ModeAllDesks, 7)

	for i := 0; i < 4; i++ {
		l.StepBy(entity.Forward)
		assert.Equal(t, 0, l.CurrentIndex())
	}
}

func TestList_Target_ReturnsHighlightedWindow(t *testing.T) {
	windows := candidates(3)
	l := cycle.NewList(windows, entity.ModeAllDesks, 7)

	l.StepBy(entity.Forward)

	target := l.Target()
	require.NotNil(t, target)
	assert.Equal(t, windows[1].ID, target.ID)
}

func TestList_JumpToIndex(t *testing.T) {
	l := cycle.NewList(candidates(4), entity.ModeAllDesks, 7)

	l.JumpToIndex(2)
	assert.Equal(t, 2, l.CurrentIndex())

	l.JumpToIndex(-1)
	assert.Equal(t, 2, l.CurrentIndex(), "negative index ignored")

	l.JumpToIndex(4)
	assert.Equal(t, 2, l.CurrentIndex(), "out-of-range index ignored")
}

func TestList_JumpToIndex_SuppressesOpeningStepSpecialCase(t *testing.T) {
	l := cycle.NewList(minimizedCandidates(3), entity.ModeAllDesks, 7)

	l.JumpToIndex(1)
	l.StepBy(entity.Forward)

	assert.Equal(t, 2, l.CurrentIndex())
}

func TestList_AllMinimized(t *testing.T) {
	assert.False(t, cycle.NewList(nil, entity.ModeAllDesks, 7).AllMinimized())
	assert.False(t, cycle.NewList(candidates(2), entity.ModeAllDesks, 7).AllMinimized())
	assert.True(t, cycle.NewList(minimizedCandidates(2), entity.ModeAllDesks, 7).AllMinimized())

	mixed := candidates(2)
	mixed[0].Minimized = true
	assert.False(t, cycle.NewList(mixed, entity.ModeAllDesks, 7).AllMinimized())
}

func TestList_ScrollBy_ClampsToContentBounds(t *testing.T) {
	l := cycle.NewList(candidates(10), entity.ModeAllDesks, 7)

	l.ScrollBy(-2)
	assert.Equal(t, 0.0, l.ScrollOffset(), "no overscroll before the first item")

	l.ScrollBy(100)
	assert.Equal(t, 3.0, l.ScrollOffset(), "last item stops at the trailing edge")

	l.ScrollBy(-1.5)
	assert.Equal(t, 1.5, l.ScrollOffset())
}

func TestList_ScrollBy_ShortListNeverScrolls(t *testing.T) {
	l := cycle.NewList(candidates(3), entity.ModeAllDesks, 7)

	l.ScrollBy(2)

	assert.Equal(t, 0.0, l.ScrollOffset())
}

func TestList_SnapSelectionToScroll(t *testing.T) {
	l := cycle.NewList(candidates(10), entity.ModeAllDesks, 7)

	l.ScrollBy(2.4)
	l.SnapSelectionToScroll()
	assert.Equal(t, 2, l.CurrentIndex())

	l.ScrollBy(0.2)
	l.SnapSelectionToScroll()
	assert.Equal(t, 3, l.CurrentIndex(), "rounds to the nearest item")
}

func TestList_Replace_ReconcilesToSecondWindow(t *testing.T) {
	l := cycle.NewList(candidates(5), entity.ModeAllDesks, 7)
	l.JumpToIndex(4)

	l.Replace(candidates(3), entity.ModeCurrentDesk)

	assert.Equal(t, 1, l.CurrentIndex())
	assert.Equal(t, entity.ModeCurrentDesk, l.Mode())
	assert.Equal(t, 3, l.Len())
}

func TestList_Replace_SingleCandidateSelectsIt(t *testing.T) {
	l := cycle.NewList(candidates(5), entity.ModeAllDesks, 7)
	l.JumpToIndex(3)

	l.Replace(candidates(1), entity.ModeCurrentDesk)

	assert.Equal(t, 0, l.CurrentIndex())
}

func TestList_Replace_AllMinimizedSelectsFirst(t *testing.T) {
	l := cycle.NewList(candidates(5), entity.ModeAllDesks, 7)
	l.StepBy(entity.Forward)

	l.Replace(minimizedCandidates(4), entity.ModeCurrentDesk)

	assert.Equal(t, 0, l.CurrentIndex())
}

func TestList_Replace_EmptyListKeepsNilTarget(t *testing.T) {
	l := cycle.NewList(candidates(5), entity.ModeAllDesks, 7)
	l.StepBy(entity.Forward)

	l.Replace(nil, entity.ModeCurrentDesk)

	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Target())
}

func TestList_Replace_ReclampsScrollOffset(t *testing.T) {
	l := cycle.NewList(candidates(20), entity.ModeAllDesks, 7)
	l.ScrollBy(13)
	require.Equal(t, 13.0, l.ScrollOffset())

	l.Replace(candidates(9), entity.ModeCurrentDesk)

	assert.Equal(t, 2.0, l.ScrollOffset())
}

func TestList_FocusTabSlider(t *testing.T) {
	l := cycle.NewList(candidates(2), entity.ModeAllDesks, 7)

	assert.False(t, l.TabSliderFocused())
	l.FocusTabSlider(true)
	assert.True(t, l.TabSliderFocused())
	l.FocusTabSlider(false)
	assert.False(t, l.TabSliderFocused())
}

func TestList_NewList_SmallViewportFallsBackToShowingAll(t *testing.T) {
	l := cycle.NewList(candidates(4), entity.ModeAllDesks, 0)

	l.ScrollBy(5)

	assert.Equal(t, 0.0, l.ScrollOffset())
}
