package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/lumen-shell/lumen/internal/application/usecase"
	"github.com/lumen-shell/lumen/internal/domain/entity"
	"github.com/lumen-shell/lumen/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "console"})
	return logging.WithContext(context.Background(), logger)
}

type stubWindowSet struct {
	windows []entity.WindowInfo
}

func (s *stubWindowSet) Windows(_ context.Context) []entity.WindowInfo {
	return s.windows
}

type stubHistory map[entity.WindowID]time.Time

func (s stubHistory) LastActivated(id entity.WindowID) (time.Time, bool) {
	t, ok := s[id]
	return t, ok
}

func ids(candidates []entity.CandidateWindow) []entity.WindowID {
	out := make([]entity.WindowID, len(candidates))
	for i, c := range candidates {
		out[i] = c.ID
	}
	return out
}

func TestBuildCycleCandidates_OrdersByActivationRecency(t *testing.T) {
	ctx := testContext()
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	// Stacking says c is frontmost, but b was activated most recently.
	provider := &stubWindowSet{windows: []entity.WindowInfo{
		{ID: "a", StackPosition: 2},
		{ID: "b", StackPosition: 1},
		{ID: "c", StackPosition: 0},
	}}
	history := stubHistory{
		"a": base.Add(-2 * time.Minute),
		"b": base,
		"c": base.Add(-1 * time.Minute),
	}

	uc := usecase.NewBuildCycleCandidatesUseCase(provider, history)
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{Mode: entity.ModeAllDesks})

	assert.Equal(t, []entity.WindowID{"b", "c", "a"}, ids(got))
}

func TestBuildCycleCandidates_NeverActivatedTrailActivated(t *testing.T) {
	ctx := testContext()
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	provider := &stubWindowSet{windows: []entity.WindowInfo{
		{ID: "fresh", StackPosition: 0},
		{ID: "used", StackPosition: 1},
	}}
	history := stubHistory{"used": base}

	uc := usecase.NewBuildCycleCandidatesUseCase(provider, history)
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{Mode: entity.ModeAllDesks})

	assert.Equal(t, []entity.WindowID{"used", "fresh"}, ids(got))
}

func TestBuildCycleCandidates_TierBreaksRecencyTies(t *testing.T) {
	ctx := testContext()

	// No history at all: every timestamp is the zero time.
	provider := &stubWindowSet{windows: []entity.WindowInfo{
		{ID: "normal", Tier: entity.TierNormal, StackPosition: 0},
		{ID: "pinned", Tier: entity.TierAlwaysOnTop, StackPosition: 1},
	}}

	uc := usecase.NewBuildCycleCandidatesUseCase(provider, stubHistory{})
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{Mode: entity.ModeAllDesks})

	assert.Equal(t, []entity.WindowID{"pinned", "normal"}, ids(got))
}

func TestBuildCycleCandidates_StackPositionBreaksRemainingTies(t *testing.T) {
	ctx := testContext()

	provider := &stubWindowSet{windows: []entity.WindowInfo{
		{ID: "back", StackPosition: 2},
		{ID: "front", StackPosition: 0},
		{ID: "middle", StackPosition: 1},
	}}

	uc := usecase.NewBuildCycleCandidatesUseCase(provider, stubHistory{})
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{Mode: entity.ModeAllDesks})

	assert.Equal(t, []entity.WindowID{"front", "middle", "back"}, ids(got))
}

func TestBuildCycleCandidates_ExcludesModalAndSkipFlagged(t *testing.T) {
	ctx := testContext()

	provider := &stubWindowSet{windows: []entity.WindowInfo{
		{ID: "regular"},
		{ID: "dialog", Modal: true},
		{ID: "dock", SkipInCycle: true},
	}}

	uc := usecase.NewBuildCycleCandidatesUseCase(provider, stubHistory{})
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{Mode: entity.ModeAllDesks})

	assert.Equal(t, []entity.WindowID{"regular"}, ids(got))
}

func TestBuildCycleCandidates_MinimizedWindowsStayEligible(t *testing.T) {
	ctx := testContext()

	provider := &stubWindowSet{windows: []entity.WindowInfo{
		{ID: "hidden", Minimized: true},
		{ID: "shown", StackPosition: 1},
	}}

	uc := usecase.NewBuildCycleCandidatesUseCase(provider, stubHistory{})
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{Mode: entity.ModeAllDesks})

	require.Len(t, got, 2)
}

func TestBuildCycleCandidates_CurrentDeskModeFiltersByDesk(t *testing.T) {
	ctx := testContext()

	provider := &stubWindowSet{windows: []entity.WindowInfo{
		{ID: "here", DeskIndex: 1},
		{ID: "elsewhere", DeskIndex: 0},
		{ID: "also-here", DeskIndex: 1, StackPosition: 1},
	}}

	uc := usecase.NewBuildCycleCandidatesUseCase(provider, stubHistory{})
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{
		Mode:            entity.ModeCurrentDesk,
		ActiveDeskIndex: 1,
	})

	assert.Equal(t, []entity.WindowID{"here", "also-here"}, ids(got))
}

func TestBuildCycleCandidates_AllDesksModeIgnoresDeskMembership(t *testing.T) {
	ctx := testContext()

	provider := &stubWindowSet{windows: []entity.WindowInfo{
		{ID: "a", DeskIndex: 0},
		{ID: "b", DeskIndex: 3, StackPosition: 1},
	}}

	uc := usecase.NewBuildCycleCandidatesUseCase(provider, stubHistory{})
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{
		Mode:            entity.ModeAllDesks,
		ActiveDeskIndex: 0,
	})

	assert.Len(t, got, 2)
}

func TestBuildCycleCandidates_EmptyWindowSet(t *testing.T) {
	ctx := testContext()

	uc := usecase.NewBuildCycleCandidatesUseCase(&stubWindowSet{}, stubHistory{})
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{Mode: entity.ModeAllDesks})

	assert.Empty(t, got)
}

func TestBuildCycleCandidates_CopiesActivationTimestamps(t *testing.T) {
	ctx := testContext()
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	provider := &stubWindowSet{windows: []entity.WindowInfo{{ID: "w"}}}
	history := stubHistory{"w": base}

	uc := usecase.NewBuildCycleCandidatesUseCase(provider, history)
	got := uc.Build(ctx, usecase.BuildCycleCandidatesInput{Mode: entity.ModeAllDesks})

	require.Len(t, got, 1)
	assert.True(t, got[0].EverActivated())
	assert.Equal(t, base, got[0].LastActivated)
}
