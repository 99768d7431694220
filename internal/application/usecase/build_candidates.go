package usecase

import (
	"context"
	"sort"

	"github.com/lumen-shell/lumen/internal/application/port"
	"github.com/lumen-shell/lumen/internal/domain/entity"
	"github.com/lumen-shell/lumen/internal/logging"
)

// BuildCycleCandidatesUseCase builds the desk-aware, MRU-ordered candidate
// list the cycle session steps through.
type BuildCycleCandidatesUseCase struct {
	windows port.WindowSetProvider
	history port.ActivationHistory
}

// NewBuildCycleCandidatesUseCase creates the candidate source.
func NewBuildCycleCandidatesUseCase(
	windows port.WindowSetProvider,
	history port.ActivationHistory,
) *BuildCycleCandidatesUseCase {
	return &BuildCycleCandidatesUseCase{
		windows: windows,
		history: history,
	}
}

// BuildCycleCandidatesInput contains the parameters for a list build.
type BuildCycleCandidatesInput struct {
	Mode            entity.CycleMode
	ActiveDeskIndex int
}

// Build snapshots the current window set, filters out windows that never
// take part in cycling and orders the rest by MRU activation history.
//
// Ordering is a precomputed stable key: last-activation time (most recent
// first, never-activated last), then stacking tier (always-on-top first),
// then the original per-container stack position.
func (uc *BuildCycleCandidatesUseCase) Build(
	ctx context.Context,
	input BuildCycleCandidatesInput,
) []entity.CandidateWindow {
	log := logging.FromContext(ctx)

	raw := uc.windows.Windows(ctx)
	candidates := make([]entity.CandidateWindow, 0, len(raw))

	for _, w := range raw {
		if w.Modal || w.SkipInCycle {
			continue
		}
		if input.Mode == entity.ModeCurrentDesk && w.DeskIndex != input.ActiveDeskIndex {
			continue
		}
		c := entity.CandidateWindow{WindowInfo: w}
		if t, ok := uc.history.LastActivated(w.ID); ok {
			c.LastActivated = t
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidateBefore(candidates[i], candidates[j])
	})

	log.Debug().
		Str("mode", input.Mode.String()).
		Int("active_desk", input.ActiveDeskIndex).
		Int("raw", len(raw)).
		Int("candidates", len(candidates)).
		Msg("built cycle candidate list")

	return candidates
}

// candidateBefore orders a ahead of b in the cycle list.
func candidateBefore(a, b entity.CandidateWindow) bool {
	if !a.LastActivated.Equal(b.LastActivated) {
		// Zero timestamps sort last, so never-activated windows trail
		// every activated one.
		return a.LastActivated.After(b.LastActivated)
	}
	if a.Tier != b.Tier {
		return a.Tier == entity.TierAlwaysOnTop
	}
	return a.StackPosition < b.StackPosition
}
