package usecase

import (
	"context"
	"fmt"

	"github.com/lumen-shell/lumen/internal/domain/entity"
	"github.com/lumen-shell/lumen/internal/domain/repository"
	"github.com/lumen-shell/lumen/internal/logging"
)

// defaultSampleLimit bounds how many raw samples the CLI views fetch.
const defaultSampleLimit = 200

// CycleTelemetryUseCase reads back recorded desk-switch-distance samples for
// the CLI inspection commands.
type CycleTelemetryUseCase struct {
	repo repository.TelemetryRepository
}

// NewCycleTelemetryUseCase creates the telemetry read use case.
func NewCycleTelemetryUseCase(repo repository.TelemetryRepository) *CycleTelemetryUseCase {
	return &CycleTelemetryUseCase{repo: repo}
}

// RecentSamples returns the newest samples, most recent first.
func (uc *CycleTelemetryUseCase) RecentSamples(
	ctx context.Context,
	limit int,
) ([]entity.DeskSwitchSample, error) {
	if limit <= 0 {
		limit = defaultSampleLimit
	}
	samples, err := uc.repo.RecentSamples(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent samples: %w", err)
	}
	return samples, nil
}

// Summary returns the per-distance histogram of all recorded samples.
func (uc *CycleTelemetryUseCase) Summary(ctx context.Context) (*entity.TelemetrySummary, error) {
	log := logging.FromContext(ctx)

	summary, err := uc.repo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("load telemetry summary: %w", err)
	}

	log.Debug().
		Int64("total", summary.TotalSamples).
		Int("buckets", len(summary.ByDistance)).
		Msg("loaded cycle telemetry summary")

	return summary, nil
}
