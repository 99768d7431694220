// Package repository defines persistence interfaces implemented by the
// infrastructure layer.
package repository

import (
	"context"

	"github.com/lumen-shell/lumen/internal/domain/entity"
)

// TelemetryRepository stores and aggregates desk-switch-distance samples.
type TelemetryRepository interface {
	RecordDeskSwitchDistance(ctx context.Context, distance int) error
	RecentSamples(ctx context.Context, limit int) ([]entity.DeskSwitchSample, error)
	Summary(ctx context.Context) (*entity.TelemetrySummary, error)
}
