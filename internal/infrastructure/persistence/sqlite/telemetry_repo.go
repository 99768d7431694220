package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lumen-shell/lumen/internal/application/port"
	"github.com/lumen-shell/lumen/internal/domain/entity"
	"github.com/lumen-shell/lumen/internal/domain/repository"
	"github.com/lumen-shell/lumen/internal/logging"
)

type telemetryRepo struct {
	db *sql.DB
}

// NewTelemetryRepository creates a SQLite-backed telemetry repository. It
// also satisfies the controller's port.CycleMetrics sink.
func NewTelemetryRepository(db *sql.DB) repository.TelemetryRepository {
	return &telemetryRepo{db: db}
}

var _ port.CycleMetrics = (*telemetryRepo)(nil)

func (r *telemetryRepo) RecordDeskSwitchDistance(ctx context.Context, distance int) error {
	if distance < 0 {
		distance = -distance
	}
	logging.FromContext(ctx).Debug().Int("distance", distance).Msg("recording desk-switch sample")

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO desk_switch_samples (distance) VALUES (?)`, distance)
	if err != nil {
		return fmt.Errorf("insert desk-switch sample: %w", err)
	}
	return nil
}

func (r *telemetryRepo) RecentSamples(ctx context.Context, limit int) ([]entity.DeskSwitchSample, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, distance, recorded_at
		   FROM desk_switch_samples
		  ORDER BY recorded_at DESC, id DESC
		  LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent samples: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var samples []entity.DeskSwitchSample
	for rows.Next() {
		var s entity.DeskSwitchSample
		if err := rows.Scan(&s.ID, &s.Distance, &s.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return samples, nil
}

func (r *telemetryRepo) Summary(ctx context.Context) (*entity.TelemetrySummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT distance, COUNT(*)
		   FROM desk_switch_samples
		  GROUP BY distance
		  ORDER BY distance ASC`)
	if err != nil {
		return nil, fmt.Errorf("query telemetry summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summary := &entity.TelemetrySummary{}
	for rows.Next() {
		var bucket entity.DistanceCount
		if err := rows.Scan(&bucket.Distance, &bucket.Count); err != nil {
			return nil, fmt.Errorf("scan summary bucket: %w", err)
		}
		summary.ByDistance = append(summary.ByDistance, bucket)
		summary.TotalSamples += bucket.Count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary: %w", err)
	}
	return summary, nil
}
