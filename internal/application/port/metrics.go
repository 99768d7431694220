package port

import "context"

// CycleMetrics is the sink for desk-switch-distance telemetry samples.
type CycleMetrics interface {
	RecordDeskSwitchDistance(ctx context.Context, distance int) error
}
