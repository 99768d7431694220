package entity

import "time"

// DeskSwitchSample records how far a cycle commit had to travel between
// desks: |target desk index - source desk index|.
type DeskSwitchSample struct {
	ID         int64
	Distance   int
	RecordedAt time.Time
}

// DistanceCount is one histogram bucket of desk-switch distances.
type DistanceCount struct {
	Distance int
	Count    int64
}

// TelemetrySummary aggregates recorded desk-switch samples.
type TelemetrySummary struct {
	TotalSamples int64
	ByDistance   []DistanceCount
}
