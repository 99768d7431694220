package entity

import "time"

// WindowID uniquely identifies a toplevel window across the shell.
type WindowID string

// StackTier is the stacking category a window belongs to. Always-on-top
// windows stay above normal windows regardless of activation recency.
type StackTier int

const (
	// TierNormal is the default stacking tier.
	TierNormal StackTier = iota
	// TierAlwaysOnTop windows rank ahead of normal-tier windows when their
	// activation recency ties.
	TierAlwaysOnTop
)

// WindowInfo is the raw per-window state reported by the compositor.
// StackPosition is the per-container z position with 0 as the frontmost
// window, so a plain ascending sort keeps original stacking order.
type WindowInfo struct {
	ID            WindowID
	Title         string
	DeskIndex     int
	Tier          StackTier
	StackPosition int
	Minimized     bool
	SkipInCycle   bool
	Fullscreen    bool
	Modal         bool
}

// CandidateWindow is an immutable snapshot of a window taken at cycle-list
// build time, extended with the precomputed sort key used for MRU ordering.
// Snapshots are rebuilt wholesale whenever the list is rebuilt; they are
// never patched in place.
type CandidateWindow struct {
	WindowInfo

	// LastActivated is the zero time for windows that were never
	// individually activated.
	LastActivated time.Time
}

// EverActivated reports whether the window has an activation timestamp.
func (w CandidateWindow) EverActivated() bool {
	return !w.LastActivated.IsZero()
}
