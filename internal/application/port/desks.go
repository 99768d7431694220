package port

import "context"

// DeskCoordinator exposes the desks model plus desk activation. The cycle
// controller calls ActivateDesk at most once per commit, and only when the
// committed target's desk differs from the active desk. A new cycle session
// must not start while AreDesksBeingModified reports true.
type DeskCoordinator interface {
	ActiveDeskIndex() int
	DeskCount() int
	ActivateDesk(ctx context.Context, deskIndex int) error
	AreDesksBeingModified() bool
}
