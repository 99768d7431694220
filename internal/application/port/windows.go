package port

import (
	"context"
	"time"

	"github.com/lumen-shell/lumen/internal/domain/entity"
)

// WindowSetProvider enumerates toplevel windows across all displays, each
// tagged with desk membership, stacking tier and the flags the cycle list
// filters on.
type WindowSetProvider interface {
	Windows(ctx context.Context) []entity.WindowInfo
}

// ActivationHistory supplies true MRU ordering by last-activation time.
// Windows that were never individually activated report ok == false.
type ActivationHistory interface {
	LastActivated(id entity.WindowID) (t time.Time, ok bool)
}

// WindowActivator performs the window state changes a cycle commit produces.
type WindowActivator interface {
	ActivateWindow(ctx context.Context, id entity.WindowID) error
	UnminimizeWindow(ctx context.Context, id entity.WindowID) error
}
