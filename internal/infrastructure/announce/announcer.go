// Package announce provides the production accessibility announcer adapter.
package announce

import (
	"context"

	"github.com/lumen-shell/lumen/internal/application/port"
	"github.com/lumen-shell/lumen/internal/logging"
)

// BusPoster posts an alert onto the shell's accessibility bus.
type BusPoster func(text string)

// Announcer bridges the synchronous port.Announcer capability to the shell's
// accessibility bus, logging every alert for diagnosis.
type Announcer struct {
	ctx  context.Context
	post BusPoster
}

var _ port.Announcer = (*Announcer)(nil)

// NewAnnouncer creates the production announcer. A nil poster degrades to
// log-only announcements, which headless sessions use.
func NewAnnouncer(ctx context.Context, post BusPoster) *Announcer {
	return &Announcer{ctx: ctx, post: post}
}

// Announce posts the alert synchronously.
func (a *Announcer) Announce(text string) {
	logging.FromContext(a.ctx).Debug().Str("alert", text).Msg("accessibility announcement")
	if a.post != nil {
		a.post(text)
	}
}
