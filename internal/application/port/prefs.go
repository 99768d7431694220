package port

import "context"

// PreferenceStore persists the per-user cycling preferences. OnChange fires
// whenever the stored value changes externally (settings app, another
// session of the same user).
type PreferenceStore interface {
	AltTabPerActiveDesk(ctx context.Context) bool
	SetAltTabPerActiveDesk(ctx context.Context, perDesk bool) error
	OnChange(fn func(perDesk bool))
}
