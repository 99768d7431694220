// Package shell assembles the window-cycling subsystem for the shell host:
// the controller, the event filter, and the glue between them.
package shell

import (
	"context"

	"github.com/lumen-shell/lumen/internal/application/port"
	"github.com/lumen-shell/lumen/internal/application/usecase"
	"github.com/lumen-shell/lumen/internal/infrastructure/config"
	"github.com/lumen-shell/lumen/internal/logging"
	"github.com/lumen-shell/lumen/internal/shell/cycle"
	"github.com/lumen-shell/lumen/internal/shell/input"
)

// The controller is the filter's session.
var _ input.Session = (*cycle.Controller)(nil)

// HostHooks are the callbacks into the compositor the subsystem cannot
// perform itself.
type HostHooks struct {
	// InstallEventFilter puts the cycle filter at the front of the input
	// pipeline.
	InstallEventFilter func()
	// RemoveEventFilter takes it back out.
	RemoveEventFilter func()
	// EnterOverview opens overview mode after a vertical swipe ends a
	// session. May be nil.
	EnterOverview func()
}

// Deps are the collaborator ports the shell host provides.
type Deps struct {
	Windows   port.WindowSetProvider
	History   port.ActivationHistory
	Desks     port.DeskCoordinator
	Shell     port.ShellState
	Prefs     port.PreferenceStore
	Throttler port.FrameThrottler
	Announcer port.Announcer
	Activator port.WindowActivator
	Metrics   port.CycleMetrics
	View      input.SwitcherView
}

// Subsystem owns the assembled cycling machinery. The host routes raw input
// events to Filter and user-facing operations to Controller.
type Subsystem struct {
	Controller *cycle.Controller
	Filter     *input.Filter
}

// filterHost clears per-session filter state when the filter comes back out
// at teardown. Resetting on install would drop the fullscreen forwarding
// mark set by the very chord that opened the session.
type filterHost struct {
	hooks  HostHooks
	filter *input.Filter
}

func (h *filterHost) InstallEventFilter() {
	if h.hooks.InstallEventFilter != nil {
		h.hooks.InstallEventFilter()
	}
}

func (h *filterHost) RemoveEventFilter() {
	h.filter.Reset()
	if h.hooks.RemoveEventFilter != nil {
		h.hooks.RemoveEventFilter()
	}
}

// New assembles the cycling subsystem from the host's collaborators and the
// loaded configuration. Preference changes written by other processes are
// applied to the live session.
func New(ctx context.Context, cfg *config.Config, deps Deps, hooks HostHooks) *Subsystem {
	ctx = logging.WithComponent(ctx, "cycle")
	host := &filterHost{hooks: hooks}

	source := usecase.NewBuildCycleCandidatesUseCase(deps.Windows, deps.History)
	controller := cycle.NewController(cycle.ControllerDeps{
		Source:    source,
		Desks:     deps.Desks,
		Shell:     deps.Shell,
		Prefs:     deps.Prefs,
		Throttler: deps.Throttler,
		Announcer: deps.Announcer,
		Activator: deps.Activator,
		Metrics:   deps.Metrics,
		Host:      host,
	}, cycle.ControllerConfig{
		ThrottleFPS:         cfg.Cycling.ThrottleFPS,
		VisiblePreviewItems: cfg.Cycling.VisiblePreviewItems,
	})

	filter := input.NewFilter(controller, deps.Shell, deps.View, input.Config{
		ScrollThresholdPx: cfg.Cycling.ScrollThresholdPx,
		SwipeThresholdPx:  cfg.Cycling.SwipeThresholdPx,
		ItemWidthPx:       cfg.Cycling.PreviewItemWidthPx,
		ReverseScroll:     cfg.Cycling.ReverseScroll,
		OnEnterOverview:   hooks.EnterOverview,
	})
	host.filter = filter

	deps.Prefs.OnChange(func(perDesk bool) {
		logging.FromContext(ctx).Debug().Bool("per_desk", perDesk).Msg("preference changed externally")
		controller.SetAltTabPerActiveDesk(ctx, perDesk)
	})

	return &Subsystem{
		Controller: controller,
		Filter:     filter,
	}
}
