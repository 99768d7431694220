package cycle

import (
	"context"

	"github.com/lumen-shell/lumen/internal/application/port"
	"github.com/lumen-shell/lumen/internal/application/usecase"
	"github.com/lumen-shell/lumen/internal/domain/entity"
	"github.com/lumen-shell/lumen/internal/logging"
)

// Announcement strings. Localization happens outside this subsystem.
const (
	announceNoRecentItems = "No recent items"
	announceAllDesks      = "Showing windows from all desks"
	announceCurrentDesk   = "Showing windows from the current desk"
	announceDeskFilter    = "Desk filter"
	announceDownArrowHint = "Press the Down arrow key to move to the desk filter"
)

// FilterHost installs and removes the cycle event filter in the shell's
// input pipeline. The filter is installed only while a session is live.
type FilterHost interface {
	InstallEventFilter()
	RemoveEventFilter()
}

// ControllerConfig carries the cycling knobs read from the shell config.
type ControllerConfig struct {
	// ThrottleFPS is the frame rate previews are throttled to while the
	// switcher is up.
	ThrottleFPS int
	// VisiblePreviewItems is the preview strip viewport capacity.
	VisiblePreviewItems int
}

// ControllerDeps bundles the collaborators the controller drives. All of
// them are constructed at shell startup and passed in explicitly.
type ControllerDeps struct {
	Source    *usecase.BuildCycleCandidatesUseCase
	Desks     port.DeskCoordinator
	Shell     port.ShellState
	Prefs     port.PreferenceStore
	Throttler port.FrameThrottler
	Announcer port.Announcer
	Activator port.WindowActivator
	Metrics   port.CycleMetrics
	Host      FilterHost
}

// Controller is the cycling session state machine. It owns the ephemeral
// session and is the only component that mutates the list; the event filter
// never touches state directly.
//
// All methods run on the shell's UI goroutine. Misuse (completing with no
// session, stepping while a guard fails) is a silent no-op per the
// subsystem's error-handling contract.
type Controller struct {
	source    *usecase.BuildCycleCandidatesUseCase
	desks     port.DeskCoordinator
	shell     port.ShellState
	prefs     port.PreferenceStore
	throttler port.FrameThrottler
	announcer port.Announcer
	activator port.WindowActivator
	metrics   port.CycleMetrics
	host      FilterHost
	cfg       ControllerConfig

	session *cycleSession
}

// cycleSession exists only while cycling is active. It is created on the
// first step-or-start call and destroyed synchronously on commit or cancel.
type cycleSession struct {
	list *List
	// implicit marks the single-eligible-window session: the target was
	// activated on the opening step and no switcher widget is shown, but
	// the event filter stays installed so modifier-release semantics match
	// the multi-window case.
	implicit bool
}

// NewController builds the controller with direct references to its
// collaborators.
func NewController(deps ControllerDeps, cfg ControllerConfig) *Controller {
	return &Controller{
		source:    deps.Source,
		desks:     deps.Desks,
		shell:     deps.Shell,
		prefs:     deps.Prefs,
		throttler: deps.Throttler,
		announcer: deps.Announcer,
		activator: deps.Activator,
		metrics:   deps.Metrics,
		host:      deps.Host,
		cfg:       cfg,
	}
}

// IsCycling reports whether a session is live.
func (c *Controller) IsCycling() bool {
	return c.session != nil
}

// CanCycle reports whether a new session or a step may be accepted: the
// screen is unlocked, no system-modal window is active, and no desk-switch
// animation from a previous commit is still in flight.
func (c *Controller) CanCycle() bool {
	return !c.shell.ScreenLocked() &&
		!c.shell.SystemModalOpen() &&
		!c.desks.AreDesksBeingModified()
}

// List exposes the live list for the switcher view. Nil while idle.
func (c *Controller) List() *List {
	if c.session == nil {
		return nil
	}
	return c.session.list
}

// TargetWindow returns the window that would be activated by a commit right
// now, or nil.
func (c *Controller) TargetWindow() *entity.CandidateWindow {
	if c.session == nil {
		return nil
	}
	return c.session.list.Target()
}

// TabSliderFocused reports whether keyboard focus is on the mode selector.
func (c *Controller) TabSliderFocused() bool {
	return c.session != nil && c.session.list.TabSliderFocused()
}

// AltTabPerActiveDesk reads the per-user mode default.
func (c *Controller) AltTabPerActiveDesk(ctx context.Context) bool {
	return c.prefs.AltTabPerActiveDesk(ctx)
}

// StartCycling opens a new session. A no-op when a session is already live
// or a guard condition fails.
func (c *Controller) StartCycling(ctx context.Context) {
	if c.session != nil || !c.CanCycle() {
		return
	}
	log := logging.FromContext(ctx)

	mode := entity.ModeAllDesks
	if c.prefs.AltTabPerActiveDesk(ctx) {
		mode = entity.ModeCurrentDesk
	}

	windows := c.source.Build(ctx, usecase.BuildCycleCandidatesInput{
		Mode:            mode,
		ActiveDeskIndex: c.desks.ActiveDeskIndex(),
	})

	c.session = &cycleSession{
		list: NewList(windows, mode, c.cfg.VisiblePreviewItems),
	}
	c.host.InstallEventFilter()

	ids := make([]entity.WindowID, len(windows))
	for i, w := range windows {
		ids[i] = w.ID
	}
	c.throttler.AddWindowsUnderThrottle(ids, c.cfg.ThrottleFPS)

	// Focus starts on the window list, so the Down-arrow hint applies. With
	// fewer than two candidates no switcher (and no desk slider) is shown.
	if len(windows) > 1 {
		c.announcer.Announce(announceDownArrowHint)
	}

	log.Debug().
		Str("mode", mode.String()).
		Int("candidates", len(windows)).
		Msg("cycle session started")
}

// HandleCycleWindow advances or retreats the highlighted target by one,
// starting a session first if none is live. With exactly one eligible
// window the opening step activates it immediately without presenting the
// switcher.
func (c *Controller) HandleCycleWindow(ctx context.Context, direction entity.Direction) {
	if !c.CanCycle() {
		return
	}
	if c.session == nil {
		c.StartCycling(ctx)
		if c.session == nil {
			return
		}
		if c.session.list.Len() == 1 {
			c.session.implicit = true
			c.activateTarget(ctx, c.session.list.Target())
			return
		}
	}

	c.session.list.StepBy(direction)
	c.announceTarget(ctx)
}

// Scroll advances the preview strip by one item in the given direction and
// snaps the selection to the panned position. Called by the event filter
// once a scroll gesture crosses its per-gesture threshold.
func (c *Controller) Scroll(ctx context.Context, direction entity.Direction) {
	if c.session == nil {
		return
	}
	list := c.session.list
	prev := list.CurrentIndex()
	list.ScrollBy(float64(direction))
	list.SnapSelectionToScroll()
	if list.CurrentIndex() != prev {
		c.announceTarget(ctx)
	}
}

// PanBy pans the preview strip proportionally to a touch drag without
// changing the selection.
func (c *Controller) PanBy(_ context.Context, items float64) {
	if c.session == nil {
		return
	}
	c.session.list.ScrollBy(items)
}

// JumpToIndex sets the highlighted target directly (hover, tap,
// drag-release).
func (c *Controller) JumpToIndex(ctx context.Context, index int) {
	if c.session == nil {
		return
	}
	list := c.session.list
	prev := list.CurrentIndex()
	list.JumpToIndex(index)
	if list.CurrentIndex() != prev {
		c.announceTarget(ctx)
	}
}

// FocusTabSlider moves keyboard focus onto or off of the mode selector. The
// announcement carries no Down-arrow hint: reaching the slider was itself a
// Down-arrow press.
func (c *Controller) FocusTabSlider(_ context.Context, focused bool) {
	if c.session == nil {
		return
	}
	if c.session.list.TabSliderFocused() == focused {
		return
	}
	c.session.list.FocusTabSlider(focused)
	if focused {
		c.announcer.Announce(announceDeskFilter)
	}
}

// SetAltTabPerActiveDesk persists the per-user mode default and, when a
// session is live, rebuilds the list under the new mode with target
// reconciliation.
func (c *Controller) SetAltTabPerActiveDesk(ctx context.Context, perDesk bool) {
	log := logging.FromContext(ctx)

	if err := c.prefs.SetAltTabPerActiveDesk(ctx, perDesk); err != nil {
		log.Warn().Err(err).Msg("failed to persist alt-tab desk mode")
	}

	mode := entity.ModeAllDesks
	if perDesk {
		mode = entity.ModeCurrentDesk
	}
	c.applyMode(ctx, mode)
}

// NotifyDeskChanged rebuilds the candidate list after an external desk
// switch mid-session. The session stays alive; desk-restricted lists may
// become empty.
func (c *Controller) NotifyDeskChanged(ctx context.Context) {
	if c.session == nil {
		return
	}
	c.rebuild(ctx, c.session.list.Mode())
	c.announceTarget(ctx)
}

// CompleteCycling commits the session: tears it down synchronously, then
// activates the highlighted target, un-minimizing it and switching desks
// first when needed. Confirm-class input arriving after teardown finds no
// session and is absorbed.
func (c *Controller) CompleteCycling(ctx context.Context) {
	s := c.session
	if s == nil {
		return
	}
	log := logging.FromContext(ctx)
	c.teardown()

	if s.implicit {
		// The single eligible window was activated on the opening step.
		return
	}
	target := s.list.Target()
	if target == nil {
		log.Debug().Msg("cycle commit with empty list")
		return
	}
	c.activateTarget(ctx, target)
}

// CancelCycling tears the session down with no activation change.
func (c *Controller) CancelCycling(ctx context.Context) {
	if c.session == nil {
		return
	}
	logging.FromContext(ctx).Debug().Msg("cycle session cancelled")
	c.teardown()
}

// teardown destroys the session synchronously. The throttler and filter
// host are each signalled exactly once per session.
func (c *Controller) teardown() {
	c.session = nil
	c.throttler.StopThrottling()
	c.host.RemoveEventFilter()
}

// activateTarget runs the commit choreography for one window: un-minimize,
// record the desk distance and switch desks when the target lives
// elsewhere, then activate.
func (c *Controller) activateTarget(ctx context.Context, target *entity.CandidateWindow) {
	ctx = logging.WithWindowID(ctx, string(target.ID))
	log := logging.FromContext(ctx)

	if target.Minimized {
		if err := c.activator.UnminimizeWindow(ctx, target.ID); err != nil {
			log.Warn().Err(err).Msg("unminimize failed")
		}
	}

	active := c.desks.ActiveDeskIndex()
	if target.DeskIndex != active {
		// Candidate snapshots can outlive a desk removal.
		if target.DeskIndex < 0 || target.DeskIndex >= c.desks.DeskCount() {
			log.Warn().Int("desk", target.DeskIndex).Msg("commit target references a desk that no longer exists")
		} else {
			distance := target.DeskIndex - active
			if distance < 0 {
				distance = -distance
			}
			if err := c.metrics.RecordDeskSwitchDistance(ctx, distance); err != nil {
				log.Warn().Err(err).Int("distance", distance).Msg("failed to record desk-switch sample")
			}
			if err := c.desks.ActivateDesk(ctx, target.DeskIndex); err != nil {
				log.Error().Err(err).Int("desk", target.DeskIndex).Msg("desk switch failed")
			}
		}
	}

	if err := c.activator.ActivateWindow(ctx, target.ID); err != nil {
		log.Error().Err(err).Msg("window activation failed")
	}
}

// applyMode rebuilds the list under the given mode and announces the
// outcome. A rebuild into an empty desk-restricted list keeps the session
// alive in its empty state.
func (c *Controller) applyMode(ctx context.Context, mode entity.CycleMode) {
	if c.session == nil || c.session.list.Mode() == mode {
		return
	}
	c.rebuild(ctx, mode)

	if mode == entity.ModeCurrentDesk {
		c.announcer.Announce(announceCurrentDesk)
	} else {
		c.announcer.Announce(announceAllDesks)
	}
	c.announceTarget(ctx)
}

func (c *Controller) rebuild(ctx context.Context, mode entity.CycleMode) {
	windows := c.source.Build(ctx, usecase.BuildCycleCandidatesInput{
		Mode:            mode,
		ActiveDeskIndex: c.desks.ActiveDeskIndex(),
	})
	c.session.list.Replace(windows, mode)

	logging.FromContext(ctx).Debug().
		Str("mode", mode.String()).
		Int("candidates", len(windows)).
		Msg("cycle list rebuilt")
}

func (c *Controller) announceTarget(ctx context.Context) {
	target := c.TargetWindow()
	if target == nil {
		c.announcer.Announce(announceNoRecentItems)
		return
	}
	c.announcer.Announce(target.Title)
	logging.FromContext(ctx).Trace().
		Str("window_id", string(target.ID)).
		Msg("cycle target changed")
}
