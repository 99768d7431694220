package input

import (
	"context"
	"math"

	"github.com/lumen-shell/lumen/internal/application/port"
	"github.com/lumen-shell/lumen/internal/domain/entity"
	"github.com/lumen-shell/lumen/internal/logging"
)

// Session is the slice of the cycle controller the filter drives.
type Session interface {
	IsCycling() bool
	HandleCycleWindow(ctx context.Context, direction entity.Direction)
	Scroll(ctx context.Context, direction entity.Direction)
	PanBy(ctx context.Context, items float64)
	JumpToIndex(ctx context.Context, index int)
	CompleteCycling(ctx context.Context)
	CancelCycling(ctx context.Context)
	FocusTabSlider(ctx context.Context, focused bool)
	TabSliderFocused() bool
	SetAltTabPerActiveDesk(ctx context.Context, perDesk bool)
}

// SwitcherView answers hit-testing questions about the switcher overlay.
// The rendering itself lives outside this subsystem.
type SwitcherView interface {
	ContainsPoint(x, y float64) bool
	ItemAt(x, y float64) (index int, ok bool)
}

// Config carries the input thresholds read from the shell config.
type Config struct {
	// ScrollThresholdPx is the per-gesture horizontal distance after which
	// the selection snaps to the scrolled position.
	ScrollThresholdPx float64
	// SwipeThresholdPx is the vertical distance after which a swipe hands
	// off to overview mode.
	SwipeThresholdPx float64
	// ItemWidthPx converts touch-drag pixels into preview-item units.
	ItemWidthPx float64
	// ReverseScroll mirrors the user's natural-scrolling preference.
	ReverseScroll bool
	// OnEnterOverview is invoked after a vertical swipe cancels the
	// session. May be nil.
	OnEnterOverview func()
}

// Filter translates raw input events into session operations. It is
// installed in the shell's event pipeline only while a session is live and
// holds only per-gesture state; Reset clears it between sessions.
type Filter struct {
	session Session
	shell   port.ShellState
	view    SwitcherView
	cfg     Config

	// pointerMoved gates all mouse handling: a resting pointer must not
	// select whatever preview happens to render under it.
	pointerMoved bool
	// fullscreenKeyForwarded tracks the one cycle keypress forwarded to a
	// fullscreen app before cycling proceeds.
	fullscreenKeyForwarded bool

	scrollSign    float64
	scrollAccum   float64
	swipeAccum    float64
	scrollStepped bool
	swipeFired    bool

	touchLastX float64
}

// NewFilter creates the event filter.
func NewFilter(session Session, shell port.ShellState, view SwitcherView, cfg Config) *Filter {
	return &Filter{
		session: session,
		shell:   shell,
		view:    view,
		cfg:     cfg,
	}
}

// Reset clears all per-session state, the fullscreen forwarding mark
// included. The filter host calls it at session teardown; the mark is set by
// the chord that opens the session and must survive installation.
func (f *Filter) Reset() {
	f.pointerMoved = false
	f.fullscreenKeyForwarded = false
	f.resetGesture()
}

// HandleKey processes a key event. It returns true when the event was
// consumed and must not reach the focused content.
func (f *Filter) HandleKey(ctx context.Context, ev KeyEvent) bool {
	if ev.Released {
		// Releasing the cycling modifier commits the session.
		if ev.Key == KeyAlt && f.session.IsCycling() {
			f.session.CompleteCycling(ctx)
			return true
		}
		return false
	}

	switch ev.Key {
	case KeyTab:
		if ev.Modifiers&ModAlt == 0 {
			return false
		}
		return f.handleCycleKey(ctx, ev)
	case KeyReturn, KeySpace:
		if !f.session.IsCycling() {
			return false
		}
		f.session.CompleteCycling(ctx)
		return true
	case KeyEscape:
		if !f.session.IsCycling() {
			return false
		}
		f.session.CancelCycling(ctx)
		return true
	case KeyLeft:
		return f.handleHorizontalArrow(ctx, entity.Backward)
	case KeyRight:
		return f.handleHorizontalArrow(ctx, entity.Forward)
	case KeyDown:
		if !f.session.IsCycling() {
			return false
		}
		f.session.FocusTabSlider(ctx, true)
		return true
	case KeyUp:
		if !f.session.IsCycling() {
			return false
		}
		f.session.FocusTabSlider(ctx, false)
		return true
	default:
		return false
	}
}

// handleCycleKey steps the session, except that a fullscreen app gets
// exactly one occurrence of the cycling chord forwarded before cycling
// proceeds on the next identical press.
func (f *Filter) handleCycleKey(ctx context.Context, ev KeyEvent) bool {
	if f.shell.ActiveWindowFullscreen() && !f.fullscreenKeyForwarded {
		f.fullscreenKeyForwarded = true
		logging.FromContext(ctx).Debug().Msg("forwarding cycle key to fullscreen window")
		return false
	}

	direction := entity.Forward
	if ev.Modifiers&ModShift != 0 {
		direction = entity.Backward
	}
	f.session.HandleCycleWindow(ctx, direction)
	return true
}

// handleHorizontalArrow steps the list, or switches mode while the tab
// slider has keyboard focus: Left selects all desks, Right the current
// desk, matching the slider's visual order.
func (f *Filter) handleHorizontalArrow(ctx context.Context, direction entity.Direction) bool {
	if !f.session.IsCycling() {
		return false
	}
	if f.session.TabSliderFocused() {
		f.session.SetAltTabPerActiveDesk(ctx, direction == entity.Forward)
		return true
	}
	f.session.HandleCycleWindow(ctx, direction)
	return true
}

// HandlePointer processes a mouse event. All mouse input is swallowed until
// the pointer has moved at least once since the session began.
func (f *Filter) HandlePointer(ctx context.Context, ev PointerEvent) bool {
	if !f.session.IsCycling() {
		return false
	}

	switch ev.Phase {
	case PointerMove:
		f.pointerMoved = true
		if index, ok := f.view.ItemAt(ev.X, ev.Y); ok {
			f.session.JumpToIndex(ctx, index)
		}
		return true
	case PointerPress:
		if !f.pointerMoved {
			return true
		}
		if !f.view.ContainsPoint(ev.X, ev.Y) {
			// A press outside the switcher ends the session and
			// activates the target as it stood before the click.
			f.session.CompleteCycling(ctx)
			return true
		}
		if index, ok := f.view.ItemAt(ev.X, ev.Y); ok {
			f.session.JumpToIndex(ctx, index)
			f.session.CompleteCycling(ctx)
		}
		return true
	default:
		return false
	}
}

// HandleScroll processes a trackpad or mouse-wheel gesture. The scroll sign
// is resolved once at gesture start from the reverse-scroll preference and
// the finger count; two- and three-finger conventions are mirror images.
func (f *Filter) HandleScroll(ctx context.Context, ev ScrollEvent) bool {
	if !f.session.IsCycling() {
		return false
	}

	switch ev.Phase {
	case GestureBegin:
		f.resetGesture()
		invert := f.cfg.ReverseScroll
		if ev.FingerCount >= 3 {
			invert = !invert
		}
		f.scrollSign = 1
		if invert {
			f.scrollSign = -1
		}
		return true
	case GestureUpdate:
		if f.swipeFired {
			return true
		}
		f.scrollAccum += ev.DeltaX * f.scrollSign
		f.swipeAccum += ev.DeltaY

		// Axis tie-break: a gesture whose horizontal component crossed
		// its own threshold never hands off to overview.
		if math.Abs(f.swipeAccum) >= f.cfg.SwipeThresholdPx &&
			!f.scrollStepped && math.Abs(f.scrollAccum) < f.cfg.ScrollThresholdPx {
			f.swipeFired = true
			f.session.CancelCycling(ctx)
			if f.cfg.OnEnterOverview != nil {
				f.cfg.OnEnterOverview()
			}
			return true
		}

		for math.Abs(f.scrollAccum) >= f.cfg.ScrollThresholdPx {
			direction := entity.Forward
			if f.scrollAccum < 0 {
				direction = entity.Backward
			}
			f.session.Scroll(ctx, direction)
			f.scrollAccum -= f.cfg.ScrollThresholdPx * float64(direction)
			f.scrollStepped = true
		}
		return true
	case GestureEnd:
		f.resetGesture()
		return true
	default:
		return false
	}
}

// HandleTouch processes a touch sequence on the preview strip: dragging
// pans the strip proportionally without changing the selection; releasing
// over an item behaves like a tap on it.
func (f *Filter) HandleTouch(ctx context.Context, ev TouchEvent) bool {
	if !f.session.IsCycling() {
		return false
	}

	switch ev.Phase {
	case TouchBegin:
		f.touchLastX = ev.X
		return true
	case TouchMove:
		if f.cfg.ItemWidthPx > 0 {
			delta := ev.X - f.touchLastX
			f.session.PanBy(ctx, -delta/f.cfg.ItemWidthPx)
		}
		f.touchLastX = ev.X
		return true
	case TouchEnd:
		if index, ok := f.view.ItemAt(ev.X, ev.Y); ok {
			f.session.JumpToIndex(ctx, index)
			f.session.CompleteCycling(ctx)
		}
		return true
	default:
		return false
	}
}

func (f *Filter) resetGesture() {
	f.scrollSign = 1
	f.scrollAccum = 0
	f.swipeAccum = 0
	f.scrollStepped = false
	f.swipeFired = false
}
