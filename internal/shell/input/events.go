// Package input normalizes keyboard, mouse, trackpad-gesture and touch
// events into cycle session operations. It never mutates session state
// directly; everything goes through the controller's operations.
package input

// Key identifies the keys the cycle filter cares about. The shell's
// compositor adapter translates hardware keyvals into these before handing
// events to the filter.
type Key int

const (
	// KeyNone is an unrecognized key.
	KeyNone Key = iota
	// KeyAlt is the cycling modifier; releasing it commits the session.
	KeyAlt
	// KeyTab is the cycling key.
	KeyTab
	// KeyReturn confirms the highlighted target.
	KeyReturn
	// KeySpace confirms the highlighted target.
	KeySpace
	// KeyEscape cancels the session.
	KeyEscape
	// KeyLeft steps backward, or selects all-desks mode on the tab slider.
	KeyLeft
	// KeyRight steps forward, or selects current-desk mode on the tab slider.
	KeyRight
	// KeyUp moves keyboard focus off the tab slider.
	KeyUp
	// KeyDown moves keyboard focus onto the tab slider.
	KeyDown
)

// Modifier represents keyboard modifier flags.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is held.
	ModShift Modifier = 1 << iota
	// ModAlt indicates the cycling modifier is held.
	ModAlt
)

// KeyEvent is a normalized key press or release.
type KeyEvent struct {
	Key       Key
	Modifiers Modifier
	Released  bool
}

// PointerPhase distinguishes pointer event kinds.
type PointerPhase int

const (
	// PointerMove is pointer motion.
	PointerMove PointerPhase = iota
	// PointerPress is a button press.
	PointerPress
)

// PointerEvent is a normalized mouse event in switcher-overlay coordinates.
type PointerEvent struct {
	Phase  PointerPhase
	X, Y   float64
	Button int
}

// GesturePhase tracks a trackpad scroll gesture's lifecycle.
type GesturePhase int

const (
	// GestureBegin starts a scroll gesture; inversion is resolved here.
	GestureBegin GesturePhase = iota
	// GestureUpdate carries incremental deltas.
	GestureUpdate
	// GestureEnd finishes the gesture.
	GestureEnd
)

// ScrollEvent is a normalized trackpad or mouse-wheel scroll delta.
type ScrollEvent struct {
	Phase       GesturePhase
	DeltaX      float64
	DeltaY      float64
	FingerCount int
}

// TouchPhase tracks a touch sequence on the preview strip.
type TouchPhase int

const (
	// TouchBegin is the initial finger-down.
	TouchBegin TouchPhase = iota
	// TouchMove is a drag update.
	TouchMove
	// TouchEnd is the finger release.
	TouchEnd
)

// TouchEvent is a normalized touch point in switcher-overlay coordinates.
type TouchEvent struct {
	Phase TouchPhase
	X, Y  float64
}
