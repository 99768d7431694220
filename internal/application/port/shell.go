package port

// ShellState probes the global shell conditions that gate cycling.
type ShellState interface {
	ScreenLocked() bool
	SystemModalOpen() bool
	// ActiveWindowFullscreen reports whether the currently focused window is
	// fullscreen. The event filter forwards one cycle keypress to fullscreen
	// apps before cycling starts stepping.
	ActiveWindowFullscreen() bool
}
