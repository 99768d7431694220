package entity

// CycleMode selects which desks contribute windows to the cycle list.
type CycleMode int

const (
	// ModeAllDesks cycles through windows from every desk.
	ModeAllDesks CycleMode = iota
	// ModeCurrentDesk restricts cycling to windows on the active desk.
	ModeCurrentDesk
)

// String returns the mode name used in logs and announcements.
func (m CycleMode) String() string {
	if m == ModeCurrentDesk {
		return "current_desk"
	}
	return "all_desks"
}

// Direction is the step direction through the cycle list.
type Direction int

const (
	// Forward steps toward less recently used windows.
	Forward Direction = 1
	// Backward steps toward more recently used windows.
	Backward Direction = -1
)

// String returns the direction name used in logs.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
