package port

// Announcer posts an accessibility alert synchronously. Production adapters
// bridge to the shell's accessibility bus; tests use a recording double.
type Announcer interface {
	Announce(text string)
}
