package terminal

// Backend abstracts platform-specific terminal operations.
// Unix terminals deliver input as a byte stream, the Windows console as key
// records; both are decoded into KeyEvents before leaving the backend.
type Backend interface {
	// Lifecycle
	Configure() error
	Restore()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Poll returns already-queued input without blocking.
	// A *DecodeError accompanies events when part of the batch was dropped.
	Poll() ([]KeyEvent, error)

	// Resized reports whether the window changed size since the last call.
	Resized() bool
}
