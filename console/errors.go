package console

import "errors"

var (
	// ErrOutOfBounds is returned by drawing primitives whose computed cell
	// indices exceed the grid. Never silently clamped: clamping would mask
	// layout bugs in the caller.
	ErrOutOfBounds = errors.New("console: cell coordinates out of bounds")

	// ErrNotInitialized is returned when the per-frame update or spawn is
	// invoked before Initialize.
	ErrNotInitialized = errors.New("console: backend not initialized")

	// ErrAlreadyInitialized is returned by a second Initialize call; the
	// backend choice is irrevocable.
	ErrAlreadyInitialized = errors.New("console: already initialized")
)
