package platform

// EventSource yields the inbound windowing-system event stream.
type EventSource interface {
	// NextEvent blocks until the next event arrives. Asynchronous protocol
	// errors are returned as *ProtocolError; a severed connection returns
	// ErrConnectionClosed.
	NextEvent() (Event, error)
}

// WindowController issues window commands.
type WindowController interface {
	MoveResize(w Window, r Rect) error
	// SelectEnter subscribes to pointer-enter notifications on w.
	SelectEnter(w Window) error
	Map(w Window) error
	Raise(w Window) error
	SetInputFocus(w Window) error
	Destroy(w Window) error
	// SupportsDelete reports whether w advertises graceful close.
	SupportsDelete(w Window) bool
	// RequestClose sends the protocol-level close request to w.
	RequestClose(w Window) error
	// RaisePlaceholder raises the blank window that covers every screen.
	RaisePlaceholder() error
	GrabServer() error
	UngrabServer() error
	// Sync blocks until every issued request has been processed.
	Sync() error
}

// Pointer queries and moves the pointer.
type Pointer interface {
	QueryPointer() (Point, error)
	WarpPointer(p Point) error
}

// KeyGrabber registers global key grabs.
type KeyGrabber interface {
	// GrabKey grabs the chord ("Mod1-Shift-c") on the root window and
	// returns every (modifier, keycode) pair that now reports it.
	GrabKey(chord string) ([]Chord, error)
	UngrabKeys() error
}

// Display is the whole windowing-system boundary.
type Display interface {
	EventSource
	WindowController
	Pointer
	KeyGrabber

	// Screens returns the physical screen topology queried at startup.
	Screens() []Rect
	Close()
}
