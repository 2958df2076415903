package platform

import "fmt"

// Window is an opaque window handle assigned by the windowing system.
type Window uint32

// Rect is a screen rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// Center returns the middle point of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) String() string {
	return fmt.Sprintf("pos: (%4d,%4d), size: %dx%d", r.X, r.Y, r.Width, r.Height)
}

// Point is a root-relative pointer position.
type Point struct {
	X, Y int
}

// Chord is a key code plus the exact modifier mask it is bound with.
type Chord struct {
	Mods uint16
	Code uint8
}

// Event is one inbound windowing-system event. The set of variants is closed.
type Event interface {
	isEvent()
}

// MapRequest reports a top-level window asking to be shown.
type MapRequest struct{ Window Window }

// DestroyNotify reports a window that no longer exists.
type DestroyNotify struct{ Window Window }

// EnterNotify reports the pointer crossing into a window.
type EnterNotify struct{ Window Window }

// KeyPress reports a grabbed key being pressed.
type KeyPress struct {
	Code  uint8
	State uint16
}

// Ignored is an expected event kind that carries nothing for the core.
type Ignored struct{ Kind string }

// Unsupported is an event kind the core does not know about.
type Unsupported struct{ Code int }

func (MapRequest) isEvent()    {}
func (DestroyNotify) isEvent() {}
func (EnterNotify) isEvent()   {}
func (KeyPress) isEvent()      {}
func (Ignored) isEvent()       {}
func (Unsupported) isEvent()   {}

// ProtocolError is an error the windowing system reported asynchronously,
// typically for a request on a window that vanished mid-flight.
type ProtocolError struct {
	Sequence uint16
	BadID    uint32
	Message  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error (seq %d, id %d): %s", e.Sequence, e.BadID, e.Message)
}
