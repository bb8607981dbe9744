package render

import "errors"

// ErrSurfaceClosed is returned by Present once the user has closed the
// surface (window close, quit key).
var ErrSurfaceClosed = errors.New("render: surface closed")

// EventKind discriminates surface input events.
type EventKind int

const (
	EventQuit EventKind = iota
	EventToggle
	EventKeyDown
	EventKeyUp
	EventZoom
)

// Event is a raw input event forwarded by a surface. Digit is set for
// KeyDown/KeyUp, ZoomDelta for Zoom.
type Event struct {
	Kind      EventKind
	Digit     int
	ZoomDelta int
}

// Surface rasterizes frames and forwards raw input. The ANSI surface has no
// native key stream and returns a nil Events channel; the application reads
// the terminal keyboard itself in that case.
type Surface interface {
	Size() (width, height int)
	Present(Frame) error
	Events() <-chan Event
	Close() error
}
