// Package event defines the events a window feeds through its widget tree.
//
// Input payloads reuse the gpucontext types so pointer and keyboard events
// look the same here as they do in the rest of the gogpu stack.
package event

import (
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggui/region"
)

// Event is one of the types in this package.
type Event interface {
	isEvent()
}

// Message is a widget-to-application notification. Widgets post messages
// while syncing; the window hands them back to the tree as Sync events.
type Message struct {
	Topic string
	Value any
}

// String implements fmt.Stringer.
func (m Message) String() string { return fmt.Sprintf("%s=%v", m.Topic, m.Value) }

// Sync re-delivers a message posted during the current frame so every
// widget observes it before anything is drawn.
type Sync struct {
	Message Message
}

// Callback is the frame callback of an animating window. Delta is the
// capped time elapsed since the previous frame.
type Callback struct {
	Delta time.Duration
}

// Pointer is a pointer (mouse, touch, pen) event in window coordinates.
type Pointer struct {
	gpucontext.PointerEvent
}

// In reports whether the pointer lies inside r.
func (p Pointer) In(r region.Region) bool { return r.Contains(p.X, p.Y) }

// Scroll is a wheel or touchpad scroll event.
type Scroll struct {
	gpucontext.ScrollEvent
}

// Key is a keyboard key press or release.
type Key struct {
	Key       gpucontext.Key
	Modifiers gpucontext.Modifiers
	Pressed   bool
}

// Configure reports the size the compositor asks the window to take.
type Configure struct {
	Width, Height int
}

// Close is delivered when the compositor asks the window to close.
type Close struct{}

// Focus reports keyboard focus changes.
type Focus struct {
	Focused bool
}

func (Sync) isEvent()      {}
func (Callback) isEvent()  {}
func (Pointer) isEvent()   {}
func (Scroll) isEvent()    {}
func (Key) isEvent()       {}
func (Configure) isEvent() {}
func (Close) isEvent()     {}
func (Focus) isEvent()     {}

// Press returns a primary-button pointer-down event at (x, y).
func Press(x, y float64) Pointer {
	return Pointer{gpucontext.PointerEvent{
		Type:      gpucontext.PointerDown,
		X:         x,
		Y:         y,
		IsPrimary: true,
		Button:    gpucontext.ButtonLeft,
		Buttons:   gpucontext.ButtonsLeft,
	}}
}

// Release returns a primary-button pointer-up event at (x, y).
func Release(x, y float64) Pointer {
	return Pointer{gpucontext.PointerEvent{
		Type:      gpucontext.PointerUp,
		X:         x,
		Y:         y,
		IsPrimary: true,
		Button:    gpucontext.ButtonLeft,
	}}
}

// Move returns a pointer-move event at (x, y).
func Move(x, y float64) Pointer {
	return Pointer{gpucontext.PointerEvent{
		Type:      gpucontext.PointerMove,
		X:         x,
		Y:         y,
		IsPrimary: true,
		Button:    gpucontext.ButtonNone,
	}}
}
