// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/gogpu/ggui/buffer"
	"github.com/gogpu/ggui/event"
)

var (
	// ErrDestroyed is returned by Commit on a destroyed surface.
	ErrDestroyed = errors.New("surface: destroyed")

	// ErrNoSurfaces is returned by Dispatch once every surface is destroyed.
	ErrNoSurfaces = errors.New("surface: no surfaces left")

	// ErrIdle is returned by Dispatch when a display has nothing left to
	// deliver and never will, such as a headless display with an empty queue.
	ErrIdle = errors.New("surface: idle")
)

// Handler receives the events a display routes to one surface.
type Handler interface {
	HandleEvent(ev event.Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev event.Event)

// HandleEvent implements Handler.
func (f HandlerFunc) HandleEvent(ev event.Event) { f(ev) }

// Surface is a compositor surface. Attach, Damage and RequestFrame stage
// state that Commit applies atomically.
//
// Surfaces are NOT thread-safe. Each surface must be used from the
// goroutine that calls its display's Dispatch.
type Surface interface {
	// Attach stages buf as the next frame. The compositor releases the
	// buffer back to its pool once it no longer reads from it.
	Attach(buf *buffer.Buffer)

	// Damage marks rectangles of the staged buffer as changed.
	Damage(rects []image.Rectangle)

	// RequestFrame asks for a one-shot callback when it is a good time to
	// draw the next frame. The callback receives the presentation time.
	RequestFrame(fn func(now time.Duration))

	// Commit applies the staged state.
	Commit() error

	// SetTitle sets the window title.
	SetTitle(title string)

	// Destroy removes the surface. Pending frame callbacks never fire.
	Destroy()
}

// Display is a connection to a compositor.
type Display interface {
	// CreateSurface creates a surface whose events are delivered to h.
	// The display sends an initial event.Configure.
	CreateSurface(h Handler) (Surface, error)

	// Dispatch blocks until at least one event was delivered or ctx is
	// done.
	Dispatch(ctx context.Context) error

	// Close disconnects from the compositor.
	Close() error
}
