// Package ggui is the core of a retained-mode UI toolkit that renders a
// widget tree into shared-memory buffers and repaints only what changed.
//
// # Overview
//
// A frame moves through four stages:
//
//  1. Sync: an input event is passed down the widget tree. Every widget
//     reports how much redraw it needs as a Damage. Messages widgets post
//     while syncing are drained immediately, one extra pass per message,
//     so the whole tree sees a consistent state before anything is drawn.
//  2. Layout and Draw: widgets are measured and build a scene.Node tree
//     describing the frame.
//  3. Diff: the new tree is compared position by position with the one
//     retained from the last frame. Changed leaves are repainted over
//     their inherited background; structural changes repaint whole
//     subtrees.
//  4. Submit: the buffer, the damaged rectangles and a frame callback
//     request are committed to the surface.
//
// # Quick Start
//
//	d := surface.NewHeadless()
//	w, err := ggui.NewWindow(d, &widget.Label{Text: "hello"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer w.Close()
//	if err := ggui.Run(ctx, d); err != nil {
//		log.Fatal(err)
//	}
//
// # Animation
//
// A widget that returns DamageFrame from Sync keeps the window animating:
// every frame callback is turned into an event.Callback carrying the time
// since the previous frame, capped so a stalled process does not make
// animations jump.
//
// # Threading
//
// A window and everything it owns is driven from the goroutine that calls
// Run. Nothing in this package blocks except Display.Dispatch.
//
// # Logging
//
// ggui is silent by default. See SetLogger.
package ggui
