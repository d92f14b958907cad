// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the display-server side of a window.
//
// A Display owns the connection to a compositor and is the only place a
// window blocks: Dispatch waits for input and delivers it to the Handler of
// each Surface. A Surface receives finished frames: a buffer, the damaged
// rectangles, and a request for a one-shot frame callback, applied
// atomically by Commit.
//
// # Displays
//
//   - Headless: an in-process compositor that keeps the composed screen in
//     an *image.RGBA. It drives tests and the demo, and simulates vblank
//     with Tick.
//
// # Registry
//
// Backends register a Factory under a name and a priority:
//
//	surface.Register("headless", 10, newHeadless, nil)
//
//	d, err := surface.Open("", surface.Options{Width: 800, Height: 600})
//
// Open with an empty name picks the highest-priority available backend.
package surface
