// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package buffer provides the shared-memory pixel buffers a window hands to
// the compositor.
//
// A Pool is one contiguous mapping, modeled on a wl_shm pool, carved into
// slots. On Linux the mapping is a memfd so the file descriptor can be sent
// to a display server; elsewhere it is ordinary heap memory.
//
//	pool, err := buffer.NewPool(buffer.DefaultSize, buffer.DefaultMaxSize)
//	buf, err := pool.Acquire(640, 480)
//	draw(buf.Image())
//	surface.Attach(buf) // the compositor calls buf.Release when done
//
// Slots are handed out first fit, lowest offset first, so a window whose
// buffers are released promptly keeps drawing into the same slot. Pools are
// owned by a single window and are not safe for concurrent use.
package buffer
