// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package buffer

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gputypes"
)

// Pool sizing defaults.
const (
	DefaultSize    = 4 << 20
	DefaultMaxSize = 256 << 20
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Format is the pixel format of every buffer: 8-bit RGBA in memory order,
// which is wl_shm's ABGR8888.
const Format = gputypes.TextureFormatRGBA8Unorm

var (
	// ErrPoolExhausted is returned when a buffer does not fit even after
	// growing the pool to its maximum size.
	ErrPoolExhausted = errors.New("buffer: pool exhausted")

	// ErrInvalidSize is returned for non-positive buffer dimensions.
	ErrInvalidSize = errors.New("buffer: invalid size")

	// ErrClosed is returned by Acquire after Close.
	ErrClosed = errors.New("buffer: pool closed")
)

// memory is the mapping behind a pool.
type memory interface {
	bytes() []byte
	resize(size int) error
	fileDescriptor() int
	close() error
}

// slot is a byte range of the pool. Slots tile the used part of the
// mapping in offset order.
type slot struct {
	offset, size int
	busy         bool
}

// Pool carves pixel buffers out of one growable mapping.
type Pool struct {
	mem     memory
	size    int
	maxSize int
	slots   []*slot
	closed  bool
	// serial counts successful acquisitions.
	serial uint64
}

// NewPool creates a pool with an initial mapping of size bytes that may
// grow up to maxSize. A maxSize below size is raised to size.
func NewPool(size, maxSize int) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: pool size %d", ErrInvalidSize, size)
	}
	maxSize = max(maxSize, size)
	mem, err := newMemory(size)
	if err != nil {
		return nil, err
	}
	return &Pool{mem: mem, size: size, maxSize: maxSize}, nil
}

// Size returns the current mapping size in bytes.
func (p *Pool) Size() int { return p.size }

// MaxSize returns the size the mapping may grow to.
func (p *Pool) MaxSize() int { return p.maxSize }

// Fd returns the file descriptor of the shared mapping, or -1 when the pool
// is heap backed.
func (p *Pool) Fd() int { return p.mem.fileDescriptor() }

// Busy returns the number of buffers handed out and not yet released.
func (p *Pool) Busy() int {
	n := 0
	for _, s := range p.slots {
		if s.busy {
			n++
		}
	}
	return n
}

// Acquire returns a buffer of w×h pixels. A released slot is reused when one
// is large enough; otherwise a new slot is carved at the end of the pool,
// growing the mapping if needed.
func (p *Pool) Acquire(w, h int) (*Buffer, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	need := w * h * BytesPerPixel

	s, err := p.allocate(need)
	if err != nil {
		return nil, err
	}
	p.serial++
	return &Buffer{pool: p, slot: s, width: w, height: h, serial: p.serial}, nil
}

func (p *Pool) allocate(need int) (*slot, error) {
	for i, s := range p.slots {
		if s.busy || s.size < need {
			continue
		}
		if s.size > need {
			rest := &slot{offset: s.offset + need, size: s.size - need}
			p.slots = slices.Insert(p.slots, i+1, rest)
			s.size = need
		}
		s.busy = true
		return s, nil
	}

	offset := p.used()
	if last := p.last(); last != nil && !last.busy {
		// Extend the free tail instead of leaving a gap before the new slot.
		offset = last.offset
		p.slots = p.slots[:len(p.slots)-1]
	}
	end := offset + need
	if end > p.size {
		if err := p.grow(end); err != nil {
			return nil, err
		}
	}
	s := &slot{offset: offset, size: need, busy: true}
	p.slots = append(p.slots, s)
	return s, nil
}

func (p *Pool) grow(atLeast int) error {
	if atLeast > p.maxSize {
		return fmt.Errorf("%w: need %d bytes, max %d", ErrPoolExhausted, atLeast, p.maxSize)
	}
	size := min(max(p.size*2, atLeast), p.maxSize)
	if err := p.mem.resize(size); err != nil {
		return fmt.Errorf("%w: %w", ErrPoolExhausted, err)
	}
	p.size = size
	return nil
}

func (p *Pool) used() int {
	if last := p.last(); last != nil {
		return last.offset + last.size
	}
	return 0
}

func (p *Pool) last() *slot {
	if len(p.slots) == 0 {
		return nil
	}
	return p.slots[len(p.slots)-1]
}

// release frees s and merges it with free neighbors.
func (p *Pool) release(s *slot) {
	s.busy = false
	i := p.index(s)
	if i < 0 {
		return
	}
	if i+1 < len(p.slots) && !p.slots[i+1].busy {
		s.size += p.slots[i+1].size
		p.slots = slices.Delete(p.slots, i+1, i+2)
	}
	if i > 0 && !p.slots[i-1].busy {
		p.slots[i-1].size += s.size
		p.slots = slices.Delete(p.slots, i, i+1)
	}
}

func (p *Pool) index(s *slot) int { return slices.Index(p.slots, s) }

// Close unmaps the pool. Outstanding buffers must not be used afterwards.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.slots = nil
	return p.mem.close()
}

// Buffer is a pixel buffer living in a pool slot. It is handed to the
// compositor on commit and returned to the pool by Release.
type Buffer struct {
	pool          *Pool
	slot          *slot
	width, height int
	serial        uint64
	released      bool
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int { return b.width * BytesPerPixel }

// Offset returns the byte offset of the buffer inside the pool.
func (b *Buffer) Offset() int { return b.slot.offset }

// Serial returns the position of this buffer in the pool's acquisition
// order, starting at 1. A gap between two buffers taken by the same owner
// means someone else acquired in between and may have written to the slot.
func (b *Buffer) Serial() uint64 { return b.serial }

// Format returns the pixel format.
func (b *Buffer) Format() gputypes.TextureFormat { return Format }

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// Pixels returns the buffer bytes. The slice aliases the pool mapping and
// is invalidated when the pool grows.
func (b *Buffer) Pixels() []byte {
	n := b.height * b.Stride()
	return b.pool.mem.bytes()[b.slot.offset : b.slot.offset+n : b.slot.offset+n]
}

// Image returns an image aliasing the buffer pixels, valid until the next
// Acquire on the pool.
func (b *Buffer) Image() *image.RGBA {
	return &image.RGBA{Pix: b.Pixels(), Stride: b.Stride(), Rect: b.Bounds()}
}

// Release returns the slot to the pool. It is idempotent.
func (b *Buffer) Release() {
	if b.released || b.pool.closed {
		b.released = true
		return
	}
	b.released = true
	b.pool.release(b.slot)
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool { return b.released }
