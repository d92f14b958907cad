// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"image"
	"slices"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggui/buffer"
	"github.com/gogpu/ggui/event"
)

// Headless defaults.
const (
	DefaultWidth   = 640
	DefaultHeight  = 480
	DefaultRefresh = time.Second / 60
)

func init() {
	Register("headless", 10, func(opts Options) (Display, error) {
		return NewHeadless(WithSize(opts.Width, opts.Height)), nil
	}, nil)
}

// HeadlessOption configures a Headless display.
type HeadlessOption func(*Headless)

// WithSize sets the size new surfaces are configured with. Non-positive
// dimensions keep the default.
func WithSize(width, height int) HeadlessOption {
	return func(d *Headless) {
		if width > 0 && height > 0 {
			d.width, d.height = width, height
		}
	}
}

// WithRefresh sets the simulated vblank interval Dispatch advances the
// clock by when only frame callbacks are pending. Zero disables it.
func WithRefresh(interval time.Duration) HeadlessOption {
	return func(d *Headless) { d.refresh = interval }
}

// WithHoldBuffers makes surfaces keep the last committed buffer until the
// next commit, the way a real compositor scans out of it.
func WithHoldBuffers() HeadlessOption {
	return func(d *Headless) { d.hold = true }
}

type delivery struct {
	s  *HeadlessSurface
	ev event.Event
}

// Headless is an in-process Display. Input is queued with Inject and
// delivered by Dispatch; frame callbacks fire on Tick.
type Headless struct {
	width, height int
	refresh       time.Duration
	hold          bool

	now      time.Duration
	queue    []delivery
	surfaces []*HeadlessSurface
	closed   bool
}

var _ Display = (*Headless)(nil)

// NewHeadless creates a headless display.
func NewHeadless(opts ...HeadlessOption) *Headless {
	d := &Headless{width: DefaultWidth, height: DefaultHeight, refresh: DefaultRefresh}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CreateSurface implements Display.
func (d *Headless) CreateSurface(h Handler) (Surface, error) {
	if d.closed {
		return nil, ErrNoSurfaces
	}
	s := &HeadlessSurface{d: d, handler: h}
	d.surfaces = append(d.surfaces, s)
	d.queue = append(d.queue, delivery{s: s, ev: event.Configure{Width: d.width, Height: d.height}})
	return s, nil
}

// Inject queues ev for every live surface.
func (d *Headless) Inject(ev event.Event) {
	for _, s := range d.surfaces {
		if !s.destroyed {
			d.queue = append(d.queue, delivery{s: s, ev: ev})
		}
	}
}

// InjectTo queues ev for s only.
func (d *Headless) InjectTo(s *HeadlessSurface, ev event.Event) {
	d.queue = append(d.queue, delivery{s: s, ev: ev})
}

// Pending returns the number of queued events.
func (d *Headless) Pending() int { return len(d.queue) }

// Now returns the display clock.
func (d *Headless) Now() time.Duration { return d.now }

// Tick advances the clock to now and fires every armed frame callback. It
// returns the number of callbacks fired. Callbacks requested while firing
// wait for the next Tick.
func (d *Headless) Tick(now time.Duration) int {
	d.now = now
	fired := 0
	for _, s := range slices.Clone(d.surfaces) {
		if s.destroyed {
			continue
		}
		armed := s.armed
		s.armed = nil
		for _, fn := range armed {
			fn(now)
			fired++
		}
	}
	return fired
}

// Dispatch implements Display. It delivers every queued event. With the
// queue empty it simulates one vblank if any frame callback is armed, and
// otherwise reports ErrIdle.
func (d *Headless) Dispatch(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.closed || !d.live() {
		return ErrNoSurfaces
	}
	if len(d.queue) > 0 {
		queue := d.queue
		d.queue = nil
		for _, q := range queue {
			if !q.s.destroyed {
				q.s.handler.HandleEvent(q.ev)
			}
		}
		return nil
	}
	if d.refresh > 0 && d.armed() {
		d.Tick(d.now + d.refresh)
		return nil
	}
	return ErrIdle
}

// Close implements Display. It destroys every surface.
func (d *Headless) Close() error {
	for _, s := range d.surfaces {
		s.Destroy()
	}
	d.closed = true
	d.queue = nil
	return nil
}

func (d *Headless) live() bool {
	return slices.ContainsFunc(d.surfaces, func(s *HeadlessSurface) bool { return !s.destroyed })
}

func (d *Headless) armed() bool {
	return slices.ContainsFunc(d.surfaces, func(s *HeadlessSurface) bool {
		return !s.destroyed && len(s.armed) > 0
	})
}

// HeadlessSurface composes committed buffers into an in-memory screen.
type HeadlessSurface struct {
	d       *Headless
	handler Handler
	title   string

	staged *buffer.Buffer
	damage []image.Rectangle
	frame  func(time.Duration)

	screen     *image.RGBA
	held       *buffer.Buffer
	armed      []func(time.Duration)
	commits    int
	lastDamage []image.Rectangle
	destroyed  bool
}

var _ Surface = (*HeadlessSurface)(nil)

// Attach implements Surface.
func (s *HeadlessSurface) Attach(buf *buffer.Buffer) { s.staged = buf }

// Damage implements Surface.
func (s *HeadlessSurface) Damage(rects []image.Rectangle) {
	s.damage = append(s.damage, rects...)
}

// RequestFrame implements Surface.
func (s *HeadlessSurface) RequestFrame(fn func(now time.Duration)) { s.frame = fn }

// SetTitle implements Surface.
func (s *HeadlessSurface) SetTitle(title string) { s.title = title }

// Commit implements Surface. Only damaged rectangles of the attached buffer
// are copied to the screen, except when the buffer size changes.
func (s *HeadlessSurface) Commit() error {
	if s.destroyed {
		return ErrDestroyed
	}
	if buf := s.staged; buf != nil {
		s.present(buf)
		if s.d.hold {
			if s.held != nil && s.held != buf {
				s.held.Release()
			}
			s.held = buf
		} else {
			buf.Release()
		}
		s.lastDamage = s.damage
	} else {
		s.lastDamage = nil
	}
	if s.frame != nil {
		s.armed = append(s.armed, s.frame)
	}
	s.staged, s.damage, s.frame = nil, nil, nil
	s.commits++
	return nil
}

func (s *HeadlessSurface) present(buf *buffer.Buffer) {
	src := buf.Image()
	if s.screen == nil || s.screen.Bounds() != src.Bounds() {
		s.screen = image.NewRGBA(src.Bounds())
		draw.Draw(s.screen, src.Bounds(), src, image.Point{}, draw.Src)
		return
	}
	for _, r := range s.damage {
		r = r.Intersect(src.Bounds())
		if !r.Empty() {
			draw.Draw(s.screen, r, src, r.Min, draw.Src)
		}
	}
}

// Destroy implements Surface.
func (s *HeadlessSurface) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.armed = nil
	s.frame = nil
	if s.held != nil {
		s.held.Release()
		s.held = nil
	}
	if s.staged != nil {
		s.staged.Release()
		s.staged = nil
	}
}

// Screen returns the composed screen, or nil before the first buffer.
func (s *HeadlessSurface) Screen() *image.RGBA { return s.screen }

// Title returns the last title set.
func (s *HeadlessSurface) Title() string { return s.title }

// Commits returns the number of commits.
func (s *HeadlessSurface) Commits() int { return s.commits }

// LastDamage returns the damage of the last commit, nil when it carried no
// buffer.
func (s *HeadlessSurface) LastDamage() []image.Rectangle { return s.lastDamage }

// FramePending reports whether a committed frame callback has not fired.
func (s *HeadlessSurface) FramePending() bool { return len(s.armed) > 0 }

// Destroyed reports whether Destroy was called.
func (s *HeadlessSurface) Destroyed() bool { return s.destroyed }
