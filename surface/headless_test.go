// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggui/buffer"
	"github.com/gogpu/ggui/event"
)

type recorder struct{ events []event.Event }

func (r *recorder) HandleEvent(ev event.Event) { r.events = append(r.events, ev) }

func newSurface(t *testing.T, opts ...HeadlessOption) (*Headless, *HeadlessSurface, *recorder) {
	t.Helper()
	d := NewHeadless(opts...)
	rec := &recorder{}
	s, err := d.CreateSurface(rec)
	require.NoError(t, err)
	return d, s.(*HeadlessSurface), rec
}

func fill(t *testing.T, pool *buffer.Pool, w, h int, c color.RGBA) *buffer.Buffer {
	t.Helper()
	buf, err := pool.Acquire(w, h)
	require.NoError(t, err)
	img := buf.Image()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return buf
}

func TestCreateSurfaceSendsConfigure(t *testing.T) {
	d, _, rec := newSurface(t, WithSize(320, 200))
	require.NoError(t, d.Dispatch(context.Background()))
	assert.Equal(t, []event.Event{event.Configure{Width: 320, Height: 200}}, rec.events)
}

func TestDispatchDeliversInOrder(t *testing.T) {
	d, _, rec := newSurface(t, WithRefresh(0))
	d.Inject(event.Press(1, 1))
	d.Inject(event.Release(1, 1))
	assert.Equal(t, 3, d.Pending())

	require.NoError(t, d.Dispatch(context.Background()))
	require.Len(t, rec.events, 3)
	assert.IsType(t, event.Configure{}, rec.events[0])
	assert.Equal(t, event.Press(1, 1), rec.events[1])
	assert.Equal(t, event.Release(1, 1), rec.events[2])

	assert.ErrorIs(t, d.Dispatch(context.Background()), ErrIdle)
}

func TestDispatchHonorsContext(t *testing.T) {
	d, _, _ := newSurface(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Dispatch(ctx), context.Canceled)
}

func TestCommitCopiesOnlyDamage(t *testing.T) {
	_, s, _ := newSurface(t)
	pool, err := buffer.NewPool(1<<16, 1<<16)
	require.NoError(t, err)
	defer pool.Close()

	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	s.Attach(fill(t, pool, 8, 8, red))
	s.Damage([]image.Rectangle{image.Rect(0, 0, 8, 8)})
	require.NoError(t, s.Commit())
	assert.Equal(t, red, s.Screen().RGBAAt(7, 7))
	assert.Equal(t, 0, pool.Busy(), "buffers are released once copied")

	s.Attach(fill(t, pool, 8, 8, blue))
	s.Damage([]image.Rectangle{image.Rect(0, 0, 2, 2)})
	require.NoError(t, s.Commit())
	assert.Equal(t, blue, s.Screen().RGBAAt(1, 1))
	assert.Equal(t, red, s.Screen().RGBAAt(5, 5), "undamaged pixels keep the previous frame")
	assert.Equal(t, []image.Rectangle{image.Rect(0, 0, 2, 2)}, s.LastDamage())
	assert.Equal(t, 2, s.Commits())
}

func TestHoldBuffers(t *testing.T) {
	_, s, _ := newSurface(t, WithHoldBuffers())
	pool, err := buffer.NewPool(1<<16, 1<<16)
	require.NoError(t, err)
	defer pool.Close()

	a := fill(t, pool, 4, 4, color.RGBA{A: 255})
	s.Attach(a)
	require.NoError(t, s.Commit())
	assert.False(t, a.Released(), "the displayed buffer stays with the compositor")

	b := fill(t, pool, 4, 4, color.RGBA{A: 255})
	s.Attach(b)
	require.NoError(t, s.Commit())
	assert.True(t, a.Released())
	assert.False(t, b.Released())

	s.Destroy()
	assert.True(t, b.Released())
}

func TestFrameCallbacks(t *testing.T) {
	d, s, _ := newSurface(t)
	var got []time.Duration
	var cb func(time.Duration)
	cb = func(now time.Duration) {
		got = append(got, now)
		s.RequestFrame(cb)
		require.NoError(t, s.Commit())
	}

	s.RequestFrame(cb)
	assert.Equal(t, 0, d.Tick(time.Millisecond), "uncommitted requests do not fire")
	require.NoError(t, s.Commit())
	assert.True(t, s.FramePending())

	assert.Equal(t, 1, d.Tick(10*time.Millisecond))
	assert.Equal(t, 1, d.Tick(20*time.Millisecond))
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, got)
}

func TestDispatchSimulatesVBlank(t *testing.T) {
	d, s, _ := newSurface(t, WithRefresh(10*time.Millisecond))
	require.NoError(t, d.Dispatch(context.Background())) // configure

	var fired time.Duration
	s.RequestFrame(func(now time.Duration) { fired = now })
	require.NoError(t, s.Commit())

	require.NoError(t, d.Dispatch(context.Background()))
	assert.Equal(t, 10*time.Millisecond, fired)
	assert.ErrorIs(t, d.Dispatch(context.Background()), ErrIdle)
}

func TestDestroy(t *testing.T) {
	d, s, _ := newSurface(t)
	s.RequestFrame(func(time.Duration) { t.Error("callback of a destroyed surface fired") })
	require.NoError(t, s.Commit())

	s.Destroy()
	assert.True(t, s.Destroyed())
	assert.Zero(t, d.Tick(time.Second))
	assert.ErrorIs(t, s.Commit(), ErrDestroyed)
	assert.ErrorIs(t, d.Dispatch(context.Background()), ErrNoSurfaces)
}

func TestSetTitle(t *testing.T) {
	_, s, _ := newSurface(t)
	s.SetTitle("hello")
	assert.Equal(t, "hello", s.Title())
}

func TestRegistry(t *testing.T) {
	assert.Contains(t, Available(), "headless")

	d, err := Open("", Options{Width: 100, Height: 50})
	require.NoError(t, err)
	h, ok := d.(*Headless)
	require.True(t, ok)
	assert.Equal(t, 100, h.width)

	_, err = Open("nope", Options{})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	Register("broken", 1, nil, func() bool { return false })
	defer Unregister("broken")
	assert.NotContains(t, Available(), "broken")
	_, err = Open("broken", Options{})
	assert.ErrorIs(t, err, ErrNoBackendAvailable)
}
