package ggui

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/ggui/buffer"
	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/raster"
	"github.com/gogpu/ggui/recording"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
	"github.com/gogpu/ggui/surface"
)

// Stats counts what a window did with its frames.
type Stats struct {
	// Frames is the number of buffers committed.
	Frames int
	// FullRepaints is the number of committed frames painted from scratch.
	FullRepaints int
	// Skipped counts renders that changed nothing and committed no buffer.
	Skipped int
	// Deferred counts events whose damage waited for a frame callback.
	Deferred int
	// AllocFailures counts frames dropped because no buffer was available.
	AllocFailures int
	// CommitFailures counts buffers the surface refused. The next frame is
	// painted from scratch.
	CommitFailures int
	// SyncPasses is the total number of message drain passes.
	SyncPasses int
}

// Window drives one widget tree on one surface: it syncs events, draws
// damaged frames into pool buffers and paces animations with frame
// callbacks.
//
// A Window must only be used from the goroutine that dispatches its
// display.
type Window struct {
	surface    surface.Surface
	root       Widget
	pool       *buffer.Pool
	ownsPool   bool
	background paint.RGBA
	trace      scene.Canvas

	rctx  *RenderContext
	sctx  *SyncContext
	tree  scene.Tree
	list  region.List
	pacer Pacer

	width, height int

	// damage accumulates until a buffer is drawn.
	damage    Damage
	animating bool
	// pending is set from commit until the frame callback fires.
	pending bool

	// painted, lastOffset, lastSize and lastSerial describe the buffer
	// last committed; the next frame may be drawn incrementally only onto
	// the same slot with nothing acquired from the pool in between.
	painted    bool
	lastOffset int
	lastSize   image.Point
	lastSerial uint64

	closed bool
	stats  Stats
}

var (
	_ surface.Handler = (*Window)(nil)
	_ WindowHandle    = (*Window)(nil)
)

// NewWindow creates a window on d showing root. The window draws once the
// display configures its size.
func NewWindow(d surface.Display, root Widget, opts ...Option) (*Window, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cfg := o.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &Window{
		root:       root,
		pool:       o.pool,
		background: cfg.BackgroundColor(),
		trace:      o.trace,
		pacer:      Pacer{Cap: cfg.FrameCap.Duration, Interval: cfg.FrameInterval.Duration},
	}
	if o.background != nil {
		w.background = *o.background
	}
	if o.frameCap > 0 {
		w.pacer.Cap = o.frameCap
	}
	w.rctx = &RenderContext{Fonts: o.fonts}
	if w.rctx.Fonts == nil {
		w.rctx.Fonts = raster.NewFonts()
	}
	w.sctx = NewSyncContext(o.controller, w)

	if w.pool == nil {
		pool, err := buffer.NewPool(cfg.PoolSize, cfg.MaxPoolSize)
		if err != nil {
			return nil, fmt.Errorf("ggui: create window: %w", err)
		}
		w.pool = pool
		w.ownsPool = true
	}

	s, err := d.CreateSurface(w)
	if err != nil {
		if w.ownsPool {
			_ = w.pool.Close()
		}
		return nil, fmt.Errorf("ggui: create window: %w", err)
	}
	w.surface = s

	title := cfg.Title
	if o.title != nil {
		title = *o.title
	}
	s.SetTitle(title)

	Logger().Info("ggui: window created", "title", title)
	return w, nil
}

// HandleEvent implements surface.Handler.
func (w *Window) HandleEvent(ev event.Event) {
	if w.closed {
		return
	}
	switch ev := ev.(type) {
	case event.Close:
		w.Close()
		return
	case event.Configure:
		if ev.Width != w.width || ev.Height != w.height {
			w.width, w.height = ev.Width, ev.Height
			w.damage = Max(w.damage, DamagePartial)
		}
	}

	d := w.sync(ev)
	if d == DamageFrame && !w.animating {
		w.animating = true
		w.pacer.Reset()
	}
	w.damage = Max(w.damage, d)

	if w.closed || w.damage == DamageNone {
		return
	}
	if w.pending {
		w.stats.Deferred++
		return
	}
	w.render()
}

func (w *Window) sync(ev event.Event) Damage {
	d, passes := Sync(w.root, w.sctx, ev)
	w.stats.SyncPasses += passes
	return d
}

// frameDone is the frame callback of the last commit.
func (w *Window) frameDone(now time.Duration) {
	w.pending = false
	if w.closed {
		return
	}
	if w.animating {
		delta := w.pacer.Tick(now)
		d := w.sync(event.Callback{Delta: delta})
		w.animating = d == DamageFrame
		w.damage = Max(w.damage, d)
		if w.closed {
			return
		}
	}
	if w.damage != DamageNone {
		w.render()
	}
}

// render lays out and draws the tree, then submits the buffer. It must
// only run while no frame callback is pending.
func (w *Window) render() {
	if w.width <= 0 || w.height <= 0 {
		return
	}
	size := image.Pt(w.width, w.height)
	w.root.Layout(w.rctx, Tight(Size{Width: float64(w.width), Height: float64(w.height)}))
	node := w.root.Draw(w.rctx, 0, 0)

	buf, err := w.pool.Acquire(w.width, w.height)
	if err != nil {
		w.stats.AllocFailures++
		Logger().Warn("ggui: buffer allocation failed, frame deferred",
			"width", w.width, "height", w.height, "err", err)
		// The damage stays accumulated and the frame callback retries.
		w.requestFrame()
		return
	}

	bounds := image.Rectangle{Max: size}
	whole := region.FromRect(bounds)
	bg := scene.Color(w.background)
	canvas := w.canvas(buf.Image())

	full := !w.painted || size != w.lastSize || buf.Offset() != w.lastOffset ||
		buf.Serial() != w.lastSerial+1
	var rects []image.Rectangle
	if full {
		w.tree.Reset()
		canvas.Damage(whole, bg)
		scene.Render(node, canvas)
		w.tree.Replace(node)
		rects = []image.Rectangle{bounds}
	} else {
		w.list.Reset()
		w.tree.Update(node, bg, &damageCanvas{Canvas: canvas, list: &w.list})
		rects = w.list.Rects(bounds)
	}

	if len(rects) == 0 {
		buf.Release()
		// Nothing was drawn, so the slot still holds the last frame.
		w.lastSerial = buf.Serial()
		w.stats.Skipped++
		w.damage = DamageNone
		if w.animating {
			w.requestFrame()
		}
		return
	}

	w.surface.Attach(buf)
	w.surface.Damage(rects)
	w.surface.RequestFrame(w.frameDone)
	if err := w.surface.Commit(); err != nil {
		w.stats.CommitFailures++
		Logger().Warn("ggui: commit failed, next frame repaints", "err", err)
		buf.Release()
		// The retained tree already matches the new scene but the screen
		// does not; forget both so the retry draws everything.
		w.tree.Reset()
		w.painted = false
		w.damage = Max(w.damage, DamagePartial)
		w.requestFrame()
		return
	}
	w.pending = true
	w.painted = true
	w.lastSerial = buf.Serial()
	w.lastOffset = buf.Offset()
	w.lastSize = size
	w.damage = DamageNone
	w.stats.Frames++
	if full {
		w.stats.FullRepaints++
	}
	Logger().Debug("ggui: frame committed", "full", full, "rects", len(rects), "offset", buf.Offset())
}

// requestFrame commits without a buffer so the compositor still sends a
// frame callback.
func (w *Window) requestFrame() {
	w.surface.RequestFrame(w.frameDone)
	if err := w.surface.Commit(); err != nil {
		Logger().Warn("ggui: commit failed", "err", err)
		return
	}
	w.pending = true
}

func (w *Window) canvas(dst *image.RGBA) scene.Canvas {
	c := raster.Canvas{Dst: dst}
	if w.trace == nil {
		return c
	}
	return recording.Tee(c, w.trace)
}

// damageCanvas collects the regions a diff touches.
type damageCanvas struct {
	scene.Canvas
	list *region.List
}

func (c *damageCanvas) Damage(r region.Region, bg scene.Background) {
	c.Canvas.Damage(r, bg)
	c.list.Push(r)
}

func (c *damageCanvas) Draw(in scene.Instruction) {
	c.Canvas.Draw(in)
	c.list.Push(in.Region)
}

// Close destroys the surface and drops the retained tree and pending
// frame state. It is idempotent.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.surface.Destroy()
	w.tree.Reset()
	w.pending = false
	w.animating = false
	w.damage = DamageNone
	if w.ownsPool {
		_ = w.pool.Close()
	}
	Logger().Info("ggui: window closed")
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	if !w.closed {
		w.surface.SetTitle(title)
	}
}

// Closed reports whether Close was called.
func (w *Window) Closed() bool { return w.closed }

// Size returns the configured size in pixels.
func (w *Window) Size() (width, height int) { return w.width, w.height }

// Damage returns the damage accumulated but not yet drawn.
func (w *Window) Damage() Damage { return w.damage }

// Pending reports whether a frame callback is outstanding.
func (w *Window) Pending() bool { return w.pending }

// Animating reports whether the last sync asked for another frame.
func (w *Window) Animating() bool { return w.animating }

// Tree returns the retained scene of the last drawn frame.
func (w *Window) Tree() *scene.Tree { return &w.tree }

// Stats returns frame counters.
func (w *Window) Stats() Stats { return w.stats }

// Surface returns the window's surface.
func (w *Window) Surface() surface.Surface { return w.surface }
