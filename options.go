package ggui

import (
	"time"

	"github.com/gogpu/ggui/buffer"
	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/raster"
	"github.com/gogpu/ggui/scene"
)

// Option configures a Window during creation.
//
// Example:
//
//	w, err := ggui.NewWindow(display, root,
//		ggui.WithConfig(cfg),
//		ggui.WithController(ctrl),
//	)
type Option func(*windowOptions)

// windowOptions holds optional configuration for Window creation. Explicit
// options override the corresponding Config fields.
type windowOptions struct {
	config     Config
	controller Controller
	background *paint.RGBA
	frameCap   time.Duration
	title      *string
	pool       *buffer.Pool
	fonts      *raster.Fonts
	trace      scene.Canvas
}

func defaultOptions() windowOptions {
	return windowOptions{
		config:     DefaultConfig(),
		controller: NopController{},
	}
}

// WithConfig sets the configuration the window starts from.
func WithConfig(cfg Config) Option {
	return func(o *windowOptions) {
		o.config = cfg
	}
}

// WithController sets the controller that receives posted messages.
func WithController(c Controller) Option {
	return func(o *windowOptions) {
		if c != nil {
			o.controller = c
		}
	}
}

// WithBackground sets the window background, the color damaged regions are
// restored to outside any decorated widget.
func WithBackground(c paint.RGBA) Option {
	return func(o *windowOptions) {
		o.background = &c
	}
}

// WithFrameCap sets the largest animation delta a frame callback reports.
func WithFrameCap(d time.Duration) Option {
	return func(o *windowOptions) {
		o.frameCap = d
	}
}

// WithTitle sets the initial window title.
func WithTitle(title string) Option {
	return func(o *windowOptions) {
		o.title = &title
	}
}

// WithPool makes the window draw into buffers from p instead of creating
// its own pool. The window does not close a pool it was given.
func WithPool(p *buffer.Pool) Option {
	return func(o *windowOptions) {
		o.pool = p
	}
}

// WithFonts shares a font set between windows.
func WithFonts(f *raster.Fonts) Option {
	return func(o *windowOptions) {
		o.fonts = f
	}
}

// WithTrace reports every damage and draw of every frame to c in addition
// to painting it. A recording.Recorder makes a convenient trace.
func WithTrace(c scene.Canvas) Option {
	return func(o *windowOptions) {
		o.trace = c
	}
}
