package ggui

import (
	"math"

	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/raster"
	"github.com/gogpu/ggui/scene"
)

// Size is a width and height in layout units.
type Size struct {
	Width, Height float64
}

// Constraints bound the size a widget may take in Layout.
type Constraints struct {
	Min, Max Size
}

// Tight returns constraints that allow exactly s.
func Tight(s Size) Constraints { return Constraints{Min: s, Max: s} }

// Loose returns constraints that allow anything up to s.
func Loose(s Size) Constraints { return Constraints{Max: s} }

// Unbounded returns constraints with no upper limit.
func Unbounded() Constraints {
	return Constraints{Max: Size{Width: math.Inf(1), Height: math.Inf(1)}}
}

// Constrain clamps s into c.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  min(max(s.Width, c.Min.Width), c.Max.Width),
		Height: min(max(s.Height, c.Min.Height), c.Max.Height),
	}
}

// RenderContext carries the per-window resources widgets need to lay out
// and draw. Widgets must not retain it.
type RenderContext struct {
	// Fonts owns the window's faces and glyph cache.
	Fonts *raster.Fonts
}

// NewRenderContext creates a render context with a fresh font set.
func NewRenderContext() *RenderContext {
	return &RenderContext{Fonts: raster.NewFonts()}
}

// Widget is a node of the UI tree.
//
// Sync applies an event to the widget's state and reports the damage.
// Containers pass the event to their children and fold the results with
// Max.
//
// Layout measures the widget within c and remembers the result.
//
// Draw describes the widget at (x, y) as a scene node. It must be pure:
// with unchanged state, layout and position it returns a node that is
// scene.Equal to the previous one.
type Widget interface {
	Sync(ctx *SyncContext, ev event.Event) Damage
	Layout(ctx *RenderContext, c Constraints) Size
	Draw(ctx *RenderContext, x, y float64) scene.Node
}
