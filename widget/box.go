package widget

import (
	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/raster"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

// Box decorates a child with padding, a background and a border. Content
// inside a box with an opaque background is restored to that background
// when it is repainted.
type Box struct {
	Child      ggui.Widget
	Padding    float64
	Background paint.RGBA
	Border     paint.RGBA
	// BorderWidth of zero draws no border.
	BorderWidth float64
	Radius      float64
	// Topic recolors the background from a paint.RGBA message.
	Topic string

	size ggui.Size
}

var _ ggui.Widget = (*Box)(nil)

// Padded wraps w in a transparent box with padding on every side.
func Padded(w ggui.Widget, padding float64) *Box {
	return &Box{Child: w, Padding: padding}
}

// Sync implements ggui.Widget.
func (b *Box) Sync(ctx *ggui.SyncContext, ev event.Event) ggui.Damage {
	d := ggui.DamageNone
	if c, ok := topicValue[paint.RGBA](ev, b.Topic); ok && c != b.Background {
		b.Background = c
		d = ggui.DamagePartial
	}
	if b.Child != nil {
		d = ggui.Max(d, b.Child.Sync(ctx, ev))
	}
	return d
}

// Layout implements ggui.Widget. The child gets the constraints shrunk by
// the inset; the box is the child's size plus the inset.
func (b *Box) Layout(ctx *ggui.RenderContext, c ggui.Constraints) ggui.Size {
	inset := b.inset()
	var child ggui.Size
	if b.Child != nil {
		child = b.Child.Layout(ctx, deflate(c, 2*inset))
	}
	b.size = c.Constrain(ggui.Size{Width: child.Width + 2*inset, Height: child.Height + 2*inset})
	return b.size
}

// Draw implements ggui.Widget.
func (b *Box) Draw(ctx *ggui.RenderContext, x, y float64) scene.Node {
	var child scene.Node = scene.None{}
	if b.Child != nil {
		inset := b.inset()
		child = b.Child.Draw(ctx, x+inset, y+inset)
	}
	rg := region.New(x, y, b.size.Width, b.size.Height)
	ext := scene.Extension{Child: child}
	if !b.Background.IsTransparent() {
		ext.Background = scene.Instruction{Region: rg, Primitive: raster.Rect{Color: b.Background, Radius: b.Radius}}
	}
	if b.BorderWidth > 0 && !b.Border.IsTransparent() {
		ext.Border = scene.Instruction{Region: rg, Primitive: raster.Border{Color: b.Border, Width: b.BorderWidth, Radius: b.Radius}}
	}
	if ext.Background.IsZero() && ext.Border.IsZero() {
		return child
	}
	return ext
}

func (b *Box) inset() float64 { return b.Padding + b.BorderWidth }

// deflate shrinks c by amount on both axes, keeping it valid.
func deflate(c ggui.Constraints, amount float64) ggui.Constraints {
	shrink := func(v float64) float64 { return max(v-amount, 0) }
	return ggui.Constraints{
		Min: ggui.Size{Width: shrink(c.Min.Width), Height: shrink(c.Min.Height)},
		Max: ggui.Size{Width: shrink(c.Max.Width), Height: shrink(c.Max.Height)},
	}
}
