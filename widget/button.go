package widget

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/raster"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

// Button colors used when the corresponding field is zero.
var (
	DefaultButtonColor  = paint.Hex("#e0e0e0")
	DefaultHoverColor   = paint.Hex("#d0d0d0")
	DefaultPressedColor = paint.Hex("#a8a8a8")
	DefaultButtonBorder = paint.Hex("#808080")
)

// ButtonPadding is the space between a button's border and its text.
const ButtonPadding = 6

// Button is a clickable text button. A primary press and release inside
// the button posts Message{Topic, Value}.
type Button struct {
	Text  string
	Topic string
	Value any

	Color        paint.RGBA
	HoverColor   paint.RGBA
	PressedColor paint.RGBA
	TextColor    paint.RGBA
	Disabled     bool

	label   Label
	size    ggui.Size
	bounds  region.Region
	hovered bool
	pressed bool
}

var _ ggui.Widget = (*Button)(nil)

// Sync implements ggui.Widget. Hit testing uses the bounds of the last
// Draw.
func (b *Button) Sync(ctx *ggui.SyncContext, ev event.Event) ggui.Damage {
	p, ok := ev.(event.Pointer)
	if !ok || b.Disabled {
		return ggui.DamageNone
	}
	inside := p.In(b.bounds)
	hovered, pressed := b.hovered, b.pressed
	switch p.Type {
	case gpucontext.PointerMove:
		b.hovered = inside
	case gpucontext.PointerDown:
		b.hovered = inside
		if inside && p.Button == gpucontext.ButtonLeft {
			b.pressed = true
		}
	case gpucontext.PointerUp:
		b.hovered = inside
		if b.pressed && p.Button == gpucontext.ButtonLeft {
			b.pressed = false
			if inside {
				ctx.Post(ggui.Message{Topic: b.Topic, Value: b.Value})
			}
		}
	case gpucontext.PointerLeave, gpucontext.PointerCancel:
		b.hovered, b.pressed = false, false
	}
	if hovered == b.hovered && pressed == b.pressed {
		return ggui.DamageNone
	}
	return ggui.DamagePartial
}

// Pressed reports whether the button is held down.
func (b *Button) Pressed() bool { return b.pressed }

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// Bounds returns where the button was last drawn.
func (b *Button) Bounds() region.Region { return b.bounds }

// Layout implements ggui.Widget.
func (b *Button) Layout(ctx *ggui.RenderContext, c ggui.Constraints) ggui.Size {
	b.label.Text = b.Text
	b.label.Color = b.TextColor
	inset := ButtonPadding + 1.0
	text := b.label.Layout(ctx, ggui.Loose(deflate(c, 2*inset).Max))
	b.size = c.Constrain(ggui.Size{Width: text.Width + 2*inset, Height: text.Height + 2*inset})
	return b.size
}

// Draw implements ggui.Widget. The label is centered.
func (b *Button) Draw(ctx *ggui.RenderContext, x, y float64) scene.Node {
	b.bounds = region.New(x, y, b.size.Width, b.size.Height)
	tx := x + (b.size.Width-b.label.size.Width)/2
	ty := y + (b.size.Height-b.label.size.Height)/2
	return scene.Extension{
		Background: scene.Instruction{Region: b.bounds, Primitive: raster.Rect{Color: b.fill()}},
		Border:     scene.Instruction{Region: b.bounds, Primitive: raster.Border{Color: DefaultButtonBorder, Width: 1}},
		Child:      b.label.Draw(ctx, tx, ty),
	}
}

func (b *Button) fill() paint.RGBA {
	switch {
	case b.pressed:
		return orDefault(b.PressedColor, DefaultPressedColor)
	case b.hovered:
		return orDefault(b.HoverColor, DefaultHoverColor)
	}
	return orDefault(b.Color, DefaultButtonColor)
}

func orDefault(c, def paint.RGBA) paint.RGBA {
	if c == (paint.RGBA{}) {
		return def
	}
	return c
}
