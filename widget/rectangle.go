package widget

import (
	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/raster"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

// Rectangle is a filled rectangle of a preferred size. A message on Topic
// carrying a paint.RGBA recolors it.
type Rectangle struct {
	Color         paint.RGBA
	Radius        float64
	Width, Height float64
	Topic         string

	size ggui.Size
}

var _ ggui.Widget = (*Rectangle)(nil)

// Sync implements ggui.Widget.
func (r *Rectangle) Sync(_ *ggui.SyncContext, ev event.Event) ggui.Damage {
	c, ok := topicValue[paint.RGBA](ev, r.Topic)
	if !ok || c == r.Color {
		return ggui.DamageNone
	}
	r.Color = c
	return ggui.DamagePartial
}

// Layout implements ggui.Widget.
func (r *Rectangle) Layout(_ *ggui.RenderContext, c ggui.Constraints) ggui.Size {
	r.size = c.Constrain(ggui.Size{Width: r.Width, Height: r.Height})
	return r.size
}

// Draw implements ggui.Widget.
func (r *Rectangle) Draw(_ *ggui.RenderContext, x, y float64) scene.Node {
	rg := region.New(x, y, r.size.Width, r.size.Height)
	if rg.IsEmpty() || r.Color.IsTransparent() {
		return scene.None{}
	}
	return scene.NewLeaf(rg, raster.Rect{Color: r.Color, Radius: r.Radius})
}

// topicValue extracts the value of a Sync event on topic.
func topicValue[T any](ev event.Event, topic string) (T, bool) {
	var zero T
	s, ok := ev.(event.Sync)
	if !ok || topic == "" || s.Message.Topic != topic {
		return zero, false
	}
	v, ok := s.Message.Value.(T)
	return v, ok
}
