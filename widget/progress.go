package widget

import (
	"math"
	"time"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/raster"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

// DefaultProgressSpeed is how much of the bar Progress fills per second
// when Speed is zero.
const DefaultProgressSpeed = 1.0

// Progress colors used when the corresponding field is zero.
var (
	DefaultTrackColor = paint.Hex("#dddddd")
	DefaultFillColor  = paint.Hex("#3c78d8")
)

// Progress is a horizontal bar that animates toward its target. A message
// on Topic carrying a float64 in [0, 1] sets the target; the bar then
// requests frame callbacks until it gets there.
type Progress struct {
	Width, Height float64
	Track         paint.RGBA
	Fill          paint.RGBA
	// Speed is the fill rate in bar widths per second.
	Speed float64
	Topic string

	target float64
	value  float64
	size   ggui.Size
}

var _ ggui.Widget = (*Progress)(nil)

// Value returns the fraction currently shown.
func (p *Progress) Value() float64 { return p.value }

// Target returns the fraction the bar is moving toward.
func (p *Progress) Target() float64 { return p.target }

// Set jumps to v without animating.
func (p *Progress) Set(v float64) {
	p.target = clamp01(v)
	p.value = p.target
}

// Sync implements ggui.Widget.
func (p *Progress) Sync(_ *ggui.SyncContext, ev event.Event) ggui.Damage {
	switch ev := ev.(type) {
	case event.Callback:
		if p.value == p.target {
			return ggui.DamageNone
		}
		p.step(ev.Delta)
		if p.value != p.target {
			return ggui.DamageFrame
		}
		return ggui.DamagePartial
	default:
		v, ok := topicValue[float64](ev, p.Topic)
		if !ok || clamp01(v) == p.target {
			return ggui.DamageNone
		}
		p.target = clamp01(v)
		return ggui.DamageFrame
	}
}

func (p *Progress) step(delta time.Duration) {
	speed := p.Speed
	if speed <= 0 {
		speed = DefaultProgressSpeed
	}
	dist := speed * delta.Seconds()
	if math.Abs(p.target-p.value) <= dist {
		p.value = p.target
	} else if p.target > p.value {
		p.value += dist
	} else {
		p.value -= dist
	}
}

// Layout implements ggui.Widget.
func (p *Progress) Layout(_ *ggui.RenderContext, c ggui.Constraints) ggui.Size {
	p.size = c.Constrain(ggui.Size{Width: p.Width, Height: p.Height})
	return p.size
}

// Draw implements ggui.Widget. The filled part is rounded to whole pixels
// so a frame that moves it by less than a pixel draws nothing new.
func (p *Progress) Draw(_ *ggui.RenderContext, x, y float64) scene.Node {
	track := region.New(x, y, p.size.Width, p.size.Height)
	fill := scene.Node(scene.None{})
	if w := math.Round(p.value * p.size.Width); w > 0 {
		fill = scene.NewLeaf(region.New(x, y, w, p.size.Height), raster.Rect{Color: orDefault(p.Fill, DefaultFillColor)})
	}
	return scene.Extension{
		Background: scene.Instruction{Region: track, Primitive: raster.Rect{Color: orDefault(p.Track, DefaultTrackColor)}},
		Child:      fill,
	}
}

func clamp01(v float64) float64 { return min(max(v, 0), 1) }
