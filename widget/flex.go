package widget

import (
	"math"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/scene"
)

// Direction is the main axis of a Flex.
type Direction uint8

const (
	Horizontal Direction = iota // Children laid out left to right
	Vertical                    // Children laid out top to bottom
)

// Align positions children on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to the start of the cross axis
	AlignCenter               // Center on the cross axis
	AlignEnd                  // Align to the end of the cross axis
	AlignStretch              // Fill the cross axis
)

// Flex lays its children out in a row or column, separated by Gap.
// Children wrapped with Grow share the main-axis space left over by the
// others in proportion to their factors.
type Flex struct {
	Direction Direction
	Align     Align
	Gap       float64
	Children  []ggui.Widget

	// offsets are the child positions of the last layout, relative to the
	// flex origin.
	offsets []offset
	size    ggui.Size
}

type offset struct{ x, y float64 }

var _ ggui.Widget = (*Flex)(nil)

// Row returns a horizontal Flex.
func Row(children ...ggui.Widget) *Flex {
	return &Flex{Direction: Horizontal, Children: children}
}

// Column returns a vertical Flex.
func Column(children ...ggui.Widget) *Flex {
	return &Flex{Direction: Vertical, Children: children}
}

// Sync implements ggui.Widget. Every child sees the event; the result is
// the largest damage any of them reported.
func (f *Flex) Sync(ctx *ggui.SyncContext, ev event.Event) ggui.Damage {
	d := ggui.DamageNone
	for _, c := range f.Children {
		d = ggui.Max(d, c.Sync(ctx, ev))
	}
	return d
}

// Layout implements ggui.Widget. Fixed children are measured first with an
// unbounded main axis, then growing children split what remains.
func (f *Flex) Layout(ctx *ggui.RenderContext, c ggui.Constraints) ggui.Size {
	mainMax, crossMax := f.axes(c.Max)
	_, crossMin := f.axes(c.Min)
	gaps := f.Gap * float64(max(len(f.Children)-1, 0))

	sizes := make([]ggui.Size, len(f.Children))
	used, total := gaps, 0.0
	for i, child := range f.Children {
		if g, ok := child.(*Grower); ok {
			total += g.factor()
			continue
		}
		sizes[i] = child.Layout(ctx, f.childConstraints(0, math.Inf(1), crossMax))
		main, _ := f.axes(sizes[i])
		used += main
	}

	free := 0.0
	if !math.IsInf(mainMax, 1) {
		free = max(mainMax-used, 0)
	}
	for i, child := range f.Children {
		g, ok := child.(*Grower)
		if !ok {
			continue
		}
		share := 0.0
		if total > 0 {
			share = free * g.factor() / total
		}
		sizes[i] = child.Layout(ctx, f.childConstraints(share, share, crossMax))
		main, _ := f.axes(sizes[i])
		used += main
	}

	cross := 0.0
	for _, s := range sizes {
		_, cs := f.axes(s)
		cross = max(cross, cs)
	}
	if f.Align == AlignStretch && !math.IsInf(crossMax, 1) {
		cross = crossMax
	}
	cross = max(cross, crossMin)

	f.offsets = f.offsets[:0]
	pos := 0.0
	for _, s := range sizes {
		main, cs := f.axes(s)
		var shift float64
		switch f.Align {
		case AlignCenter:
			shift = (cross - cs) / 2
		case AlignEnd:
			shift = cross - cs
		}
		if f.Direction == Horizontal {
			f.offsets = append(f.offsets, offset{x: pos, y: shift})
		} else {
			f.offsets = append(f.offsets, offset{x: shift, y: pos})
		}
		pos += main + f.Gap
	}

	if f.Direction == Horizontal {
		f.size = c.Constrain(ggui.Size{Width: used, Height: cross})
	} else {
		f.size = c.Constrain(ggui.Size{Width: cross, Height: used})
	}
	return f.size
}

// Draw implements ggui.Widget. The children become a container in order.
func (f *Flex) Draw(ctx *ggui.RenderContext, x, y float64) scene.Node {
	nodes := make([]scene.Node, len(f.Children))
	for i, child := range f.Children {
		var o offset
		if i < len(f.offsets) {
			o = f.offsets[i]
		}
		nodes[i] = child.Draw(ctx, x+o.x, y+o.y)
	}
	return scene.NewContainer(nodes...)
}

// axes splits s into main and cross extents.
func (f *Flex) axes(s ggui.Size) (main, cross float64) {
	if f.Direction == Horizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

// childConstraints bounds a child on the main axis; stretched children are
// forced to the full cross extent.
func (f *Flex) childConstraints(mainMin, mainMax, crossMax float64) ggui.Constraints {
	crossMin := 0.0
	if f.Align == AlignStretch && !math.IsInf(crossMax, 1) {
		crossMin = crossMax
	}
	if f.Direction == Horizontal {
		return ggui.Constraints{
			Min: ggui.Size{Width: mainMin, Height: crossMin},
			Max: ggui.Size{Width: mainMax, Height: crossMax},
		}
	}
	return ggui.Constraints{
		Min: ggui.Size{Width: crossMin, Height: mainMin},
		Max: ggui.Size{Width: crossMax, Height: mainMax},
	}
}

// Grower marks a Flex child that takes a share of the free space.
type Grower struct {
	ggui.Widget
	Factor float64
}

// Grow wraps w so that it fills free space in a Flex with the given factor.
func Grow(w ggui.Widget, factor float64) *Grower {
	return &Grower{Widget: w, Factor: factor}
}

func (g *Grower) factor() float64 { return max(g.Factor, 0) }
