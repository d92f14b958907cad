package scene

import (
	"github.com/gogpu/ggui/paint"
)

// Background is the color visible behind a node at a given depth of the
// tree. It is only consulted while diffing, so that a region exposed by a
// changed leaf can be pre-filled with whatever its ancestors painted there.
//
// The zero value is Transparent.
type Background struct {
	color paint.RGBA
	set   bool
}

// Transparent is the backdrop of a node with no painted ancestor.
var Transparent = Background{}

// Color returns a background of color c. A fully transparent color yields
// Transparent.
func Color(c paint.RGBA) Background {
	if c.IsTransparent() {
		return Transparent
	}
	return Background{color: c, set: true}
}

// IsTransparent reports whether nothing has been painted.
func (b Background) IsTransparent() bool { return !b.set }

// RGBA returns the background color; Transparent reports the zero color.
func (b Background) RGBA() paint.RGBA { return b.color }

// Merge composites child on top of b. An opaque child hides b entirely; a
// translucent one is blended over it; a transparent one leaves b visible.
func (b Background) Merge(child Background) Background {
	switch {
	case child.IsTransparent():
		return b
	case b.IsTransparent() || child.color.IsOpaque():
		return child
	}
	return Color(child.color.Over(b.color))
}

// String implements fmt.Stringer.
func (b Background) String() string {
	if b.IsTransparent() {
		return "Transparent"
	}
	return "Color(" + b.color.Hex() + ")"
}
