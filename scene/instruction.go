package scene

import (
	"github.com/gogpu/ggui/region"
)

// Primitive is an opaque drawable value: a filled rectangle, a glyph run, an
// image. The scene graph never looks inside a primitive; it only needs to
// know whether two of them would paint the same pixels.
type Primitive interface {
	// Equal reports whether p and other draw identical pixels at the same
	// origin. A false negative costs a redundant repaint; a false positive
	// leaves stale pixels on screen.
	Equal(other Primitive) bool
}

// Backgrounder is implemented by primitives that can serve as the backdrop
// for content drawn above them.
type Backgrounder interface {
	Background() Background
}

// Instruction pairs a primitive with the region it is drawn at.
//
// The zero Instruction draws nothing; an Extension uses it for a missing
// background or border.
type Instruction struct {
	Region    region.Region
	Primitive Primitive
}

// IsZero reports whether the instruction draws nothing.
func (in Instruction) IsZero() bool {
	return in.Primitive == nil
}

// Equal compares regions bit for bit and primitives by value.
// Regions that should match must be produced by the same arithmetic, or be
// rounded, before they reach the scene graph.
func (in Instruction) Equal(other Instruction) bool {
	if in.Region != other.Region {
		return false
	}
	switch {
	case in.Primitive == nil || other.Primitive == nil:
		return in.Primitive == nil && other.Primitive == nil
	default:
		return in.Primitive.Equal(other.Primitive)
	}
}

// Background returns the backdrop this instruction paints, or Transparent
// when its primitive is not a Backgrounder.
func (in Instruction) Background() Background {
	if b, ok := in.Primitive.(Backgrounder); ok {
		return b.Background()
	}
	return Transparent
}
