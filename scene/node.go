// Package scene describes what should currently be on screen as a small
// tree of nodes, and computes the damage between two such trees.
//
// A widget tree produces a fresh Node tree every frame. Nodes carry no
// identity: a node corresponds to its counterpart in the previous frame
// purely by position. Diff walks both trees in step, emitting damage and
// leaf redraws to a Canvas, and Tree keeps the one retained tree between
// frames.
//
// The node kinds form a closed set:
//
//	Leaf       a single drawable Instruction
//	Extension  a child decorated with a background and a border
//	Container  an ordered list of children sharing a bounding region
//	None       no visual output this frame
package scene

import (
	"github.com/gogpu/ggui/region"
)

// Node is one frame's description of a widget subtree.
//
// The interface is sealed: Leaf, Extension, Container and None are the only
// implementations.
type Node interface {
	// Bounds returns the area the node may paint.
	Bounds() region.Region

	node()
}

// Leaf is a widget's own drawable output.
type Leaf struct {
	Instruction
}

// Extension decorates Child with a background drawn beneath it and a border
// drawn above it. It models padding, border and background composition
// without flattening them into sibling leaves.
type Extension struct {
	Background Instruction
	Border     Instruction
	Child      Node
}

// Container groups an ordered list of children. The number of children is
// fixed for a given frame; a change in count between frames makes the diff
// repaint the whole container.
type Container struct {
	Region   region.Region
	Children []Node
}

// None is produced by a widget that draws nothing this frame.
type None struct{}

func (Leaf) node()      {}
func (Extension) node() {}
func (Container) node() {}
func (None) node()      {}

// Bounds returns the instruction's region.
func (l Leaf) Bounds() region.Region { return l.Region }

// Bounds returns the union of the decoration regions and the child bounds,
// which is the area a repaint of the extension may touch. A child may
// overflow its decorations, or an extension may carry none at all.
func (e Extension) Bounds() region.Region {
	r := e.Background.Region.Union(e.Border.Region)
	if e.Child != nil {
		r = r.Union(e.Child.Bounds())
	}
	return r
}

// Bounds returns the container's region.
func (c Container) Bounds() region.Region { return c.Region }

// Bounds returns an empty region.
func (None) Bounds() region.Region { return region.Region{} }

// NewLeaf wraps a primitive drawn at r.
func NewLeaf(r region.Region, p Primitive) Leaf {
	return Leaf{Instruction{Region: r, Primitive: p}}
}

// NewContainer builds a container whose region covers every child.
func NewContainer(children ...Node) Container {
	var bounds region.Region
	for _, c := range children {
		bounds = bounds.Union(c.Bounds())
	}
	return Container{Region: bounds, Children: children}
}

// Equal reports whether two trees are value-equal: same shape, same
// instructions in the same positions.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case Leaf:
		b, ok := b.(Leaf)
		return ok && a.Instruction.Equal(b.Instruction)
	case Extension:
		b, ok := b.(Extension)
		return ok &&
			a.Background.Equal(b.Background) &&
			a.Border.Equal(b.Border) &&
			Equal(a.Child, b.Child)
	case Container:
		b, ok := b.(Container)
		if !ok || a.Region != b.Region || len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	case None:
		_, ok := b.(None)
		return ok
	case nil:
		return b == nil
	}
	return false
}

// Walk calls fn for every instruction in n in paint order: an extension's
// background, then its child, then its border.
func Walk(n Node, fn func(Instruction)) {
	switch n := n.(type) {
	case Leaf:
		fn(n.Instruction)
	case Extension:
		fn(n.Background)
		Walk(n.Child, fn)
		fn(n.Border)
	case Container:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	}
}
