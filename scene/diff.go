package scene

import (
	"github.com/gogpu/ggui/region"
)

// Canvas receives the side effects of a diff.
//
// Damage asks for r to be restored to bg before anything is drawn over it;
// it is how pixels of removed or changed content are cleared. Draw paints a
// single instruction. Implementations must apply the calls in order.
type Canvas interface {
	Damage(r region.Region, bg Background)
	Draw(in Instruction)
}

// Diff compares prev against next and reports to c exactly what must be
// repainted for the pixels of prev to become the pixels of next.
//
// Matching is positional. Unchanged leaves cost nothing. A changed leaf
// restores its old region against bg and draws the new leaf. Containers of
// equal length are compared child by child with the same bg; a length change
// repaints the whole new container. Extensions whose background and border
// are unchanged pass an advanced backdrop to their child; any other
// decoration change, or a change of node kind, repaints the new subtree
// wholesale after restoring the old one's bounds.
func Diff(prev, next Node, bg Background, c Canvas) {
	switch o := prev.(type) {
	case Leaf:
		if n, ok := next.(Leaf); ok {
			if !o.Instruction.Equal(n.Instruction) {
				damage(o, bg, c)
				if !n.IsZero() {
					c.Draw(n.Instruction)
				}
			}
			return
		}

	case Container:
		if n, ok := next.(Container); ok {
			if len(o.Children) != len(n.Children) {
				c.Damage(o.Region, bg)
				if !o.Region.Equal(n.Region) {
					c.Damage(n.Region, bg)
				}
				Render(n, c)
				return
			}
			for i := range o.Children {
				Diff(o.Children[i], n.Children[i], bg, c)
			}
			return
		}

	case Extension:
		if n, ok := next.(Extension); ok {
			if o.Background.Equal(n.Background) && o.Border.Equal(n.Border) {
				Diff(o.Child, n.Child, bg.Merge(n.Background.Background()), c)
				return
			}
		}

	case None, nil:
		Render(next, c)
		return
	}

	damage(prev, bg, c)
	Render(next, c)
}

func damage(n Node, bg Background, c Canvas) {
	if r := n.Bounds(); !r.IsEmpty() {
		c.Damage(r, bg)
	}
}

// Render paints n wholesale: every instruction it contains, in paint order.
func Render(n Node, c Canvas) {
	Walk(n, func(in Instruction) {
		if !in.IsZero() {
			c.Draw(in)
		}
	})
}
