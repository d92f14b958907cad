package scene

// Tree retains the scene graph of the last presented frame.
//
// A Tree is owned by a single window and must only be used from the
// goroutine that drives that window.
type Tree struct {
	root Node
}

// Root returns the retained tree, or nil before the first frame and after
// Reset.
func (t *Tree) Root() Node { return t.root }

// IsEmpty reports whether no tree is retained.
func (t *Tree) IsEmpty() bool { return t.root == nil }

// Update diffs next against the retained tree, reporting the repaint to c,
// and retains next in its place. With nothing retained, next is rendered
// wholesale.
func (t *Tree) Update(next Node, bg Background, c Canvas) {
	if t.root == nil {
		Render(next, c)
	} else {
		Diff(t.root, next, bg, c)
	}
	t.root = next
}

// Replace retains next without diffing. Callers use it after repainting the
// whole buffer themselves.
func (t *Tree) Replace(next Node) { t.root = next }

// Reset drops the retained tree. The next Update renders from scratch.
func (t *Tree) Reset() { t.root = nil }
