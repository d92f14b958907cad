// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package region

import "image"

// MaxRects is the number of separate entries a List keeps before it
// collapses into a single bounding region.
const MaxRects = 16

// List accumulates damage for one frame.
//
// Pushed regions are coalesced conservatively: a region covered by an
// existing entry is dropped, a region whose origin falls inside an entry
// grows that entry, anything else is appended. Once more than MaxRects
// entries exist the list collapses to their bounding box.
//
// The zero value is an empty list ready to use.
type List struct {
	rects     []Region
	collapsed bool
}

// Push adds r to the list. Empty regions are ignored.
func (l *List) Push(r Region) {
	if r.IsEmpty() {
		return
	}
	if l.collapsed {
		l.rects[0] = l.rects[0].Union(r)
		return
	}

	for i := range l.rects {
		if l.rects[i].Equal(r) {
			return
		}
	}
	for i := range l.rects {
		if l.rects[i].Contains(r.X, r.Y) {
			l.rects[i].Merge(r)
			return
		}
	}

	l.rects = append(l.rects, r)
	if len(l.rects) > MaxRects {
		l.collapse()
	}
}

// PushAll marks the whole of r as damaged, discarding finer entries.
func (l *List) PushAll(r Region) {
	l.rects = append(l.rects[:0], r)
	l.collapsed = true
}

func (l *List) collapse() {
	bounds := l.rects[0]
	for _, r := range l.rects[1:] {
		bounds = bounds.Union(r)
	}
	l.rects = append(l.rects[:0], bounds)
	l.collapsed = true
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.rects) }

// IsEmpty reports whether nothing has been pushed since the last Reset.
func (l *List) IsEmpty() bool { return len(l.rects) == 0 }

// Collapsed reports whether the list degraded to a single bounding region.
func (l *List) Collapsed() bool { return l.collapsed }

// Regions returns the accumulated entries. The slice is owned by the list
// and is only valid until the next Push or Reset.
func (l *List) Regions() []Region { return l.rects }

// Bounds returns the bounding box of every entry.
func (l *List) Bounds() Region {
	var b Region
	for _, r := range l.rects {
		b = b.Union(r)
	}
	return b
}

// Rects converts the entries to integer rectangles clipped to clip,
// dropping those that fall outside it.
func (l *List) Rects(clip image.Rectangle) []image.Rectangle {
	out := make([]image.Rectangle, 0, len(l.rects))
	for _, r := range l.rects {
		ir := r.Rect().Intersect(clip)
		if ir.Empty() {
			continue
		}
		out = append(out, ir)
	}
	return out
}

// Reset empties the list, keeping its storage.
func (l *List) Reset() {
	l.rects = l.rects[:0]
	l.collapsed = false
}
