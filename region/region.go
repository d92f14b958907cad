// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package region implements the rectangle algebra used for widget bounds and
// dirty-area tracking.
//
// Coordinates are buffer-local, unscaled layout units. Equality between two
// regions is spatial containment rather than geometric equality: a larger
// region is "equal" to every region it fully covers. This lets a damage list
// absorb a smaller rectangle into an already-pushed larger one with a single
// comparison, at the price of a little over-damage.
package region

import (
	"fmt"
	"image"
	"math"
)

// Region is an axis-aligned rectangle. Width and Height are never negative
// for regions built with New.
type Region struct {
	X, Y          float64
	Width, Height float64
}

// Ordering is the result of Compare.
type Ordering int8

const (
	// Less means the receiver lies entirely before the other region.
	Less Ordering = -1
	// Equal means the two regions overlap.
	Equal Ordering = 0
	// Greater means the receiver lies entirely after the other region.
	Greater Ordering = 1
)

// String returns the ordering name.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("Ordering(%d)", int8(o))
	}
}

// New returns a region at (x, y) of the given size.
// Negative sizes are clamped to zero.
func New(x, y, width, height float64) Region {
	return Region{
		X:      x,
		Y:      y,
		Width:  math.Max(width, 0),
		Height: math.Max(height, 0),
	}
}

// FromRect converts an integer rectangle to a Region.
func FromRect(r image.Rectangle) Region {
	r = r.Canon()
	return New(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}

// Right returns the x coordinate of the right edge.
func (r Region) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Region) Bottom() float64 { return r.Y + r.Height }

// IsEmpty reports whether the region covers no area.
func (r Region) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Pad grows the region by amount on every side.
// A negative amount shrinks it, never below zero size.
func (r Region) Pad(amount float64) Region {
	return New(r.X-amount, r.Y-amount, r.Width+2*amount, r.Height+2*amount)
}

// Translate returns the region moved by (dx, dy).
func (r Region) Translate(dx, dy float64) Region {
	r.X += dx
	r.Y += dy
	return r
}

// CropRegion reduces r to the part it shares with other.
// Disjoint regions crop to a zero-sized region at the nearest corner.
func (r Region) CropRegion(other Region) Region {
	x := math.Max(r.X, other.X)
	y := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	return New(x, y, right-x, bottom-y)
}

// Merge grows r to cover other, but only when r already contains other's
// origin. Regions that merely touch or lie apart are left untouched; callers
// keep them as separate damage entries.
func (r *Region) Merge(other Region) {
	if !r.Contains(other.X, other.Y) {
		return
	}
	r.Width = math.Max(r.Right(), other.Right()) - r.X
	r.Height = math.Max(r.Bottom(), other.Bottom()) - r.Y
}

// Union returns the smallest region covering both r and other.
// Empty regions do not contribute.
func (r Region) Union(other Region) Region {
	switch {
	case r.IsEmpty():
		return other
	case other.IsEmpty():
		return r
	}
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	return New(x, y, math.Max(r.Right(), other.Right())-x, math.Max(r.Bottom(), other.Bottom())-y)
}

// Contains reports whether the point lies inside the half-open rectangle
// [X, X+Width) × [Y, Y+Height).
func (r Region) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Equal reports whether other fits entirely inside r.
//
// The relation is reflexive but not symmetric: a.Equal(b) && b.Equal(a)
// only holds for geometrically identical regions.
func (r Region) Equal(other Region) bool {
	return other.X >= r.X &&
		other.Y >= r.Y &&
		other.Right() <= r.Right() &&
		other.Bottom() <= r.Bottom()
}

// Overlaps reports whether the two regions share any area.
func (r Region) Overlaps(other Region) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Compare orders regions by disjointness. Overlapping regions compare Equal;
// r is Less when it ends before other starts on either axis.
func (r Region) Compare(other Region) Ordering {
	if r.Overlaps(other) {
		return Equal
	}
	if r.Right() <= other.X || r.Bottom() <= other.Y {
		return Less
	}
	return Greater
}

// Rect converts r to an integer rectangle, rounding outward so every
// partially covered pixel is included.
func (r Region) Rect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())),
		int(math.Ceil(r.Bottom())),
	)
}

// Round snaps all four edges to whole units. Regions computed along
// different code paths should be rounded before they are compared.
func (r Region) Round() Region {
	x, y := math.Round(r.X), math.Round(r.Y)
	return New(x, y, math.Round(r.Right())-x, math.Round(r.Bottom())-y)
}

// String returns a compact representation for logs and test failures.
func (r Region) String() string {
	return fmt.Sprintf("Region(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
