package raster

import (
	"image"
	"reflect"
	"slices"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/scene"
)

// Rect is a filled, optionally rounded rectangle covering its region.
type Rect struct {
	Color  paint.RGBA
	Radius float64
}

// Equal implements scene.Primitive.
func (r Rect) Equal(other scene.Primitive) bool {
	o, ok := other.(Rect)
	return ok && o == r
}

// Background implements scene.Backgrounder. Only square rectangles cover
// their whole region, so rounded ones leave the backdrop unchanged.
func (r Rect) Background() scene.Background {
	if r.Radius > 0 {
		return scene.Transparent
	}
	return scene.Color(r.Color)
}

// Border strokes the inside edge of its region.
type Border struct {
	Color  paint.RGBA
	Width  float64
	Radius float64
}

// Equal implements scene.Primitive.
func (b Border) Equal(other scene.Primitive) bool {
	o, ok := other.(Border)
	return ok && o == b
}

// Glyph is one positioned glyph of a GlyphRun. X and Y locate the glyph
// origin on the baseline relative to the instruction's top-left corner.
type Glyph struct {
	ID   uint16
	X, Y float64
}

// GlyphRun is shaped text drawn with a single face and color.
type GlyphRun struct {
	Face   *Face
	Glyphs []Glyph
	Color  paint.RGBA
}

// Equal implements scene.Primitive. Faces compare by identity; Fonts hands
// out one Face per font and size.
func (g GlyphRun) Equal(other scene.Primitive) bool {
	o, ok := other.(GlyphRun)
	return ok && o.Face == g.Face && o.Color == g.Color && slices.Equal(o.Glyphs, g.Glyphs)
}

// Image scales Src into its region.
type Image struct {
	Src image.Image

	// Smooth selects Catmull-Rom filtering instead of nearest neighbor.
	Smooth bool
}

// Equal implements scene.Primitive. Images compare by identity: a widget
// that mutates pixels in place must hand out a new image to get repainted.
// Src should be a pointer such as *image.RGBA; a source that cannot be
// compared, like a struct holding a slice, never equals anything and is
// redrawn every frame.
func (m Image) Equal(other scene.Primitive) bool {
	o, ok := other.(Image)
	return ok && o.Smooth == m.Smooth && sameImage(o.Src, m.Src)
}

func sameImage(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// Painter lets applications bring their own primitives. Draw calls Paint
// for any primitive it does not know.
type Painter interface {
	scene.Primitive
	Paint(dst draw.Image, r image.Rectangle)
}
