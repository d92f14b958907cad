package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Clear restores r to bg. A transparent background clears to zero alpha.
func Clear(dst draw.Image, r region.Region, bg scene.Background) {
	rect := r.Rect().Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}
	var c color.Color = color.Transparent
	if !bg.IsTransparent() {
		c = bg.RGBA()
	}
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Draw paints in onto dst. Zero instructions and primitives Draw does not
// recognize (and that are not Painters) are ignored.
func Draw(dst draw.Image, in scene.Instruction) {
	if in.IsZero() || in.Region.IsEmpty() {
		return
	}
	switch p := in.Primitive.(type) {
	case Rect:
		fillRect(dst, in.Region, p)
	case Border:
		strokeBorder(dst, in.Region, p)
	case GlyphRun:
		drawGlyphs(dst, in.Region, p)
	case Image:
		drawImage(dst, in.Region, p)
	case Painter:
		if r := in.Region.Rect().Intersect(dst.Bounds()); !r.Empty() {
			p.Paint(dst, r)
		}
	}
}

// Canvas adapts a pixel buffer to scene.Canvas: damage clears, draws paint.
type Canvas struct {
	Dst draw.Image
}

var _ scene.Canvas = Canvas{}

// Damage implements scene.Canvas.
func (c Canvas) Damage(r region.Region, bg scene.Background) { Clear(c.Dst, r, bg) }

// Draw implements scene.Canvas.
func (c Canvas) Draw(in scene.Instruction) { Draw(c.Dst, in) }

func fillRect(dst draw.Image, r region.Region, p Rect) {
	if p.Color.IsTransparent() {
		return
	}
	if p.Radius <= 0 {
		rect := r.Rect().Intersect(dst.Bounds())
		draw.Draw(dst, rect, image.NewUniform(p.Color), image.Point{}, compositeOp(p.Color))
		return
	}
	fillPath(dst, r, p.Color, func(z *vector.Rasterizer, ox, oy float64) {
		roundedRect(z, r.X-ox, r.Y-oy, r.Width, r.Height, p.Radius, false)
	})
}

func strokeBorder(dst draw.Image, r region.Region, p Border) {
	if p.Color.IsTransparent() || p.Width <= 0 {
		return
	}
	w := math.Min(p.Width, math.Min(r.Width, r.Height)/2)
	inner := r.Pad(-w)
	fillPath(dst, r, p.Color, func(z *vector.Rasterizer, ox, oy float64) {
		roundedRect(z, r.X-ox, r.Y-oy, r.Width, r.Height, p.Radius, false)
		if !inner.IsEmpty() {
			roundedRect(z, inner.X-ox, inner.Y-oy, inner.Width, inner.Height, math.Max(p.Radius-w, 0), true)
		}
	})
}

// fillPath scan-converts the path built by trace over the pixel bounds of
// r and composites c through the resulting coverage.
func fillPath(dst draw.Image, r region.Region, c paint.RGBA, trace func(z *vector.Rasterizer, ox, oy float64)) {
	bounds := r.Rect()
	clip := bounds.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	trace(z, float64(bounds.Min.X), float64(bounds.Min.Y))

	cov := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, clip, image.NewUniform(c), image.Point{}, cov, clip.Min.Sub(bounds.Min), draw.Over)
}

// roundedRect appends a closed rounded rectangle to z. Reverse winds it
// counter-clockwise so it cuts a hole in an enclosing clockwise path.
func roundedRect(z *vector.Rasterizer, x, y, w, h, radius float64, reverse bool) {
	rad := math.Max(0, math.Min(radius, math.Min(w, h)/2))
	k := rad * kappa
	x1, y1 := x+w, y+h
	f := func(v float64) float32 { return float32(v) }

	if !reverse {
		z.MoveTo(f(x+rad), f(y))
		z.LineTo(f(x1-rad), f(y))
		z.CubeTo(f(x1-rad+k), f(y), f(x1), f(y+rad-k), f(x1), f(y+rad))
		z.LineTo(f(x1), f(y1-rad))
		z.CubeTo(f(x1), f(y1-rad+k), f(x1-rad+k), f(y1), f(x1-rad), f(y1))
		z.LineTo(f(x+rad), f(y1))
		z.CubeTo(f(x+rad-k), f(y1), f(x), f(y1-rad+k), f(x), f(y1-rad))
		z.LineTo(f(x), f(y+rad))
		z.CubeTo(f(x), f(y+rad-k), f(x+rad-k), f(y), f(x+rad), f(y))
	} else {
		z.MoveTo(f(x+rad), f(y))
		z.CubeTo(f(x+rad-k), f(y), f(x), f(y+rad-k), f(x), f(y+rad))
		z.LineTo(f(x), f(y1-rad))
		z.CubeTo(f(x), f(y1-rad+k), f(x+rad-k), f(y1), f(x+rad), f(y1))
		z.LineTo(f(x1-rad), f(y1))
		z.CubeTo(f(x1-rad+k), f(y1), f(x1), f(y1-rad+k), f(x1), f(y1-rad))
		z.LineTo(f(x1), f(y+rad))
		z.CubeTo(f(x1), f(y+rad-k), f(x1-rad+k), f(y), f(x1-rad), f(y))
		z.LineTo(f(x+rad), f(y))
	}
	z.ClosePath()
}

func drawGlyphs(dst draw.Image, r region.Region, g GlyphRun) {
	if g.Face == nil || g.Color.IsTransparent() {
		return
	}
	clip := r.Rect().Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	src := image.NewUniform(g.Color)
	fonts := g.Face.fonts
	for _, gl := range g.Glyphs {
		m := fonts.mask(g.Face, gl.ID)
		if m == nil {
			continue
		}
		origin := image.Pt(int(math.Round(r.X+gl.X)), int(math.Round(r.Y+gl.Y)))
		at := m.alpha.Bounds().Add(origin.Add(m.offset))
		target := at.Intersect(clip)
		if target.Empty() {
			continue
		}
		draw.DrawMask(dst, target, src, image.Point{}, m.alpha, target.Min.Sub(at.Min), draw.Over)
	}
}

func drawImage(dst draw.Image, r region.Region, m Image) {
	if m.Src == nil {
		return
	}
	dr := r.Rect()
	sr := m.Src.Bounds()
	if dr.Intersect(dst.Bounds()).Empty() || sr.Empty() {
		return
	}
	var scaler draw.Scaler = draw.NearestNeighbor
	if m.Smooth {
		scaler = draw.CatmullRom
	}
	scaler.Scale(dst, dr, m.Src, sr, draw.Over, nil)
}

func compositeOp(c paint.RGBA) draw.Op {
	if c.IsOpaque() {
		return draw.Src
	}
	return draw.Over
}
