package widget

import (
	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/raster"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

// DefaultTextSize is the label size used when Size is zero.
const DefaultTextSize = 14

// Label is a single line of text. A message on Topic carrying a string
// replaces the text.
type Label struct {
	Text string
	// Color defaults to black.
	Color paint.RGBA
	// Size is the font size in pixels per em.
	Size float64
	// Font defaults to the window's default font.
	Font  *raster.Font
	Topic string

	face *raster.Face
	run  raster.Run
	// shaped is the text run was shaped from.
	shaped string
	size   ggui.Size
}

var _ ggui.Widget = (*Label)(nil)

// Sync implements ggui.Widget.
func (l *Label) Sync(_ *ggui.SyncContext, ev event.Event) ggui.Damage {
	s, ok := topicValue[string](ev, l.Topic)
	if !ok || s == l.Text {
		return ggui.DamageNone
	}
	l.Text = s
	return ggui.DamagePartial
}

// Layout implements ggui.Widget. Text is shaped only when it or the face
// changed since the previous layout.
func (l *Label) Layout(ctx *ggui.RenderContext, c ggui.Constraints) ggui.Size {
	size := l.Size
	if size <= 0 {
		size = DefaultTextSize
	}
	face := ctx.Fonts.Face(l.Font, size)
	if face != l.face || l.shaped != l.Text {
		l.face = face
		l.run = face.Shape(l.Text)
		l.shaped = l.Text
	}
	l.size = c.Constrain(ggui.Size{Width: l.run.Advance, Height: face.Metrics().LineHeight})
	return l.size
}

// Draw implements ggui.Widget. The baseline sits one ascent below y.
func (l *Label) Draw(_ *ggui.RenderContext, x, y float64) scene.Node {
	if l.face == nil || len(l.run.Glyphs) == 0 {
		return scene.None{}
	}
	ascent := l.face.Metrics().Ascent
	glyphs := make([]raster.Glyph, len(l.run.Glyphs))
	for i, g := range l.run.Glyphs {
		glyphs[i] = raster.Glyph{ID: g.ID, X: g.X, Y: g.Y + ascent}
	}
	color := l.Color
	if color == (paint.RGBA{}) {
		color = paint.Black
	}
	return scene.NewLeaf(region.New(x, y, l.size.Width, l.size.Height), raster.GlyphRun{
		Face:   l.face,
		Glyphs: glyphs,
		Color:  color,
	})
}
