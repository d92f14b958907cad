package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/ggui/cache"
)

// ErrInvalidFont is returned when font data cannot be parsed.
var ErrInvalidFont = errors.New("raster: invalid font data")

// DefaultGlyphCacheSize is the number of glyph masks a Fonts keeps.
const DefaultGlyphCacheSize = 2048

// Font is a parsed TrueType/OpenType font. The same data is held twice:
// once for shaping and once for outline extraction.
type Font struct {
	name    string
	outline *sfnt.Font
	shaping *font.Font
}

// ParseFont parses TrueType or OpenType font data.
func ParseFont(data []byte) (*Font, error) {
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	name, _ := outline.Name(nil, sfnt.NameIDFull)
	return &Font{name: name, outline: outline, shaping: face.Font}, nil
}

// Name returns the font's full name, if it has one.
func (f *Font) Name() string { return f.name }

// Metrics are vertical font measurements in pixels.
type Metrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Run is the result of shaping a string.
type Run struct {
	// Glyphs are positioned on a baseline at Y = 0.
	Glyphs  []Glyph
	Advance float64
}

type faceKey struct {
	font *Font
	size float64
}

type maskKey struct {
	font *Font
	id   uint16
	ppem fixed.Int26_6
}

// mask is a rasterized glyph. Offset locates the mask's top-left corner
// relative to the glyph origin.
type mask struct {
	alpha  *image.Alpha
	offset image.Point
}

// Fonts owns the faces and the glyph mask cache of one window. It is passed
// to widgets through the render context and is not safe for concurrent use.
type Fonts struct {
	def    *Font
	faces  map[faceKey]*Face
	masks  *cache.LRU[maskKey, *mask]
	buf    sfnt.Buffer
	shaper shaping.HarfbuzzShaper
	raster vector.Rasterizer
}

// NewFonts creates a font set whose default font is Go Regular.
func NewFonts() *Fonts {
	def, err := ParseFont(goregular.TTF)
	if err != nil {
		panic("raster: embedded font: " + err.Error())
	}
	return &Fonts{
		def:   def,
		faces: make(map[faceKey]*Face),
		masks: cache.New[maskKey, *mask](DefaultGlyphCacheSize),
	}
}

// Default returns the default font.
func (fs *Fonts) Default() *Font { return fs.def }

// Face returns the face for f at size pixels per em. Repeated calls with
// the same arguments return the same *Face. A nil f selects the default.
func (fs *Fonts) Face(f *Font, size float64) *Face {
	if f == nil {
		f = fs.def
	}
	key := faceKey{font: f, size: size}
	if face, ok := fs.faces[key]; ok {
		return face
	}
	face := &Face{
		fonts: fs,
		font:  f,
		size:  size,
		ppem:  fixed.Int26_6(math.Round(size * 64)),
		shape: font.NewFace(f.shaping),
	}
	face.metrics = fs.metrics(face)
	fs.faces[key] = face
	return face
}

// CacheStats reports glyph mask cache counters.
func (fs *Fonts) CacheStats() cache.Stats { return fs.masks.Stats() }

func (fs *Fonts) metrics(face *Face) Metrics {
	m, err := face.font.outline.Metrics(&fs.buf, face.ppem, xfont.HintingNone)
	if err != nil {
		return Metrics{Ascent: face.size, LineHeight: face.size * 1.2}
	}
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}
}

// mask returns the cached mask for a glyph, rasterizing it on a miss. A nil
// result means the glyph has no outline (a space, for instance).
func (fs *Fonts) mask(face *Face, id uint16) *mask {
	key := maskKey{font: face.font, id: id, ppem: face.ppem}
	return fs.masks.GetOrCreate(key, func() *mask {
		return fs.rasterize(face, id)
	})
}

func (fs *Fonts) rasterize(face *Face, id uint16) *mask {
	segs, err := face.font.outline.LoadGlyph(&fs.buf, sfnt.GlyphIndex(id), face.ppem, nil)
	if err != nil || len(segs) == 0 {
		return nil
	}

	bounds := segmentBounds(segs)
	if bounds.Empty() {
		return nil
	}
	w, h := bounds.Dx(), bounds.Dy()
	dx, dy := float32(-bounds.Min.X), float32(-bounds.Min.Y)

	z := &fs.raster
	z.Reset(w, h)
	for _, s := range segs {
		a := s.Args
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			z.MoveTo(px(a[0].X)+dx, px(a[0].Y)+dy)
		case sfnt.SegmentOpLineTo:
			z.LineTo(px(a[0].X)+dx, px(a[0].Y)+dy)
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(px(a[0].X)+dx, px(a[0].Y)+dy, px(a[1].X)+dx, px(a[1].Y)+dy)
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(px(a[0].X)+dx, px(a[0].Y)+dy, px(a[1].X)+dx, px(a[1].Y)+dy, px(a[2].X)+dx, px(a[2].Y)+dy)
		}
	}
	z.ClosePath()

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})
	return &mask{alpha: alpha, offset: bounds.Min}
}

// segmentBounds returns the pixel rectangle covering every control point.
func segmentBounds(segs sfnt.Segments) image.Rectangle {
	minX, minY := fixed.Int26_6(math.MaxInt32), fixed.Int26_6(math.MaxInt32)
	maxX, maxY := fixed.Int26_6(math.MinInt32), fixed.Int26_6(math.MinInt32)
	for _, s := range segs {
		n := 1
		switch s.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for _, p := range s.Args[:n] {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	return image.Rect(minX.Floor(), minY.Floor(), maxX.Ceil(), maxY.Ceil())
}

// Face is a font at a given size.
type Face struct {
	fonts   *Fonts
	font    *Font
	size    float64
	ppem    fixed.Int26_6
	shape   *font.Face
	metrics Metrics
}

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Font returns the face's font.
func (f *Face) Font() *Font { return f.font }

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics { return f.metrics }

// Shape converts text into glyphs positioned along a baseline starting at
// the origin. The base direction is taken from the first strong character.
func (f *Face) Shape(text string) Run {
	if text == "" {
		return Run{}
	}
	runes := []rune(text)
	out := f.fonts.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(text),
		Face:      f.shape,
		Size:      f.ppem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	run := Run{Glyphs: make([]Glyph, len(out.Glyphs))}
	var x float64
	for i, g := range out.Glyphs {
		run.Glyphs[i] = Glyph{
			ID: uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			X:  x + fixedToFloat(g.XOffset),
			Y:  -fixedToFloat(g.YOffset),
		}
		x += fixedToFloat(g.XAdvance)
	}
	run.Advance = x
	return run
}

// Measure returns the advance width of text.
func (f *Face) Measure(text string) float64 { return f.Shape(text).Advance }

func baseDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return di.DirectionLTR
	}
	for i := 0; i < o.NumRuns(); i++ {
		switch r := o.Run(i); r.Direction() {
		case bidi.RightToLeft:
			return di.DirectionRTL
		case bidi.LeftToRight:
			return di.DirectionLTR
		}
	}
	return di.DirectionLTR
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func px(v fixed.Int26_6) float32 { return float32(v) / 64 }
