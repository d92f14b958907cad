package widget_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/event"
	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/raster"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
	"github.com/gogpu/ggui/surface"
	"github.com/gogpu/ggui/widget"
)

var rctx = ggui.NewRenderContext()

func loose(w, h float64) ggui.Constraints {
	return ggui.Loose(ggui.Size{Width: w, Height: h})
}

func post(topic string, v any) event.Event {
	return event.Sync{Message: ggui.Message{Topic: topic, Value: v}}
}

func syncOnce(w ggui.Widget, ev event.Event) ggui.Damage {
	d, _ := ggui.Sync(w, ggui.NewSyncContext(nil, nil), ev)
	return d
}

func leaf(x, y, w, h float64, c paint.RGBA) scene.Leaf {
	return scene.NewLeaf(region.New(x, y, w, h), raster.Rect{Color: c})
}

func TestRectangle(t *testing.T) {
	r := &widget.Rectangle{Color: paint.Red, Width: 10, Height: 5, Topic: "color"}

	assert.Equal(t, ggui.Size{Width: 10, Height: 5}, r.Layout(rctx, loose(100, 100)))
	assert.True(t, scene.Equal(leaf(3, 4, 10, 5, paint.Red), r.Draw(rctx, 3, 4)))

	assert.Equal(t, ggui.Size{Width: 8, Height: 5}, r.Layout(rctx, loose(8, 100)), "clamped to the constraints")

	assert.Equal(t, ggui.DamageNone, syncOnce(r, post("color", paint.Red)), "same color")
	assert.Equal(t, ggui.DamageNone, syncOnce(r, post("other", paint.Blue)))
	assert.Equal(t, ggui.DamageNone, syncOnce(r, post("color", "blue")), "wrong value type")
	assert.Equal(t, ggui.DamagePartial, syncOnce(r, post("color", paint.Blue)))
	assert.Equal(t, paint.Blue, r.Color)

	r.Color = paint.Transparent
	assert.Equal(t, scene.None{}, r.Draw(rctx, 0, 0))
}

func TestLabel(t *testing.T) {
	l := &widget.Label{Text: "Hi", Size: 16, Topic: "status"}
	face := rctx.Fonts.Face(nil, 16)

	size := l.Layout(rctx, ggui.Unbounded())
	assert.Greater(t, size.Width, 0.0)
	assert.InDelta(t, face.Metrics().LineHeight, size.Height, 1e-9)

	n := l.Draw(rctx, 5, 6)
	lf, ok := n.(scene.Leaf)
	require.True(t, ok, "a label is a leaf, got %T", n)
	assert.Equal(t, region.New(5, 6, size.Width, size.Height), lf.Region)
	run, ok := lf.Primitive.(raster.GlyphRun)
	require.True(t, ok)
	assert.Same(t, face, run.Face)
	assert.Equal(t, paint.Black, run.Color)
	require.Len(t, run.Glyphs, 2)
	assert.InDelta(t, face.Metrics().Ascent, run.Glyphs[0].Y, 1e-9, "glyphs sit on the baseline")

	assert.True(t, scene.Equal(n, l.Draw(rctx, 5, 6)), "drawing is pure")

	assert.Equal(t, ggui.DamageNone, syncOnce(l, post("status", "Hi")))
	assert.Equal(t, ggui.DamagePartial, syncOnce(l, post("status", "Bye")))
	l.Layout(rctx, ggui.Unbounded())
	assert.False(t, scene.Equal(n, l.Draw(rctx, 5, 6)))
}

func TestLabelEmpty(t *testing.T) {
	l := &widget.Label{}
	size := l.Layout(rctx, ggui.Unbounded())
	assert.Zero(t, size.Width)
	assert.Equal(t, scene.None{}, l.Draw(rctx, 0, 0))
}

func TestBox(t *testing.T) {
	child := &widget.Rectangle{Color: paint.Red, Width: 10, Height: 10}
	b := &widget.Box{
		Child:       child,
		Padding:     2,
		Background:  paint.White,
		Border:      paint.Black,
		BorderWidth: 1,
		Topic:       "panel",
	}

	assert.Equal(t, ggui.Size{Width: 16, Height: 16}, b.Layout(rctx, loose(100, 100)))

	want := scene.Extension{
		Background: scene.Instruction{Region: region.New(0, 0, 16, 16), Primitive: raster.Rect{Color: paint.White}},
		Border:     scene.Instruction{Region: region.New(0, 0, 16, 16), Primitive: raster.Border{Color: paint.Black, Width: 1}},
		Child:      leaf(3, 3, 10, 10, paint.Red),
	}
	assert.True(t, scene.Equal(want, b.Draw(rctx, 0, 0)))

	assert.Equal(t, ggui.DamagePartial, syncOnce(b, post("panel", paint.Green)))
	assert.Equal(t, paint.Green, b.Background)
}

func TestPaddedIsUndecorated(t *testing.T) {
	b := widget.Padded(&widget.Rectangle{Color: paint.Red, Width: 10, Height: 10}, 4)

	assert.Equal(t, ggui.Size{Width: 18, Height: 18}, b.Layout(rctx, loose(100, 100)))
	assert.True(t, scene.Equal(leaf(4, 4, 10, 10, paint.Red), b.Draw(rctx, 0, 0)))
}

func TestBoxForwardsSync(t *testing.T) {
	inner := &widget.Rectangle{Color: paint.Red, Topic: "inner"}
	b := widget.Padded(inner, 1)
	assert.Equal(t, ggui.DamagePartial, syncOnce(b, post("inner", paint.Blue)))
	assert.Equal(t, paint.Blue, inner.Color)
}

func rects(sizes ...float64) []ggui.Widget {
	out := make([]ggui.Widget, 0, len(sizes)/2)
	for i := 0; i+1 < len(sizes); i += 2 {
		out = append(out, &widget.Rectangle{Color: paint.Red, Width: sizes[i], Height: sizes[i+1]})
	}
	return out
}

func TestFlexRow(t *testing.T) {
	f := widget.Row(rects(10, 5, 20, 8)...)
	f.Gap = 2

	assert.Equal(t, ggui.Size{Width: 32, Height: 8}, f.Layout(rctx, loose(100, 100)))

	want := scene.NewContainer(leaf(1, 1, 10, 5, paint.Red), leaf(13, 1, 20, 8, paint.Red))
	assert.True(t, scene.Equal(want, f.Draw(rctx, 1, 1)))
}

func TestFlexColumn(t *testing.T) {
	f := widget.Column(rects(10, 5, 20, 8)...)

	assert.Equal(t, ggui.Size{Width: 20, Height: 13}, f.Layout(rctx, loose(100, 100)))

	want := scene.NewContainer(leaf(0, 0, 10, 5, paint.Red), leaf(0, 5, 20, 8, paint.Red))
	assert.True(t, scene.Equal(want, f.Draw(rctx, 0, 0)))
}

func TestFlexAlign(t *testing.T) {
	tests := []struct {
		name  string
		align widget.Align
		want  scene.Node
	}{
		{"start", widget.AlignStart, scene.NewContainer(leaf(0, 0, 10, 4, paint.Red), leaf(0, 4, 20, 4, paint.Red))},
		{"center", widget.AlignCenter, scene.NewContainer(leaf(5, 0, 10, 4, paint.Red), leaf(0, 4, 20, 4, paint.Red))},
		{"end", widget.AlignEnd, scene.NewContainer(leaf(10, 0, 10, 4, paint.Red), leaf(0, 4, 20, 4, paint.Red))},
		{"stretch", widget.AlignStretch, scene.NewContainer(leaf(0, 0, 50, 4, paint.Red), leaf(0, 4, 50, 4, paint.Red))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := widget.Column(rects(10, 4, 20, 4)...)
			f.Align = tt.align
			f.Layout(rctx, loose(50, 50))
			got := f.Draw(rctx, 0, 0)
			assert.True(t, scene.Equal(tt.want, got), "got %#v", got)
		})
	}
}

func TestFlexGrow(t *testing.T) {
	fixed := rects(10, 5)[0]
	a := &widget.Rectangle{Color: paint.Red, Height: 5}
	b := &widget.Rectangle{Color: paint.Red, Height: 5}
	f := widget.Row(fixed, widget.Grow(a, 1), widget.Grow(b, 3))

	assert.Equal(t, ggui.Size{Width: 110, Height: 5}, f.Layout(rctx, loose(110, 20)))

	want := scene.NewContainer(leaf(0, 0, 10, 5, paint.Red), leaf(10, 0, 25, 5, paint.Red), leaf(35, 0, 75, 5, paint.Red))
	assert.True(t, scene.Equal(want, f.Draw(rctx, 0, 0)))
}

func TestFlexSyncFoldsWithMax(t *testing.T) {
	p := &widget.Progress{Topic: "p"}
	r := &widget.Rectangle{Topic: "p"}
	f := widget.Row(r, p)

	assert.Equal(t, ggui.DamageFrame, syncOnce(f, post("p", 0.5)))
	assert.Equal(t, ggui.DamageNone, syncOnce(f, event.Focus{Focused: true}))
}

func layoutButton(b *widget.Button) (cx, cy float64) {
	b.Layout(rctx, ggui.Unbounded())
	b.Draw(rctx, 10, 10)
	r := b.Bounds()
	return r.X + r.Width/2, r.Y + r.Height/2
}

func TestButtonClick(t *testing.T) {
	b := &widget.Button{Text: "OK", Topic: "ok", Value: 1}
	cx, cy := layoutButton(b)
	ctrl := ggui.NewMapController()
	ctx := ggui.NewSyncContext(ctrl, nil)

	d, passes := ggui.Sync(b, ctx, event.Press(cx, cy))
	assert.Equal(t, ggui.DamagePartial, d)
	assert.Zero(t, passes)
	assert.True(t, b.Pressed())

	d, passes = ggui.Sync(b, ctx, event.Release(cx, cy))
	assert.Equal(t, ggui.DamagePartial, d)
	assert.Equal(t, 1, passes, "the click message is re-delivered once")
	assert.False(t, b.Pressed())

	v, ok := ctrl.Get("ok")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestButtonReleaseOutsideCancels(t *testing.T) {
	b := &widget.Button{Text: "OK", Topic: "ok"}
	cx, cy := layoutButton(b)
	ctrl := ggui.NewMapController()
	ctx := ggui.NewSyncContext(ctrl, nil)

	ggui.Sync(b, ctx, event.Press(cx, cy))
	d, passes := ggui.Sync(b, ctx, event.Release(0, 0))

	assert.Equal(t, ggui.DamagePartial, d)
	assert.Zero(t, passes)
	assert.Empty(t, ctrl.Topics())
}

func TestButtonHover(t *testing.T) {
	b := &widget.Button{Text: "OK"}
	cx, cy := layoutButton(b)

	assert.Equal(t, ggui.DamagePartial, syncOnce(b, event.Move(cx, cy)))
	assert.True(t, b.Hovered())
	assert.Equal(t, ggui.DamageNone, syncOnce(b, event.Move(cx+1, cy)))
	assert.Equal(t, ggui.DamagePartial, syncOnce(b, event.Move(0, 0)))
	assert.False(t, b.Hovered())
}

func TestButtonAppearance(t *testing.T) {
	b := &widget.Button{Text: "OK"}
	cx, cy := layoutButton(b)

	background := func() paint.RGBA {
		ext, ok := b.Draw(rctx, 10, 10).(scene.Extension)
		require.True(t, ok)
		return ext.Background.Primitive.(raster.Rect).Color
	}
	assert.Equal(t, widget.DefaultButtonColor, background())
	syncOnce(b, event.Move(cx, cy))
	assert.Equal(t, widget.DefaultHoverColor, background())
	syncOnce(b, event.Press(cx, cy))
	assert.Equal(t, widget.DefaultPressedColor, background())
}

func TestButtonDisabled(t *testing.T) {
	b := &widget.Button{Text: "OK", Disabled: true}
	cx, cy := layoutButton(b)
	assert.Equal(t, ggui.DamageNone, syncOnce(b, event.Press(cx, cy)))
	assert.False(t, b.Pressed())
}

func TestProgressAnimates(t *testing.T) {
	p := &widget.Progress{Width: 100, Height: 4, Topic: "p"}

	assert.Equal(t, ggui.DamageFrame, syncOnce(p, post("p", 0.5)))
	assert.Equal(t, 0.5, p.Target())
	assert.Zero(t, p.Value())

	assert.Equal(t, ggui.DamageFrame, syncOnce(p, event.Callback{Delta: 250 * time.Millisecond}))
	assert.InDelta(t, 0.25, p.Value(), 1e-9)

	assert.Equal(t, ggui.DamagePartial, syncOnce(p, event.Callback{Delta: 250 * time.Millisecond}), "the last step stops the animation")
	assert.Equal(t, 0.5, p.Value())

	assert.Equal(t, ggui.DamageNone, syncOnce(p, event.Callback{Delta: time.Second}))
	assert.Equal(t, ggui.DamageNone, syncOnce(p, post("p", 0.5)))
}

func TestProgressClampsAndReverses(t *testing.T) {
	p := &widget.Progress{Topic: "p", Speed: 2}
	p.Set(0.5)

	syncOnce(p, post("p", -3.0))
	assert.Zero(t, p.Target())
	syncOnce(p, event.Callback{Delta: 100 * time.Millisecond})
	assert.InDelta(t, 0.3, p.Value(), 1e-9)
}

func TestProgressDraw(t *testing.T) {
	p := &widget.Progress{Width: 100, Height: 4}
	p.Set(0.254)
	p.Layout(rctx, loose(200, 10))

	want := scene.Extension{
		Background: scene.Instruction{Region: region.New(0, 0, 100, 4), Primitive: raster.Rect{Color: widget.DefaultTrackColor}},
		Child:      leaf(0, 0, 25, 4, widget.DefaultFillColor),
	}
	assert.True(t, scene.Equal(want, p.Draw(rctx, 0, 0)))

	p.Set(0)
	ext := p.Draw(rctx, 0, 0).(scene.Extension)
	assert.Equal(t, scene.None{}, ext.Child)
}

// A click on a button updates a label in the same frame.
func TestButtonUpdatesLabelInWindow(t *testing.T) {
	status := &widget.Label{Text: "idle", Topic: "status"}
	button := &widget.Button{Text: "Go", Topic: "status", Value: "running"}
	root := widget.Column(status, button)

	d := surface.NewHeadless(surface.WithSize(200, 100), surface.WithRefresh(0))
	w, err := ggui.NewWindow(d, root)
	require.NoError(t, err)
	defer w.Close()

	ctx := context.Background()
	require.NoError(t, d.Dispatch(ctx))
	require.Equal(t, 1, w.Stats().Frames)

	r := button.Bounds()
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	d.Inject(event.Press(cx, cy))
	d.Inject(event.Release(cx, cy))
	require.NoError(t, d.Dispatch(ctx))
	d.Tick(16 * time.Millisecond)

	assert.Equal(t, "running", status.Text)
	assert.Equal(t, 1, w.Stats().SyncPasses)
	assert.Equal(t, 2, w.Stats().Frames)
}
