package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/recording"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

func TestTreeFirstUpdateRendersEverything(t *testing.T) {
	var tree scene.Tree
	require.True(t, tree.IsEmpty())

	rec := recording.NewRecorder()
	tree.Update(sampleTree("a", paint.Red), scene.Transparent, rec)

	assert.Empty(t, rec.Damages())
	assert.Len(t, rec.Draws(), 4)
	assert.False(t, tree.IsEmpty())
}

func TestTreeUpdateReplacesRetained(t *testing.T) {
	var tree scene.Tree
	tree.Update(sampleTree("a", paint.Red), scene.Transparent, recording.NewRecorder())

	next := sampleTree("a", paint.Green)
	rec := recording.NewRecorder()
	tree.Update(next, scene.Transparent, rec)
	assert.Len(t, rec.Draws(), 1)
	assert.True(t, scene.Equal(tree.Root(), next))

	rec.Reset()
	tree.Update(sampleTree("a", paint.Green), scene.Transparent, rec)
	assert.Zero(t, rec.Len(), "the retained tree now matches")
}

func TestTreeReset(t *testing.T) {
	var tree scene.Tree
	tree.Replace(sampleTree("a", paint.Red))
	tree.Reset()
	assert.Nil(t, tree.Root())

	rec := recording.NewRecorder()
	tree.Update(sampleTree("a", paint.Red), scene.Transparent, rec)
	assert.Len(t, rec.Draws(), 4, "a reset tree renders from scratch")
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b scene.Node
		want bool
	}{
		{"none", scene.None{}, scene.None{}, true},
		{"nil", nil, nil, true},
		{"nil vs none", nil, scene.None{}, false},
		{"same leaf", rect(0, 0, 1, 1, paint.Red), rect(0, 0, 1, 1, paint.Red), true},
		{"moved leaf", rect(0, 0, 1, 1, paint.Red), rect(1, 0, 1, 1, paint.Red), false},
		{"recolored leaf", rect(0, 0, 1, 1, paint.Red), rect(0, 0, 1, 1, paint.Blue), false},
		{"leaf vs container", rect(0, 0, 1, 1, paint.Red), scene.NewContainer(rect(0, 0, 1, 1, paint.Red)), false},
		{"containers", scene.NewContainer(text(0, 0, "a")), scene.NewContainer(text(0, 0, "a")), true},
		{"container arity", scene.NewContainer(text(0, 0, "a")), scene.NewContainer(text(0, 0, "a"), scene.None{}), false},
		{"extensions", sampleTree("x", paint.Red), sampleTree("x", paint.Red), true},
		{"extension child", sampleTree("x", paint.Red), sampleTree("y", paint.Red), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scene.Equal(tt.a, tt.b))
		})
	}
}

func TestInstructionEqualIsExact(t *testing.T) {
	a := scene.Instruction{Region: region.New(0, 0, 10, 10), Primitive: fill{paint.Red}}
	b := scene.Instruction{Region: region.New(0, 0, 10, 10.000001), Primitive: fill{paint.Red}}
	assert.False(t, a.Equal(b), "instructions compare regions bit for bit, not by containment")
	assert.True(t, scene.Instruction{}.Equal(scene.Instruction{}))
	assert.False(t, a.Equal(scene.Instruction{Region: a.Region}))
}

func TestInstructionBackground(t *testing.T) {
	assert.Equal(t, scene.Color(paint.Red), scene.Instruction{Primitive: fill{paint.Red}}.Background())
	assert.Equal(t, scene.Transparent, scene.Instruction{Primitive: glyphs{"a"}}.Background())
	assert.Equal(t, scene.Transparent, scene.Instruction{}.Background())
}

func TestBackgroundMerge(t *testing.T) {
	half := paint.RGBA{G: 1, A: 0.5}
	tests := []struct {
		name          string
		parent, child scene.Background
		want          scene.Background
	}{
		{"transparent child", scene.Color(paint.Red), scene.Transparent, scene.Color(paint.Red)},
		{"transparent parent", scene.Transparent, scene.Color(paint.Blue), scene.Color(paint.Blue)},
		{"opaque child", scene.Color(paint.Red), scene.Color(paint.Blue), scene.Color(paint.Blue)},
		{"translucent child", scene.Color(paint.Red), scene.Color(half), scene.Color(half.Over(paint.Red))},
		{"both transparent", scene.Transparent, scene.Transparent, scene.Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.parent.Merge(tt.child))
		})
	}
}

func TestBackgroundColorOfTransparentIsTransparent(t *testing.T) {
	assert.True(t, scene.Color(paint.Transparent).IsTransparent())
	assert.Equal(t, "Transparent", scene.Transparent.String())
	assert.Equal(t, "Color(#ff0000ff)", scene.Color(paint.Red).String())
}

func TestNewContainerBounds(t *testing.T) {
	c := scene.NewContainer(rect(0, 0, 10, 10, paint.Red), scene.None{}, rect(20, 5, 10, 10, paint.Red))
	assert.Equal(t, region.New(0, 0, 30, 15), c.Region)
}
