package recording

import (
	"testing"

	"github.com/gogpu/ggui/paint"
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

type solid struct{ c paint.RGBA }

func (s solid) Equal(other scene.Primitive) bool {
	o, ok := other.(solid)
	return ok && o == s
}

func TestRecorderRecordsInOrder(t *testing.T) {
	rec := NewRecorder()
	in := scene.Instruction{Region: region.New(1, 2, 3, 4), Primitive: solid{paint.Red}}

	rec.Damage(region.New(0, 0, 10, 10), scene.Color(paint.White))
	rec.Draw(in)

	cmds := rec.Commands()
	if len(cmds) != 2 {
		t.Fatalf("Len() = %d, want 2", len(cmds))
	}
	if cmds[0].Type != CmdDamage || cmds[1].Type != CmdDraw {
		t.Errorf("types = %v, %v, want Damage, Draw", cmds[0].Type, cmds[1].Type)
	}
	if cmds[1].Region != in.Region {
		t.Errorf("draw region = %v, want %v", cmds[1].Region, in.Region)
	}
	if got := len(rec.Draws()); got != 1 {
		t.Errorf("Draws() = %d, want 1", got)
	}
	if got := rec.DamagedRegions(); len(got) != 1 || got[0] != region.New(0, 0, 10, 10) {
		t.Errorf("DamagedRegions() = %v", got)
	}
}

func TestRecorderPlaybackAndTee(t *testing.T) {
	src := NewRecorder()
	src.Damage(region.New(0, 0, 1, 1), scene.Transparent)
	src.Draw(scene.Instruction{Primitive: solid{paint.Blue}})

	a, b := NewRecorder(), NewRecorder()
	src.Playback(Tee(a, b))

	for name, r := range map[string]*Recorder{"a": a, "b": b} {
		if r.Len() != 2 {
			t.Errorf("%s: Len() = %d, want 2", name, r.Len())
		}
	}

	src.Reset()
	if src.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", src.Len())
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		t    CommandType
		want string
	}{
		{CmdDamage, "Damage"},
		{CmdDraw, "Draw"},
		{CommandType(9), "CommandType(9)"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
