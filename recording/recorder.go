package recording

import (
	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

// Recorder is a scene.Canvas that records every call as a Command.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

var _ scene.Canvas = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 16)}
}

// Damage implements scene.Canvas.
func (r *Recorder) Damage(rg region.Region, bg scene.Background) {
	r.commands = append(r.commands, Command{Type: CmdDamage, Region: rg, Background: bg})
}

// Draw implements scene.Canvas.
func (r *Recorder) Draw(in scene.Instruction) {
	r.commands = append(r.commands, Command{Type: CmdDraw, Region: in.Region, Instruction: in})
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command { return r.commands }

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Damages returns only the CmdDamage commands.
func (r *Recorder) Damages() []Command { return r.filter(CmdDamage) }

// Draws returns only the CmdDraw commands.
func (r *Recorder) Draws() []Command { return r.filter(CmdDraw) }

func (r *Recorder) filter(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// DamagedRegions returns the region of every CmdDamage command.
func (r *Recorder) DamagedRegions() []region.Region {
	var out []region.Region
	for _, c := range r.commands {
		if c.Type == CmdDamage {
			out = append(out, c.Region)
		}
	}
	return out
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() { r.commands = r.commands[:0] }

// Playback replays the recorded commands onto c in order.
func (r *Recorder) Playback(c scene.Canvas) {
	for _, cmd := range r.commands {
		switch cmd.Type {
		case CmdDamage:
			c.Damage(cmd.Region, cmd.Background)
		case CmdDraw:
			c.Draw(cmd.Instruction)
		}
	}
}

// Tee returns a canvas forwarding every call to each of cs in order.
func Tee(cs ...scene.Canvas) scene.Canvas { return tee(cs) }

type tee []scene.Canvas

func (t tee) Damage(r region.Region, bg scene.Background) {
	for _, c := range t {
		c.Damage(r, bg)
	}
}

func (t tee) Draw(in scene.Instruction) {
	for _, c := range t {
		c.Draw(in)
	}
}
