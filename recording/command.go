// Package recording captures the damage and draw calls emitted by a scene
// diff as typed commands, so they can be inspected or replayed later.
//
// A Recorder implements scene.Canvas. It is the test harness for the diff
// engine and a debugging aid for windows: wrap a real canvas with Tee to see
// exactly what a frame repainted.
//
// # Example
//
//	rec := recording.NewRecorder()
//	scene.Diff(prev, next, scene.Transparent, rec)
//	for _, cmd := range rec.Commands() {
//		fmt.Println(cmd)
//	}
package recording

import (
	"fmt"

	"github.com/gogpu/ggui/region"
	"github.com/gogpu/ggui/scene"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDamage CommandType = iota // Restore a region to a background
	CmdDraw                      // Paint an instruction
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDamage: "Damage",
	CmdDraw:   "Draw",
}

// String returns the command type name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", uint8(t))
}

// Command is one recorded canvas call.
type Command struct {
	Type CommandType

	// Region is the damaged region for CmdDamage and the instruction region
	// for CmdDraw.
	Region region.Region

	// Background is set for CmdDamage.
	Background scene.Background

	// Instruction is set for CmdDraw.
	Instruction scene.Instruction
}

// String implements fmt.Stringer.
func (c Command) String() string {
	switch c.Type {
	case CmdDamage:
		return fmt.Sprintf("Damage(%v, %v)", c.Region, c.Background)
	case CmdDraw:
		return fmt.Sprintf("Draw(%v, %T)", c.Region, c.Instruction.Primitive)
	}
	return c.Type.String()
}
