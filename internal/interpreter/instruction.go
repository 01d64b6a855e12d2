package interpreter

import "fmt"

// Kind is the keyword an instruction is written with.
type Kind string

const (
	KindPlace  Kind = "PLACE"
	KindMove   Kind = "MOVE"
	KindLeft   Kind = "LEFT"
	KindRight  Kind = "RIGHT"
	KindReport Kind = "REPORT"
)

var kinds = map[string]Kind{
	string(KindPlace):  KindPlace,
	string(KindMove):   KindMove,
	string(KindLeft):   KindLeft,
	string(KindRight):  KindRight,
	string(KindReport): KindReport,
}

// Instruction is one parsed command line. Each kind is its own type and
// carries only the fields it needs.
type Instruction interface {
	Kind() Kind
}

// Place puts the robot at (X, Y) facing Facing.
type Place struct {
	X, Y   int
	Facing Direction
}

// Move steps the robot one cell forward.
type Move struct{}

// Left turns the robot a quarter counter-clockwise.
type Left struct{}

// Right turns the robot a quarter clockwise.
type Right struct{}

// Report asks for the robot's current orientation.
type Report struct{}

func (Place) Kind() Kind  { return KindPlace }
func (Move) Kind() Kind   { return KindMove }
func (Left) Kind() Kind   { return KindLeft }
func (Right) Kind() Kind  { return KindRight }
func (Report) Kind() Kind { return KindReport }

func (p Place) String() string {
	return fmt.Sprintf("PLACE %d,%d,%s", p.X, p.Y, p.Facing)
}

func (Move) String() string   { return string(KindMove) }
func (Left) String() string   { return string(KindLeft) }
func (Right) String() string  { return string(KindRight) }
func (Report) String() string { return string(KindReport) }
