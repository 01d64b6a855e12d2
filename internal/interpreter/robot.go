package interpreter

import "fmt"

// Orientation is where the robot stands and which way it faces.
type Orientation struct {
	Position  Position
	Direction Direction
}

func (o Orientation) String() string {
	return fmt.Sprintf("%d,%d,%s", o.Position.X, o.Position.Y, o.Direction)
}

// Outcome is what happened to an instruction handed to the robot.
type Outcome int

const (
	// Applied means the robot's state was updated.
	Applied Outcome = iota
	// Reported means the robot produced its orientation.
	Reported
	// Rejected means the command would have left the table and was ignored.
	Rejected
	// Unplaced means the command was ignored because no PLACE has been accepted yet.
	Unplaced
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Reported:
		return "reported"
	case Rejected:
		return "rejected"
	case Unplaced:
		return "unplaced"
	default:
		return "unknown"
	}
}

// Robot represents the toy robot on its table

type Robot struct {
	bounds      Bounds
	orientation Orientation
	placed      bool
}

func NewRobot(bounds Bounds) *Robot {
	return &Robot{
		bounds:      bounds,
		orientation: Orientation{Direction: North},
	}
}

func (r *Robot) Bounds() Bounds {
	return r.bounds
}

func (r *Robot) Placed() bool {
	return r.placed
}

func (r *Robot) Orientation() Orientation {
	return r.orientation
}

// Place puts the robot on the table, replacing any previous orientation.
// An off-table position leaves the robot as it was.
func (r *Robot) Place(pos Position, facing Direction) Outcome {
	if !facing.IsValid() || !r.bounds.Contains(pos) {
		return Rejected
	}
	r.orientation = Orientation{Position: pos, Direction: facing}
	r.placed = true
	return Applied
}

// Apply commits a Movement. Turns always succeed once placed; a step is
// committed only if it ends on the table.
func (r *Robot) Apply(m Movement) Outcome {
	if !r.placed {
		return Unplaced
	}
	facing, ok := r.orientation.Direction.Rotate(m.DeltaAngle)
	if !ok {
		return Rejected
	}
	pos := r.orientation.Position.Add(m.DeltaPosition)
	if !r.bounds.Contains(pos) {
		return Rejected
	}
	r.orientation = Orientation{Position: pos, Direction: facing}
	return Applied
}

// Report returns the current orientation, or false if the robot has not
// been placed.
func (r *Robot) Report() (Orientation, bool) {
	if !r.placed {
		return Orientation{}, false
	}
	return r.orientation, true
}

// Execute runs one instruction against the robot.
func (r *Robot) Execute(in Instruction) Outcome {
	switch in := in.(type) {
	case Place:
		return r.Place(Position{X: in.X, Y: in.Y}, in.Facing)
	case *Place:
		return r.Place(Position{X: in.X, Y: in.Y}, in.Facing)
	case Report, *Report:
		if _, ok := r.Report(); !ok {
			return Unplaced
		}
		return Reported
	}
	return r.Apply(ToDelta(in, r.orientation.Direction))
}

func (r *Robot) String() string {
	if !r.placed {
		return "unplaced"
	}
	return r.orientation.String()
}
