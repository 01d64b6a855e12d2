package interpreter

// Movement is the change an instruction would make, computed before the
// robot decides whether to accept it.
type Movement struct {
	DeltaPosition Position
	DeltaAngle    int
}

// Turns are kept non-negative so angle arithmetic stays in [0,360).
const (
	leftTurn  = 270
	rightTurn = 90
)

func (m Movement) IsZero() bool {
	return m.DeltaPosition.IsZero() && m.DeltaAngle == 0
}

// ToDelta converts an instruction into a Movement relative to current.
// PLACE, REPORT and unknown instructions yield the zero Movement.
func ToDelta(in Instruction, current Direction) Movement {
	switch in.(type) {
	case Move, *Move:
		return Movement{DeltaPosition: current.Delta()}
	case Left, *Left:
		return Movement{DeltaAngle: leftTurn}
	case Right, *Right:
		return Movement{DeltaAngle: rightTurn}
	}
	return Movement{}
}
