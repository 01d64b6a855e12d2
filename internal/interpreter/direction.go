package interpreter

import "github.com/pkg/errors"

// Direction is a compass facing. Its value is the angle in degrees,
// measured clockwise from north.
type Direction int

const (
	North Direction = 0
	East  Direction = 90
	South Direction = 180
	West  Direction = 270
)

var directionNames = map[Direction]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

// unit step per facing
var directionDeltas = map[Direction]Position{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

// Directions lists the four facings in clockwise order starting at north.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// ParseDirection maps a canonical upper-case name to its Direction.
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return d, nil
		}
	}
	return 0, errors.Errorf("unknown direction %q", name)
}

// DirectionFromAngle normalizes angle into [0,360) and reports whether it
// lands on one of the four facings.
func DirectionFromAngle(angle int) (Direction, bool) {
	d := Direction(((angle % 360) + 360) % 360)
	return d, d.IsValid()
}

func (d Direction) IsValid() bool {
	_, ok := directionNames[d]
	return ok
}

func (d Direction) Angle() int {
	return int(d)
}

// Rotate turns d by delta degrees. ok is false when the result is not a
// compass facing, in which case d is returned unchanged.
func (d Direction) Rotate(delta int) (Direction, bool) {
	next, ok := DirectionFromAngle(d.Angle() + delta)
	if !ok {
		return d, false
	}
	return next, true
}

// Delta is the one-cell step taken when moving forward while facing d.
func (d Direction) Delta() Position {
	return directionDeltas[d]
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return "UNKNOWN"
}
