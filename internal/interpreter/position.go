package interpreter

import "fmt"

// Position is a table cell.
type Position struct {
	X, Y int
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
