package interpreter

import "github.com/pkg/errors"

// Bounds is the inclusive rectangle of cells the robot may occupy.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// DefaultBounds is the 5x5 table, cells 0..4 on both axes.
func DefaultBounds() Bounds {
	return Bounds{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}
}

func (b Bounds) Contains(p Position) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

func (b Bounds) Validate() error {
	if b.MinX > b.MaxX {
		return errors.Errorf("table min x %d exceeds max x %d", b.MinX, b.MaxX)
	}
	if b.MinY > b.MaxY {
		return errors.Errorf("table min y %d exceeds max y %d", b.MinY, b.MaxY)
	}
	return nil
}

func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}
