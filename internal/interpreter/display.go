package interpreter

import (
	"bufio"
	"fmt"
	"io"
)

var facingGlyphs = map[Direction]string{
	North: "^",
	East:  ">",
	South: "v",
	West:  "<",
}

// Display draws the table with north at the top. The robot is drawn as an
// arrow pointing the way it faces; an unplaced robot is not drawn.
func (b Bounds) Display(w io.Writer, r *Robot) error {
	bw := bufio.NewWriter(w)
	pose, placed := r.Report()
	for y := b.MaxY; y >= b.MinY; y-- {
		for x := b.MinX; x <= b.MaxX; x++ {
			cell := "."
			if placed && pose.Position.X == x && pose.Position.Y == y {
				cell = facingGlyphs[pose.Direction]
			}
			if x > b.MinX {
				bw.WriteByte(' ')
			}
			bw.WriteString(cell)
		}
		bw.WriteByte('\n')
	}
	if placed {
		fmt.Fprintf(bw, "%s\n", pose)
	}
	return bw.Flush()
}
