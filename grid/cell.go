package grid

import "fmt"

// Cell is an integer lattice coordinate
type Cell struct {
	X, Y, Z int
}

// Step returns the neighbor of c in direction d
func (c Cell) Step(d Direction) Cell {
	dx, dy, dz := d.Delta()
	return Cell{c.X + dx, c.Y + dy, c.Z + dz}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
