package grid

import "github.com/Garyljackson/3d-pipes/vmath"

// MaxFreeCellAttempts bounds RandomFreeCell sampling
// Near-full grids may report no free cell even when some remain
const MaxFreeCellAttempts = 300

// Grid is a dense cubic occupancy lattice
// 1D array: index = (z*Size+y)*Size+x
type Grid struct {
	size     int
	occupied []bool
	count    int
}

// New creates an empty grid with edge length size, clamped to at least 1
func New(size int) *Grid {
	if size < 1 {
		size = 1
	}
	return &Grid{
		size:     size,
		occupied: make([]bool, size*size*size),
	}
}

// Size returns the cube edge length
func (g *Grid) Size() int {
	return g.size
}

// Volume returns the total number of cells
func (g *Grid) Volume() int {
	return len(g.occupied)
}

func (g *Grid) index(c Cell) int {
	return (c.Z*g.size+c.Y)*g.size + c.X
}

// InBounds reports whether every coordinate of c is within [0, Size)
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.size &&
		c.Y >= 0 && c.Y < g.size &&
		c.Z >= 0 && c.Z < g.size
}

// IsOccupied reports whether c is occupied, false for out of bounds
func (g *Grid) IsOccupied(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.occupied[g.index(c)]
}

// IsFree reports whether c is in bounds and unoccupied
func (g *Grid) IsFree(c Cell) bool {
	return g.InBounds(c) && !g.occupied[g.index(c)]
}

// MarkOccupied claims c; idempotent, out of bounds is ignored
func (g *Grid) MarkOccupied(c Cell) {
	if !g.InBounds(c) {
		return
	}
	idx := g.index(c)
	if g.occupied[idx] {
		return
	}
	g.occupied[idx] = true
	g.count++
}

// Count returns the number of occupied cells
func (g *Grid) Count() int {
	return g.count
}

// FillRatio returns Count / Size^3
func (g *Grid) FillRatio() float64 {
	return float64(g.count) / float64(len(g.occupied))
}

// Clear drops all occupancy by reallocating the backing storage
func (g *Grid) Clear() {
	g.occupied = make([]bool, g.size*g.size*g.size)
	g.count = 0
}

// RandomFreeCell samples up to MaxFreeCellAttempts uniform cells
// Returns the first unoccupied one, or false when the budget runs out
func (g *Grid) RandomFreeCell(rng vmath.Source) (Cell, bool) {
	for i := 0; i < MaxFreeCellAttempts; i++ {
		c := Cell{
			X: rng.IntN(g.size),
			Y: rng.IntN(g.size),
			Z: rng.IntN(g.size),
		}
		if !g.occupied[g.index(c)] {
			return c, true
		}
	}
	return Cell{}, false
}

// Cells returns occupied cells in index order
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.count)
	for idx, occ := range g.occupied {
		if !occ {
			continue
		}
		x := idx % g.size
		y := (idx / g.size) % g.size
		z := idx / (g.size * g.size)
		cells = append(cells, Cell{x, y, z})
	}
	return cells
}
