package pipe

import (
	"slices"

	"github.com/Garyljackson/3d-pipes/config"
	"github.com/Garyljackson/3d-pipes/grid"
	"github.com/Garyljackson/3d-pipes/material"
	"github.com/Garyljackson/3d-pipes/vmath"
)

// Options carries a walker's collaborators
// Config is read on every step so runtime toggles apply to live walkers
type Options struct {
	Config   *config.Config
	Rand     vmath.Source
	Sink     Sink
	Material material.Material
}

// Walker grows one pipe through a shared grid, one cell per step
// Invariant: while the walker exists its position is an occupied cell
type Walker struct {
	grid     *grid.Grid
	cfg      *config.Config
	rng      vmath.Source
	sink     Sink
	material material.Material

	pos         grid.Cell
	facing      grid.Direction
	segments    int
	maxSegments int
	alive       bool

	scratch [len(grid.Directions)]grid.Direction
}

func newWalker(g *grid.Grid, opts Options) *Walker {
	w := &Walker{
		grid:     g,
		cfg:      opts.Config,
		rng:      opts.Rand,
		sink:     opts.Sink,
		material: opts.Material,
	}
	if w.cfg == nil {
		w.cfg = config.Default()
	}
	if w.sink == nil {
		w.sink = Discard
	}
	return w
}

// NewWalker starts a pipe at a random free cell
// When sampling finds no free cell the walker is born terminated and emits nothing
func NewWalker(g *grid.Grid, opts Options) *Walker {
	w := newWalker(g, opts)
	start, ok := g.RandomFreeCell(w.rng)
	if !ok {
		return w
	}
	w.pos = start
	w.grid.MarkOccupied(start)
	w.maxSegments = w.drawMaxSegments()
	w.facing = w.initialFacing(start)
	w.begin()
	return w
}

// NewWalkerAt starts a pipe at a chosen cell and facing
// An out of bounds or occupied start yields a terminated walker
func NewWalkerAt(g *grid.Grid, start grid.Cell, facing grid.Direction, opts Options) *Walker {
	w := newWalker(g, opts)
	if !g.IsFree(start) || !facing.Valid() {
		return w
	}
	w.pos = start
	w.grid.MarkOccupied(start)
	w.maxSegments = w.drawMaxSegments()
	w.facing = facing
	w.begin()
	return w
}

// begin marks the walker alive and caps the face behind the start cell
func (w *Walker) begin() {
	w.alive = true
	l := w.layout()
	back := l.Face(l.Center(w.pos), w.facing.Opposite())
	w.sink.Emit(Cap{At: back, Radius: w.cfg.PipeRadius * w.cfg.CapScale, Material: w.material})
}

// drawMaxSegments is uniform over [MinSegments, MaxSegments]
func (w *Walker) drawMaxSegments() int {
	lo, hi := w.cfg.MinSegments, w.cfg.MaxSegments
	if hi < lo {
		hi = lo
	}
	return lo + w.rng.IntN(hi-lo+1)
}

// initialFacing prefers a shuffled direction with a free neighbor
// Falls back to the first shuffled direction; the first Step then terminates
func (w *Walker) initialFacing(start grid.Cell) grid.Direction {
	dirs := grid.Directions
	vmath.Shuffle(w.rng, dirs[:])
	for _, d := range dirs {
		if w.grid.IsFree(start.Step(d)) {
			return d
		}
	}
	return dirs[0]
}

func (w *Walker) Alive() bool                 { return w.alive }
func (w *Walker) Position() grid.Cell         { return w.pos }
func (w *Walker) Facing() grid.Direction      { return w.facing }
func (w *Walker) Segments() int               { return w.segments }
func (w *Walker) MaxSegments() int            { return w.maxSegments }
func (w *Walker) Material() material.Material { return w.material }

// Step grows the pipe by one cell and reports whether it advanced
// A walker at its length limit or with no legal move terminates instead
func (w *Walker) Step() bool {
	if !w.alive {
		return false
	}
	if w.segments >= w.maxSegments {
		w.terminate()
		return false
	}

	next, ok := w.pickDirection()
	if !ok {
		w.terminate()
		return false
	}

	w.emitCell(next)

	w.pos = w.pos.Step(next)
	w.facing = next
	w.grid.MarkOccupied(w.pos)
	w.segments++
	return true
}

// Terminate ends the pipe early with the usual closing directives
func (w *Walker) Terminate() {
	if w.alive {
		w.terminate()
	}
}

// pickDirection returns the first candidate leading to a free in-bounds cell
func (w *Walker) pickDirection() (grid.Direction, bool) {
	for _, d := range w.candidateOrder() {
		if w.grid.IsFree(w.pos.Step(d)) {
			return d, true
		}
	}
	return 0, false
}

// candidateOrder ranks the moves for this step; the reverse is never included
// With StraightChance: facing, then shuffled perpendiculars; otherwise the reverse order
func (w *Walker) candidateOrder() []grid.Direction {
	straightFirst := w.rng.Float64() < w.cfg.StraightChance
	perps := w.facing.Perpendicular()
	vmath.Shuffle(w.rng, perps[:])

	cands := w.scratch[:0]
	if straightFirst {
		cands = append(cands, w.facing)
		cands = append(cands, perps[:]...)
	} else {
		cands = append(cands, perps[:]...)
		cands = append(cands, w.facing)
	}

	// Completion pass over the remaining non-reverse directions
	// Facing plus four perpendiculars already covers them, so this never appends
	reverse := w.facing.Opposite()
	for _, d := range grid.Directions {
		if d != reverse && !slices.Contains(cands, d) {
			cands = append(cands, d)
		}
	}
	return cands
}

// emitCell draws the current cell, entering along facing and leaving along next
func (w *Walker) emitCell(next grid.Direction) {
	l := w.layout()
	center := l.Center(w.pos)
	entry := l.Face(center, w.facing.Opposite())
	exit := l.Face(center, next)
	r := w.cfg.PipeRadius

	switch {
	case next == w.facing:
		w.sink.Emit(Straight{From: entry, To: exit, Radius: r, Material: w.material})
	case w.cfg.JointStyle == config.StyleBall:
		w.sink.Emit(Straight{From: entry, To: center, Radius: r, Material: w.material})
		w.sink.Emit(Joint{At: center, Radius: r * w.cfg.JointScale, Material: w.material})
		w.sink.Emit(Straight{From: center, To: exit, Radius: r, Material: w.material})
	default:
		w.sink.Emit(Elbow{
			Center:   center,
			In:       w.facing,
			Out:      next,
			Radius:   r,
			Points:   ElbowArc(center, w.facing, next, l.Half()),
			Material: w.material,
		})
	}

	w.sink.Emit(Seam{At: exit, Radius: r * w.cfg.SeamScale, Material: w.material})
}

// terminate closes the pipe with a half segment and a cap at the cell center
func (w *Walker) terminate() {
	w.alive = false
	l := w.layout()
	center := l.Center(w.pos)
	entry := l.Face(center, w.facing.Opposite())
	w.sink.Emit(Straight{From: entry, To: center, Radius: w.cfg.PipeRadius, Material: w.material})
	w.sink.Emit(Cap{At: center, Radius: w.cfg.PipeRadius * w.cfg.CapScale, Material: w.material})
}

func (w *Walker) layout() Layout {
	return LayoutFor(w.grid, w.cfg)
}
