package pipe

import (
	"math"

	"github.com/Garyljackson/3d-pipes/config"
	"github.com/Garyljackson/3d-pipes/grid"
	"github.com/Garyljackson/3d-pipes/vmath"
)

// ElbowSamples is the number of arc segments per elbow; Points holds one more
const ElbowSamples = 12

// Layout maps grid cells to world space, centering the cube on the origin
type Layout struct {
	Size     int
	CellSize float64
}

// LayoutFor builds the layout for g at the configured cell size
func LayoutFor(g *grid.Grid, cfg *config.Config) Layout {
	return Layout{Size: g.Size(), CellSize: cfg.CellSize}
}

// Half is the center-to-face distance
func (l Layout) Half() float64 {
	return l.CellSize / 2
}

// Extent is the distance from the origin to a face of the whole cube
func (l Layout) Extent() float64 {
	return float64(l.Size) * l.CellSize / 2
}

// Center returns the world position of a cell center
func (l Layout) Center(c grid.Cell) vmath.Vec3F {
	offset := l.Extent() - l.Half()
	return vmath.Vec3F{
		X: float64(c.X)*l.CellSize - offset,
		Y: float64(c.Y)*l.CellSize - offset,
		Z: float64(c.Z)*l.CellSize - offset,
	}
}

// Face returns the point where d leaves the cell centered at center
func (l Layout) Face(center vmath.Vec3F, d grid.Direction) vmath.Vec3F {
	return vmath.V3FAddScaled(center, d.Vec(), l.Half())
}

// ElbowArc samples the quarter circle joining the entry face (travelling in)
// to the exit face (leaving out). The arc is centered on the cell corner where
// both faces meet and has radius half
func ElbowArc(center vmath.Vec3F, in, out grid.Direction, half float64) []vmath.Vec3F {
	inV, outV := in.Vec(), out.Vec()
	corner := vmath.V3FAddScaled(vmath.V3FAddScaled(center, inV, -half), outV, half)

	points := make([]vmath.Vec3F, ElbowSamples+1)
	for i := range points {
		angle := float64(i) / ElbowSamples * math.Pi / 2
		p := vmath.V3FAddScaled(corner, outV, -half*math.Cos(angle))
		points[i] = vmath.V3FAddScaled(p, inV, half*math.Sin(angle))
	}
	return points
}
