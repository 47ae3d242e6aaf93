package pipe

import (
	"math"
	"testing"

	"github.com/Garyljackson/3d-pipes/grid"
	"github.com/Garyljackson/3d-pipes/vmath"
)

func TestLayoutCentersGrid(t *testing.T) {
	l := Layout{Size: 16, CellSize: 2}

	if got := l.Center(grid.Cell{}); got != (vmath.Vec3F{X: -15, Y: -15, Z: -15}) {
		t.Errorf("first cell center %v", got)
	}
	if got := l.Center(grid.Cell{15, 15, 15}); got != (vmath.Vec3F{X: 15, Y: 15, Z: 15}) {
		t.Errorf("last cell center %v", got)
	}
	if l.Extent() != 16 {
		t.Errorf("extent %f", l.Extent())
	}
}

func TestElbowArc(t *testing.T) {
	const half = 1.0
	center := vmath.Vec3F{X: 3, Y: -1, Z: 5}

	for _, in := range grid.Directions {
		for _, out := range in.Perpendicular() {
			points := ElbowArc(center, in, out, half)
			if len(points) != ElbowSamples+1 {
				t.Fatalf("expected %d points, got %d", ElbowSamples+1, len(points))
			}

			entry := vmath.V3FAddScaled(center, in.Vec(), -half)
			exit := vmath.V3FAddScaled(center, out.Vec(), half)
			if !vmath.V3FNear(points[0], entry, 1e-9) {
				t.Errorf("%v->%v: arc starts at %v, want %v", in, out, points[0], entry)
			}
			if !vmath.V3FNear(points[ElbowSamples], exit, 1e-9) {
				t.Errorf("%v->%v: arc ends at %v, want %v", in, out, points[ElbowSamples], exit)
			}

			corner := vmath.V3FAddScaled(vmath.V3FAddScaled(center, in.Vec(), -half), out.Vec(), half)
			for i, p := range points {
				if d := vmath.V3FDist(p, corner); math.Abs(d-half) > 1e-9 {
					t.Errorf("%v->%v: point %d at distance %f from corner", in, out, i, d)
				}
			}
		}
	}
}

func TestKindString(t *testing.T) {
	if KindElbow.String() != "elbow" || Kind(99).String() != "unknown" {
		t.Error("unexpected kind names")
	}
}
