package render

import (
	"github.com/Garyljackson/3d-pipes/material"
	"github.com/Garyljackson/3d-pipes/pipe"
	"github.com/Garyljackson/3d-pipes/vmath"
)

// Shape is the surface a primitive is traced as
type Shape uint8

const (
	ShapeSphere  Shape = iota
	ShapeCapsule       // cylinder with rounded ends from A to B
)

// Primitive is one traceable surface derived from a directive
type Primitive struct {
	Shape    Shape
	A, B     vmath.Vec3F
	Radius   float64
	Material material.Material
	Kind     pipe.Kind

	// bounding sphere
	center vmath.Vec3F
	bound  float64
}

func sphere(at vmath.Vec3F, r float64, m material.Material, k pipe.Kind) Primitive {
	return Primitive{Shape: ShapeSphere, A: at, B: at, Radius: r, Material: m, Kind: k, center: at, bound: r}
}

func capsule(a, b vmath.Vec3F, r float64, m material.Material, k pipe.Kind) Primitive {
	return Primitive{
		Shape:    ShapeCapsule,
		A:        a,
		B:        b,
		Radius:   r,
		Material: m,
		Kind:     k,
		center:   vmath.V3FLerp(a, b, 0.5),
		bound:    vmath.V3FDist(a, b)/2 + r,
	}
}

// Scene accumulates primitives from shape directives
// It implements pipe.Sink; Clear drops everything when the grid resets
type Scene struct {
	prims  []Primitive
	counts map[pipe.Kind]int
}

func NewScene() *Scene {
	return &Scene{counts: make(map[pipe.Kind]int)}
}

// Emit implements pipe.Sink
func (s *Scene) Emit(d pipe.Directive) {
	s.counts[d.Kind()]++
	switch d := d.(type) {
	case pipe.Straight:
		s.prims = append(s.prims, capsule(d.From, d.To, d.Radius, d.Material, pipe.KindStraight))
	case pipe.Elbow:
		for i := 1; i < len(d.Points); i++ {
			s.prims = append(s.prims, capsule(d.Points[i-1], d.Points[i], d.Radius, d.Material, pipe.KindElbow))
		}
	case pipe.Cap:
		s.prims = append(s.prims, sphere(d.At, d.Radius, d.Material, pipe.KindCap))
	case pipe.Joint:
		s.prims = append(s.prims, sphere(d.At, d.Radius, d.Material, pipe.KindJoint))
	case pipe.Seam:
		s.prims = append(s.prims, sphere(d.At, d.Radius, d.Material, pipe.KindSeam))
	}
}

// Clear removes all geometry
func (s *Scene) Clear() {
	s.prims = s.prims[:0]
	clear(s.counts)
}

// Len is the number of primitives
func (s *Scene) Len() int { return len(s.prims) }

// Count is the number of directives of kind k received since the last Clear
func (s *Scene) Count(k pipe.Kind) int { return s.counts[k] }

// Primitives returns the live slice; callers must not keep it across Emit
func (s *Scene) Primitives() []Primitive { return s.prims }
