package pipe

import (
	"github.com/Garyljackson/3d-pipes/grid"
	"github.com/Garyljackson/3d-pipes/material"
	"github.com/Garyljackson/3d-pipes/vmath"
)

// Kind tags a shape directive
type Kind uint8

const (
	KindStraight Kind = iota
	KindElbow
	KindCap
	KindJoint
	KindSeam
)

var kindNames = [...]string{"straight", "elbow", "cap", "joint", "seam"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Directive is an abstract shape the renderer adds to its scene
// The set is closed: Straight, Elbow, Cap, Joint, Seam
type Directive interface {
	Kind() Kind
	Appearance() material.Material
}

// Straight is a cylinder between two face or center points
type Straight struct {
	From, To vmath.Vec3F
	Radius   float64
	Material material.Material
}

// Elbow is a quarter-circle tube through a turning cell
// Points run from the entry face to the exit face
type Elbow struct {
	Center   vmath.Vec3F
	In, Out  grid.Direction
	Radius   float64
	Points   []vmath.Vec3F
	Material material.Material
}

// Cap is the rounded end of a pipe
type Cap struct {
	At       vmath.Vec3F
	Radius   float64
	Material material.Material
}

// Joint is the sphere at the center of a ball-style turn
type Joint struct {
	At       vmath.Vec3F
	Radius   float64
	Material material.Material
}

// Seam is the small sphere hiding the join between two cells
type Seam struct {
	At       vmath.Vec3F
	Radius   float64
	Material material.Material
}

func (Straight) Kind() Kind { return KindStraight }
func (Elbow) Kind() Kind    { return KindElbow }
func (Cap) Kind() Kind      { return KindCap }
func (Joint) Kind() Kind    { return KindJoint }
func (Seam) Kind() Kind     { return KindSeam }

func (d Straight) Appearance() material.Material { return d.Material }
func (d Elbow) Appearance() material.Material    { return d.Material }
func (d Cap) Appearance() material.Material      { return d.Material }
func (d Joint) Appearance() material.Material    { return d.Material }
func (d Seam) Appearance() material.Material     { return d.Material }

// Sink receives directives in emission order
type Sink interface {
	Emit(d Directive)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(d Directive)

func (f SinkFunc) Emit(d Directive) { f(d) }

// Discard drops every directive
var Discard Sink = SinkFunc(func(Directive) {})

// Recorder keeps every directive it receives
type Recorder struct {
	Directives []Directive
}

func (r *Recorder) Emit(d Directive) {
	r.Directives = append(r.Directives, d)
}

// Kinds returns the recorded kinds in order
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.Directives))
	for i, d := range r.Directives {
		kinds[i] = d.Kind()
	}
	return kinds
}

// Count returns how many directives of kind k were recorded
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, d := range r.Directives {
		if d.Kind() == k {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Directives = r.Directives[:0]
}
