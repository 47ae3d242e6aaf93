package grid

import "github.com/Garyljackson/3d-pipes/vmath"

// Direction is one of the six axis-aligned unit steps
type Direction uint8

const (
	PosX Direction = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
	directionCount
)

// Directions lists all six directions in canonical order
var Directions = [directionCount]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}

var directionDeltas = [directionCount][3]int{
	PosX: {1, 0, 0},
	NegX: {-1, 0, 0},
	PosY: {0, 1, 0},
	NegY: {0, -1, 0},
	PosZ: {0, 0, 1},
	NegZ: {0, 0, -1},
}

var directionNames = [directionCount]string{"+x", "-x", "+y", "-y", "+z", "-z"}

// perpendiculars is precomputed so the walker never needs a dot-product test
var perpendiculars [directionCount][4]Direction

func init() {
	for _, d := range Directions {
		n := 0
		for _, o := range Directions {
			if d.IsPerpendicular(o) {
				perpendiculars[d][n] = o
				n++
			}
		}
	}
}

// Valid reports whether d is one of the six directions
func (d Direction) Valid() bool {
	return d < directionCount
}

// Opposite returns the reverse direction; pairs share an axis and differ in the low bit
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Axis returns 0, 1 or 2 for x, y, z
func (d Direction) Axis() int {
	return int(d >> 1)
}

// IsPerpendicular is the exact integer dot test, no tolerance needed
func (d Direction) IsPerpendicular(o Direction) bool {
	return d.Axis() != o.Axis()
}

// Perpendicular returns the four directions at right angles to d
func (d Direction) Perpendicular() [4]Direction {
	return perpendiculars[d]
}

// Delta returns the integer step for d
func (d Direction) Delta() (dx, dy, dz int) {
	v := directionDeltas[d]
	return v[0], v[1], v[2]
}

// Vec returns d as a world-space unit vector
func (d Direction) Vec() vmath.Vec3F {
	v := directionDeltas[d]
	return vmath.Vec3F{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func (d Direction) String() string {
	if !d.Valid() {
		return "?"
	}
	return directionNames[d]
}
