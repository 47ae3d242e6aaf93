package render

import (
	"math"

	"github.com/Garyljackson/3d-pipes/config"
	"github.com/Garyljackson/3d-pipes/vmath"
)

// Orbit path, tuned for the default radius and scaled with CameraRadius
const (
	defaultRadius = 38.0
	orbitHeight   = 18.0
	orbitBob      = 10.0
	orbitBobRate  = 0.37

	// FOV is the vertical field of view in degrees
	FOV  = 50.0
	near = 0.1
)

// StartEye is the camera position before the first orbit step
var StartEye = vmath.Vec3F{X: 30, Y: 24, Z: 30}

// Camera looks at the origin from Eye
type Camera struct {
	Angle float64
	Eye   vmath.Vec3F
}

func NewCamera() *Camera {
	return &Camera{Eye: StartEye}
}

// Advance moves one frame along the orbit when orbiting is on
// With orbiting off the camera keeps its last position
func (c *Camera) Advance(cfg *config.Config) {
	if !cfg.OrbitCamera {
		return
	}
	c.Angle += cfg.OrbitSpeed
	c.Eye = OrbitEye(c.Angle, cfg.CameraRadius)
}

// OrbitEye returns the eye position at angle on an orbit of radius
func OrbitEye(angle, radius float64) vmath.Vec3F {
	k := radius / defaultRadius
	return vmath.Vec3F{
		X: math.Cos(angle) * radius,
		Y: (orbitHeight + math.Sin(angle*orbitBobRate)*orbitBob) * k,
		Z: math.Sin(angle) * radius,
	}
}

// View is a camera basis fitted to a w x h pixel frame with square pixels
type View struct {
	Eye                   vmath.Vec3F
	Forward, Right, Up    vmath.Vec3F
	Focal                 float64
	HalfWidth, HalfHeight float64
}

// View builds the basis for a frame of w x h pixels
func (c *Camera) View(w, h int) View {
	fwd := vmath.V3FNormalize(vmath.V3FScale(c.Eye, -1))
	right := vmath.V3FCross(fwd, vmath.Vec3F{Y: 1})
	if vmath.V3FMagSq(right) < 1e-12 {
		right = vmath.Vec3F{X: 1}
	}
	right = vmath.V3FNormalize(right)

	halfH := float64(h) / 2
	return View{
		Eye:        c.Eye,
		Forward:    fwd,
		Right:      right,
		Up:         vmath.V3FCross(right, fwd),
		Focal:      halfH / math.Tan(FOV*math.Pi/360),
		HalfWidth:  float64(w) / 2,
		HalfHeight: halfH,
	}
}

// Project maps p to pixel coordinates and view depth
// ok is false for points behind the near plane
func (v View) Project(p vmath.Vec3F) (x, y, depth float64, ok bool) {
	d := vmath.V3FSub(p, v.Eye)
	depth = vmath.V3FDot(d, v.Forward)
	if depth < near {
		return 0, 0, depth, false
	}
	s := v.Focal / depth
	x = v.HalfWidth + vmath.V3FDot(d, v.Right)*s
	y = v.HalfHeight - vmath.V3FDot(d, v.Up)*s
	return x, y, depth, true
}

// Ray returns the unit direction through pixel coordinates (x, y)
func (v View) Ray(x, y float64) vmath.Vec3F {
	dir := vmath.V3FScale(v.Forward, v.Focal)
	dir = vmath.V3FAddScaled(dir, v.Right, x-v.HalfWidth)
	dir = vmath.V3FAddScaled(dir, v.Up, v.HalfHeight-y)
	return vmath.V3FNormalize(dir)
}
