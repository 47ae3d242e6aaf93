package render

import (
	"math"
	"testing"

	"github.com/Garyljackson/3d-pipes/config"
	"github.com/Garyljackson/3d-pipes/vmath"
)

func TestCameraAdvance(t *testing.T) {
	cfg := config.Default()

	cam := NewCamera()
	cfg.OrbitCamera = false
	cam.Advance(cfg)
	if cam.Eye != StartEye || cam.Angle != 0 {
		t.Errorf("fixed camera moved to %v", cam.Eye)
	}

	cfg.OrbitCamera = true
	cam.Advance(cfg)
	cam.Advance(cfg)
	if math.Abs(cam.Angle-2*cfg.OrbitSpeed) > 1e-12 {
		t.Errorf("angle %f", cam.Angle)
	}
	if cam.Eye != OrbitEye(cam.Angle, cfg.CameraRadius) {
		t.Errorf("eye %v not on orbit", cam.Eye)
	}
}

func TestOrbitEye(t *testing.T) {
	tests := []struct {
		angle, radius float64
		want          vmath.Vec3F
	}{
		{0, 38, vmath.Vec3F{X: 38, Y: 18}},
		{math.Pi / 2, 38, vmath.Vec3F{Y: 18 + math.Sin(math.Pi/2*0.37)*10, Z: 38}},
		{0, 19, vmath.Vec3F{X: 19, Y: 9}},
	}
	for _, tt := range tests {
		got := OrbitEye(tt.angle, tt.radius)
		if !vmath.V3FNear(got, tt.want, 1e-9) {
			t.Errorf("OrbitEye(%v, %v) = %v, want %v", tt.angle, tt.radius, got, tt.want)
		}
	}
}

func TestViewProjection(t *testing.T) {
	cam := NewCamera()
	v := cam.View(80, 40)

	x, y, depth, ok := v.Project(vmath.Vec3F{})
	if !ok {
		t.Fatal("origin should be visible")
	}
	if math.Abs(x-40) > 1e-9 || math.Abs(y-20) > 1e-9 {
		t.Errorf("origin projects to (%f, %f), want frame center", x, y)
	}
	if math.Abs(depth-vmath.V3FMag(StartEye)) > 1e-9 {
		t.Errorf("depth %f", depth)
	}

	_, yUp, _, _ := v.Project(vmath.Vec3F{Y: 5})
	if yUp >= y {
		t.Errorf("point above origin should be higher on screen: %f vs %f", yUp, y)
	}

	if _, _, _, ok := v.Project(vmath.V3FScale(StartEye, 2)); ok {
		t.Error("point behind the camera reported visible")
	}

	center := v.Ray(40, 20)
	if !vmath.V3FNear(center, v.Forward, 1e-9) {
		t.Errorf("center ray %v, forward %v", center, v.Forward)
	}
}

func TestViewRoundTrip(t *testing.T) {
	cam := &Camera{Eye: OrbitEye(1.3, 38)}
	v := cam.View(120, 60)
	p := vmath.Vec3F{X: 3, Y: -2, Z: 7}

	x, y, _, ok := v.Project(p)
	if !ok {
		t.Fatal("point should be visible")
	}
	rd := v.Ray(x, y)
	want := vmath.V3FNormalize(vmath.V3FSub(p, v.Eye))
	if !vmath.V3FNear(rd, want, 1e-9) {
		t.Errorf("ray through projection %v, want %v", rd, want)
	}
}
