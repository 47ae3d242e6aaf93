package render

import (
	"math"

	"github.com/Garyljackson/3d-pipes/vmath"
)

// Intersect traces a ray from ro along unit rd against p
// Returns the hit distance and unit surface normal
func (p *Primitive) Intersect(ro, rd vmath.Vec3F) (t float64, n vmath.Vec3F, ok bool) {
	switch p.Shape {
	case ShapeSphere:
		t, ok = raySphere(ro, rd, p.A, p.Radius)
		if !ok {
			return 0, n, false
		}
		hit := vmath.V3FAddScaled(ro, rd, t)
		return t, vmath.V3FScale(vmath.V3FSub(hit, p.A), 1/p.Radius), true
	case ShapeCapsule:
		t, ok = rayCapsule(ro, rd, p.A, p.B, p.Radius)
		if !ok {
			return 0, n, false
		}
		return t, capsuleNormal(vmath.V3FAddScaled(ro, rd, t), p.A, p.B, p.Radius), true
	}
	return 0, n, false
}

func raySphere(ro, rd, c vmath.Vec3F, r float64) (float64, bool) {
	oc := vmath.V3FSub(ro, c)
	b := vmath.V3FDot(oc, rd)
	h := b*b - (vmath.V3FDot(oc, oc) - r*r)
	if h < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(h)
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// rayCapsule tests the cylinder body first, then the end cap nearest the hit
func rayCapsule(ro, rd, pa, pb vmath.Vec3F, r float64) (float64, bool) {
	ba := vmath.V3FSub(pb, pa)
	oa := vmath.V3FSub(ro, pa)
	baba := vmath.V3FDot(ba, ba)
	if baba < 1e-12 {
		return raySphere(ro, rd, pa, r)
	}
	bard := vmath.V3FDot(ba, rd)
	baoa := vmath.V3FDot(ba, oa)
	rdoa := vmath.V3FDot(rd, oa)
	oaoa := vmath.V3FDot(oa, oa)

	a := baba - bard*bard
	b := baba*rdoa - baoa*bard
	c := baba*oaoa - baoa*baoa - r*r*baba
	h := b*b - a*c
	if h < 0 {
		return 0, false
	}

	y := baoa
	if a > 1e-12 {
		t := (-b - math.Sqrt(h)) / a
		y = baoa + t*bard
		if y > 0 && y < baba {
			if t <= 0 {
				return 0, false
			}
			return t, true
		}
	}

	end := pa
	if y > 0 {
		end = pb
	}
	return raySphere(ro, rd, end, r)
}

func capsuleNormal(p, a, b vmath.Vec3F, r float64) vmath.Vec3F {
	ba := vmath.V3FSub(b, a)
	pa := vmath.V3FSub(p, a)
	h := 0.0
	if baba := vmath.V3FDot(ba, ba); baba > 0 {
		h = vmath.Clamp(vmath.V3FDot(pa, ba)/baba, 0, 1)
	}
	return vmath.V3FScale(vmath.V3FSub(pa, vmath.V3FScale(ba, h)), 1/r)
}
