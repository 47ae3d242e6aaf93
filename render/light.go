package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Garyljackson/3d-pipes/material"
	"github.com/Garyljackson/3d-pipes/vmath"
)

// Light is a directional light shining from Dir toward the origin
type Light struct {
	Dir       vmath.Vec3F // unit, surface to light
	Color     colorful.Color
	Intensity float64
}

// Lighting is the full rig plus scene atmosphere
type Lighting struct {
	Ambient          colorful.Color
	AmbientIntensity float64
	Lights           []Light
	Background       colorful.Color
	FogDensity       float64
	Exposure         float64
}

func hexColor(v uint32) colorful.Color {
	return colorful.Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

func newLight(x, y, z float64, color uint32, intensity float64) Light {
	return Light{
		Dir:       vmath.V3FNormalize(vmath.Vec3F{X: x, Y: y, Z: z}),
		Color:     hexColor(color),
		Intensity: intensity,
	}
}

// DefaultLighting is a key, fill, rim and back rig over a dark blue backdrop
func DefaultLighting() Lighting {
	return Lighting{
		Ambient:          hexColor(0x555577),
		AmbientIntensity: 0.6,
		Lights: []Light{
			newLight(25, 35, 20, 0xffffff, 1.8),
			newLight(-20, 10, -15, 0x6688cc, 0.8),
			newLight(0, -10, 25, 0xff8866, 0.5),
			newLight(-10, 20, -25, 0xaaaadd, 0.6),
		},
		Background: hexColor(0x1e1e35),
		FogDensity: 0.004,
		Exposure:   0.9,
	}
}

// Shade lights a surface point
// n is the unit normal, toEye the unit vector to the viewer, dist the ray length
func (l *Lighting) Shade(m material.Material, n, toEye vmath.Vec3F, dist float64) colorful.Color {
	base := m.Color()
	shininess := m.Shininess()
	diffuseK := 1 - m.Metalness*0.5
	// Metals tint their highlights
	specular := colorful.Color{
		R: vmath.Lerp(1, base.R, m.Metalness),
		G: vmath.Lerp(1, base.G, m.Metalness),
		B: vmath.Lerp(1, base.B, m.Metalness),
	}

	ai := l.AmbientIntensity
	r := base.R * l.Ambient.R * ai
	g := base.G * l.Ambient.G * ai
	b := base.B * l.Ambient.B * ai

	for _, lt := range l.Lights {
		ndl := vmath.V3FDot(n, lt.Dir)
		if ndl <= 0 {
			continue
		}
		half := vmath.V3FNormalize(vmath.V3FAdd(lt.Dir, toEye))
		s := math.Pow(max(0, vmath.V3FDot(n, half)), shininess) * (1 - m.Roughness)

		d := ndl * diffuseK * lt.Intensity
		r += lt.Color.R * (base.R*d + specular.R*s*lt.Intensity)
		g += lt.Color.G * (base.G*d + specular.G*s*lt.Intensity)
		b += lt.Color.B * (base.B*d + specular.B*s*lt.Intensity)
	}

	c := colorful.Color{
		R: toneMap(r * l.Exposure),
		G: toneMap(g * l.Exposure),
		B: toneMap(b * l.Exposure),
	}
	return l.Fog(c, dist)
}

// Fog blends c toward the background with squared exponential falloff
func (l *Lighting) Fog(c colorful.Color, dist float64) colorful.Color {
	fd := l.FogDensity * dist
	return c.BlendRgb(l.Background, 1-math.Exp(-fd*fd)).Clamped()
}

// toneMap is the Narkowicz ACES filmic fit
func toneMap(x float64) float64 {
	return vmath.Clamp((x*(2.51*x+0.03))/(x*(2.43*x+0.59)+0.14), 0, 1)
}
