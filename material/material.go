// Package material picks per-pipe appearance tokens.
// The simulation core treats a Material as opaque; only the renderer reads it.
package material

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Garyljackson/3d-pipes/vmath"
)

// Hues is the pipe palette as fractions of the color wheel
var Hues = []float64{0.0, 0.07, 0.14, 0.33, 0.50, 0.58, 0.66, 0.75, 0.85, 0.92}

// Surface response shared by every pipe
const (
	DefaultMetalness = 0.70
	DefaultRoughness = 0.20
)

// Material is a glossy pipe surface
type Material struct {
	Hue        float64 // [0,1)
	Saturation float64
	Lightness  float64
	Metalness  float64
	Roughness  float64
}

// Random draws a palette hue with jittered saturation and lightness
func Random(rng vmath.Source) Material {
	return Material{
		Hue:        Hues[rng.IntN(len(Hues))],
		Saturation: 0.7 + rng.Float64()*0.25,
		Lightness:  0.42 + rng.Float64()*0.2,
		Metalness:  DefaultMetalness,
		Roughness:  DefaultRoughness,
	}
}

// Color returns the base color
func (m Material) Color() colorful.Color {
	return colorful.Hsl(m.Hue*360, m.Saturation, m.Lightness).Clamped()
}

// RGB returns the base color as 8-bit channels
func (m Material) RGB() (r, g, b uint8) {
	return m.Color().RGB255()
}

// Shininess converts roughness to a Blinn-Phong exponent
func (m Material) Shininess() float64 {
	r := vmath.Clamp(m.Roughness, 0.02, 1)
	return 2/(r*r) - 2
}
