package assembly

import (
	"math"

	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/geometry"
)

// LightKind distinguishes the light types the scene uses
type LightKind string

const (
	AmbientLight     LightKind = "ambient"
	DirectionalLight LightKind = "directional"
)

// Fixed light intensities
const (
	AmbientIntensity     = 0.6
	DirectionalIntensity = 0.8
)

// Light is an ambient or directional light. A directional light shines
// from Position toward Target.
type Light struct {
	Kind      LightKind        `json:"kind" yaml:"kind"`
	Color     closet.Color     `json:"color" yaml:"color"`
	Intensity float64          `json:"intensity" yaml:"intensity"`
	Position  geometry.Vector3 `json:"position,omitempty" yaml:"position,omitempty"`
	Target    geometry.Vector3 `json:"target,omitempty" yaml:"target,omitempty"`
}

// Direction returns the unit vector the light travels along
func (l Light) Direction() geometry.Vector3 {
	return l.Target.Sub(l.Position).Normalize()
}

// Illuminance returns the light intensity reaching a surface with the
// given normal, capped at 1.
func Illuminance(lights []Light, normal geometry.Vector3) float64 {
	total := 0.0
	for _, l := range lights {
		switch l.Kind {
		case AmbientLight:
			total += l.Intensity
		case DirectionalLight:
			total += l.Intensity * math.Max(0, -normal.Dot(l.Direction()))
		}
	}
	return math.Min(total, 1)
}

// Lit returns base shaded for a surface facing normal
func Lit(lights []Light, normal geometry.Vector3, base closet.Color) closet.Color {
	return base.Shade(Illuminance(lights, normal))
}
