package assembly

import (
	"math"

	"github.com/philipparndt/gocloset/pkg/geometry"
)

// Camera defaults
const (
	FieldOfView          = 75.0 // degrees, vertical
	NearPlane            = 0.1
	FarPlane             = 10000
	CameraDistanceFactor = 3.0
)

// Camera is a perspective camera driven by orbit controls
type Camera struct {
	Position geometry.Vector3 `json:"position" yaml:"position"`
	Target   geometry.Vector3 `json:"target" yaml:"target"`
	Up       geometry.Vector3 `json:"up" yaml:"up"`
	FOV      float64          `json:"fov" yaml:"fov"`
	Near     float64          `json:"near" yaml:"near"`
	Far      float64          `json:"far" yaml:"far"`
	Aspect   float64          `json:"aspect" yaml:"aspect"`
	Controls OrbitControls    `json:"controls" yaml:"controls"`
}

// NewCamera creates a camera at position looking at target
func NewCamera(position, target geometry.Vector3) Camera {
	return Camera{
		Position: position,
		Target:   target,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      FieldOfView,
		Near:     NearPlane,
		Far:      FarPlane,
		Aspect:   1,
		Controls: NewOrbitControls(position, target),
	}
}

// Resize keeps the aspect ratio in sync with the viewport
func (c *Camera) Resize(width, height float64) {
	if width > 0 && height > 0 {
		c.Aspect = width / height
	}
}

// Update advances the orbit controls and moves the camera accordingly.
// It reports whether the camera is still in motion.
func (c *Camera) Update() bool {
	moving := c.Controls.Update()
	c.Position = c.Controls.Position()
	c.Target = c.Controls.Target
	return moving
}

// Project maps a point to viewport pixel coordinates. The third value
// is the view-space depth; points behind the camera have depth <= 0.
func (c Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)
	if z <= c.Near {
		return 0, 0, z
	}

	fovScale := math.Tan(c.FOV * math.Pi / 360)
	aspect := width / height

	screenX := (x/(z*fovScale*aspect))*(width/2) + width/2
	screenY := (-y/(z*fovScale))*(height/2) + height/2
	return screenX, screenY, z
}
