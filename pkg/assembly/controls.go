package assembly

import (
	"math"

	"github.com/philipparndt/gocloset/pkg/geometry"
)

// Orbit control defaults
const (
	DefaultDampingFactor = 0.05
	minPolarAngle        = 0.1
	maxPolarAngle        = math.Pi / 2
)

// OrbitControls orbits a camera around a target on a sphere. Polar is
// measured from the +Y axis, Azimuth around Y starting at +Z. Rotation
// and zoom input is accumulated and applied with damping by Update.
type OrbitControls struct {
	Target        geometry.Vector3 `json:"target" yaml:"target"`
	Distance      float64          `json:"distance" yaml:"distance"`
	Polar         float64          `json:"polar" yaml:"polar"`
	Azimuth       float64          `json:"azimuth" yaml:"azimuth"`
	DampingFactor float64          `json:"dampingFactor" yaml:"dampingFactor"`
	MinPolar      float64          `json:"minPolar" yaml:"minPolar"`
	MaxPolar      float64          `json:"maxPolar" yaml:"maxPolar"`
	MinDistance   float64          `json:"minDistance" yaml:"minDistance"`
	MaxDistance   float64          `json:"maxDistance" yaml:"maxDistance"`

	deltaPolar   float64
	deltaAzimuth float64
	zoomScale    float64
	disposed     bool

	homeAzimuth, homePolar, homeDistance float64
}

// NewOrbitControls derives the spherical state from a camera position
// looking at target.
func NewOrbitControls(position, target geometry.Vector3) OrbitControls {
	offset := position.Sub(target)
	distance := offset.Length()
	c := OrbitControls{
		Target:        target,
		Distance:      distance,
		DampingFactor: DefaultDampingFactor,
		MinPolar:      minPolarAngle,
		MaxPolar:      maxPolarAngle,
		MinDistance:   distance / 10,
		MaxDistance:   distance * 4,
		zoomScale:     1,
	}
	if distance > 0 {
		c.Polar = math.Acos(math.Max(-1, math.Min(1, offset.Y/distance)))
		c.Azimuth = math.Atan2(offset.X, offset.Z)
	}
	c.clamp()
	c.homeAzimuth, c.homePolar, c.homeDistance = c.Azimuth, c.Polar, c.Distance
	return c
}

// Rotate queues a rotation in radians; Update applies it
func (c *OrbitControls) Rotate(deltaAzimuth, deltaPolar float64) {
	if c.disposed {
		return
	}
	c.deltaAzimuth += deltaAzimuth
	c.deltaPolar += deltaPolar
}

// Zoom queues a change of distance; amount > 0 moves away
func (c *OrbitControls) Zoom(amount float64) {
	if c.disposed {
		return
	}
	if c.zoomScale == 0 {
		c.zoomScale = 1
	}
	c.zoomScale *= 1 + amount
}

// SetView jumps to the given angles without damping
func (c *OrbitControls) SetView(azimuth, polar float64) {
	c.Azimuth = azimuth
	c.Polar = polar
	c.deltaAzimuth, c.deltaPolar = 0, 0
	c.clamp()
}

// View is a named camera preset
type View int

const (
	ViewFront View = iota
	ViewTop
	ViewLeft
	ViewRight
)

// Preset jumps to a named view. The top view stops at the polar clamp.
func (c *OrbitControls) Preset(v View) {
	switch v {
	case ViewFront:
		c.SetView(0, math.Pi/2)
	case ViewTop:
		c.SetView(0, 0)
	case ViewLeft:
		c.SetView(-math.Pi/2, math.Pi/2)
	case ViewRight:
		c.SetView(math.Pi/2, math.Pi/2)
	}
}

// Reset returns to the angles and distance the controls started with
func (c *OrbitControls) Reset() {
	c.Azimuth, c.Polar, c.Distance = c.homeAzimuth, c.homePolar, c.homeDistance
	c.deltaAzimuth, c.deltaPolar = 0, 0
	c.zoomScale = 1
}

// Update advances the controls by one frame and reports whether any
// queued motion remains.
func (c *OrbitControls) Update() bool {
	damping := c.DampingFactor
	if damping <= 0 || damping > 1 {
		damping = 1
	}

	c.Azimuth += c.deltaAzimuth * damping
	c.Polar += c.deltaPolar * damping
	c.deltaAzimuth *= 1 - damping
	c.deltaPolar *= 1 - damping

	if c.zoomScale != 0 && c.zoomScale != 1 {
		c.Distance *= c.zoomScale
		c.zoomScale = 1
	}
	c.clamp()

	const rest = 1e-6
	return math.Abs(c.deltaAzimuth) > rest || math.Abs(c.deltaPolar) > rest
}

// Position returns the camera position for the current angles
func (c OrbitControls) Position() geometry.Vector3 {
	sinPolar := math.Sin(c.Polar)
	offset := geometry.NewVector3(
		c.Distance*sinPolar*math.Sin(c.Azimuth),
		c.Distance*math.Cos(c.Polar),
		c.Distance*sinPolar*math.Cos(c.Azimuth),
	)
	return c.Target.Add(offset)
}

// Dispose stops the controls from accepting input
func (c *OrbitControls) Dispose() {
	c.disposed = true
	c.deltaAzimuth, c.deltaPolar = 0, 0
	c.zoomScale = 1
}

// Disposed reports whether Dispose was called
func (c OrbitControls) Disposed() bool {
	return c.disposed
}

func (c *OrbitControls) clamp() {
	if c.MaxPolar > c.MinPolar {
		c.Polar = math.Max(c.MinPolar, math.Min(c.MaxPolar, c.Polar))
	}
	if c.MaxDistance > c.MinDistance && c.MinDistance > 0 {
		c.Distance = math.Max(c.MinDistance, math.Min(c.MaxDistance, c.Distance))
	}
}
