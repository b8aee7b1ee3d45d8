package assembly

import (
	"math"
	"testing"

	"github.com/philipparndt/gocloset/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestOrbitControlsDampedRotation(t *testing.T) {
	c := NewOrbitControls(geometry.NewVector3(0, 100, 300), geometry.NewVector3(0, 100, 0))
	start := c.Azimuth

	c.Rotate(1, 0)
	assert.True(t, c.Update(), "motion remains after the first frame")
	assert.InDelta(t, start+DefaultDampingFactor, c.Azimuth, 1e-9)

	for c.Update() {
	}
	assert.InDelta(t, start+1, c.Azimuth, 1e-4)
}

func TestOrbitControlsClampPolar(t *testing.T) {
	c := NewOrbitControls(geometry.NewVector3(0, 100, 300), geometry.NewVector3(0, 100, 0))
	c.DampingFactor = 1

	c.Rotate(0, 10)
	c.Update()
	assert.InDelta(t, math.Pi/2, c.Polar, 1e-9)

	c.Rotate(0, -10)
	c.Update()
	assert.InDelta(t, 0.1, c.Polar, 1e-9)
	assert.Greater(t, c.Position().Y, 100.0)
}

func TestOrbitControlsZoomClamped(t *testing.T) {
	c := NewOrbitControls(geometry.NewVector3(0, 0, 100), geometry.Vector3{})
	c.Zoom(100)
	c.Update()
	assert.InDelta(t, 400, c.Distance, 1e-9)

	c.Zoom(-0.999)
	c.Update()
	assert.InDelta(t, 10, c.Distance, 1e-9)
}

func TestDisposedControlsIgnoreInput(t *testing.T) {
	c := NewOrbitControls(geometry.NewVector3(0, 0, 100), geometry.Vector3{})
	c.Dispose()
	before := c
	c.Rotate(1, 1)
	c.Zoom(1)
	assert.False(t, c.Update())
	assert.Equal(t, before.Azimuth, c.Azimuth)
	assert.Equal(t, before.Distance, c.Distance)
}

func TestCameraResizeAndProject(t *testing.T) {
	cam := NewCamera(geometry.NewVector3(0, 120, 180), geometry.NewVector3(0, 120, 0))
	cam.Resize(1200, 600)
	assert.InDelta(t, 2, cam.Aspect, 1e-9)

	x, y, z := cam.Project(cam.Target, 1200, 600)
	assert.InDelta(t, 600, x, 1e-9)
	assert.InDelta(t, 300, y, 1e-9)
	assert.InDelta(t, 180, z, 1e-9)

	_, _, behind := cam.Project(geometry.NewVector3(0, 120, 400), 1200, 600)
	assert.LessOrEqual(t, behind, 0.0)
}

func TestOrbitControlsPresetsAndReset(t *testing.T) {
	target := geometry.NewVector3(0, 120, 0)
	c := NewOrbitControls(geometry.NewVector3(0, 120, 180), target)

	c.Preset(ViewTop)
	assert.InDelta(t, 0.1, c.Polar, 1e-9)

	c.Preset(ViewRight)
	pos := c.Position()
	assert.InDelta(t, 180, pos.X, 1e-9)
	assert.InDelta(t, 120, pos.Y, 1e-9)

	c.Preset(ViewLeft)
	assert.InDelta(t, -180, c.Position().X, 1e-9)

	c.Zoom(1)
	c.Rotate(0.5, 0)
	c.Reset()
	assert.False(t, c.Update())
	assert.InDelta(t, 0, c.Azimuth, 1e-9)
	assert.InDelta(t, 180, c.Distance, 1e-9)
	assert.InDelta(t, 180, c.Position().Z, 1e-9)
}
