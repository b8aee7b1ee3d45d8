package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/configurator"
)

const (
	rotateSpeed = 0.01
	zoomSpeed   = 0.1
)

// handleInput processes keyboard and mouse input for one frame
func (v *Viewer) handleInput() {
	spec := v.session.Spec()

	switch {
	case rl.IsKeyPressed(rl.KeyRight):
		v.dispatch(configurator.SetDoorCount{Value: spec.DoorCount + 1})
	case rl.IsKeyPressed(rl.KeyLeft):
		v.dispatch(configurator.SetDoorCount{Value: spec.DoorCount - 1})
	case rl.IsKeyPressed(rl.KeyUp):
		v.dispatch(configurator.SetShelfCount{Value: spec.ShelfCount + 1})
	case rl.IsKeyPressed(rl.KeyDown):
		v.dispatch(configurator.SetShelfCount{Value: spec.ShelfCount - 1})
	case rl.IsKeyPressed(rl.KeyL):
		next := closet.Hebrew
		if spec.Language == closet.Hebrew {
			next = closet.English
		}
		v.dispatch(configurator.SetLanguage{Value: next})
	}

	if v.scene == nil {
		return
	}
	controls := &v.scene.Camera.Controls

	// Camera view preset shortcuts
	switch {
	case rl.IsKeyPressed(rl.KeyHome):
		controls.Reset()
	case rl.IsKeyPressed(rl.KeyOne):
		controls.Preset(assembly.ViewFront)
	case rl.IsKeyPressed(rl.KeyT):
		controls.Preset(assembly.ViewTop)
	case rl.IsKeyPressed(rl.KeyThree):
		controls.Preset(assembly.ViewLeft)
	case rl.IsKeyPressed(rl.KeyFour):
		controls.Preset(assembly.ViewRight)
	case rl.IsKeyPressed(rl.KeyM):
		v.showDimensions = !v.showDimensions
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			controls.Rotate(-float64(delta.X)*rotateSpeed, -float64(delta.Y)*rotateSpeed)
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		controls.Zoom(-float64(wheel) * zoomSpeed)
	}
}

// updateCamera applies damping and follows window resizes
func (v *Viewer) updateCamera() {
	if v.scene == nil {
		return
	}
	if rl.IsWindowResized() {
		v.scene.Camera.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}
	v.scene.Camera.Update()
	v.syncCamera()
}

func (v *Viewer) syncCamera() {
	c := v.scene.Camera
	v.camera = rl.Camera3D{
		Position:   toRL(c.Position.X, c.Position.Y, c.Position.Z),
		Target:     toRL(c.Target.X, c.Target.Y, c.Target.Z),
		Up:         toRL(c.Up.X, c.Up.Y, c.Up.Z),
		Fovy:       float32(c.FOV),
		Projection: rl.CameraPerspective,
	}
}
