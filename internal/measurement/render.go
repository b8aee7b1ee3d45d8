package measurement

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gocloset/pkg/geometry"
)

// Colors per axis
var axisColors = map[Axis]rl.Color{
	AxisX: rl.NewColor(255, 110, 110, 255),
	AxisY: rl.NewColor(110, 220, 110, 255),
	AxisZ: rl.NewColor(100, 200, 255, 255),
}

// RenderContext carries what Draw needs for one frame
type RenderContext struct {
	Camera   rl.Camera3D
	Font     rl.Font
	FontSize float32
	// Shape rewrites label text before drawing, e.g. for right-to-left
	// languages. Nil leaves it unchanged.
	Shape func(string) string
}

// Draw projects the segments to screen space and draws each as a line
// with end ticks and a label at its midpoint. Labels that would overlap
// an earlier one are skipped.
func Draw(ctx RenderContext, segments []Segment) {
	// Fixed pixel sizes
	const (
		lineThickness = 2
		tickLength    = 6
		padding       = 4
	)

	var placed []rl.Rectangle
	for _, seg := range segments {
		color := axisColors[seg.Axis]
		p1 := project(seg.Start, ctx.Camera)
		p2 := project(seg.End, ctx.Camera)

		rl.DrawLineEx(p1, p2, lineThickness, color)

		// ticks perpendicular to the line on screen
		dir := rl.Vector2Normalize(rl.Vector2Subtract(p2, p1))
		normal := rl.Vector2{X: -dir.Y * tickLength, Y: dir.X * tickLength}
		for _, p := range []rl.Vector2{p1, p2} {
			rl.DrawLineEx(rl.Vector2Subtract(p, normal), rl.Vector2Add(p, normal), lineThickness, color)
		}

		text := seg.Text
		if ctx.Shape != nil {
			text = ctx.Shape(text)
		}
		label := Label{Text: text, ScreenPos: project(seg.Midpoint(), ctx.Camera), Color: color}
		size := rl.MeasureTextEx(ctx.Font, text, ctx.FontSize, 1)
		bounds := rl.Rectangle{
			X:      label.ScreenPos.X - size.X/2 - padding,
			Y:      label.ScreenPos.Y - size.Y/2 - padding,
			Width:  size.X + 2*padding,
			Height: size.Y + 2*padding,
		}
		if overlaps(bounds, placed) {
			continue
		}
		placed = append(placed, label.Draw(ctx.Font, ctx.FontSize, padding))
	}
}

func project(v geometry.Vector3, camera rl.Camera3D) rl.Vector2 {
	return rl.GetWorldToScreen(rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}, camera)
}

func overlaps(r rl.Rectangle, placed []rl.Rectangle) bool {
	for _, p := range placed {
		if rl.CheckCollisionRecs(r, p) {
			return true
		}
	}
	return false
}
