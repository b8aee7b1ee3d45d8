// Package measurement draws dimension lines for the overall width,
// height and depth of a closet on top of the 3D view.
package measurement

import (
	"fmt"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/geometry"
	"github.com/philipparndt/gocloset/pkg/i18n"
)

// Offset is the gap between the closet and its dimension lines in cm
const Offset = 8.0

// Axis identifies which extent a segment measures
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Segment is one dimension line with its label
type Segment struct {
	Axis  Axis
	Start geometry.Vector3
	End   geometry.Vector3
	Text  string
}

// Length returns the measured distance
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint is where the label goes
func (s Segment) Midpoint() geometry.Vector3 {
	return s.Start.Add(s.End).Half()
}

// Overall returns dimension lines along the bottom front edge, the left
// front edge and the bottom left edge of the assembly bounds. An empty
// assembly has none.
func Overall(a *assembly.Assembly, loc *i18n.Localizer) []Segment {
	b := a.Bounds
	if b.IsEmpty() {
		return nil
	}
	unit := loc.T("unitCM")
	label := func(id string, v float64) string {
		return fmt.Sprintf("%s %s %s", loc.T(id), closet.FormatCM(v), unit)
	}

	size := b.Size()
	front := b.Max.Z + Offset
	left := b.Min.X - Offset
	return []Segment{
		{
			Axis:  AxisX,
			Start: geometry.NewVector3(b.Min.X, b.Min.Y, front),
			End:   geometry.NewVector3(b.Max.X, b.Min.Y, front),
			Text:  label("width", size.X),
		},
		{
			Axis:  AxisY,
			Start: geometry.NewVector3(left, b.Min.Y, front),
			End:   geometry.NewVector3(left, b.Max.Y, front),
			Text:  label("height", size.Y),
		},
		{
			Axis:  AxisZ,
			Start: geometry.NewVector3(left, b.Min.Y, b.Min.Z),
			End:   geometry.NewVector3(left, b.Min.Y, b.Max.Z),
			Text:  label("depth", size.Z),
		},
	}
}
