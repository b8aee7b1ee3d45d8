// Package assembly turns a closet spec and its derived dimensions into a
// renderable set of boxes, lights and a camera, and manages rebuilding
// that scene whenever the spec changes.
package assembly

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/geometry"
)

// Thickness is the wall thickness of frame members in centimeters
const Thickness = 2.0

// PanelThickness is the thickness of doors and shelves in centimeters
const PanelThickness = 1.0

// MaxPanels bounds the door and shelf boxes of one build. Unclamped
// specs can carry arbitrarily large counts; only the first MaxPanels of
// each are laid out.
const MaxPanels = 1000

// Assembly is one rendered closet configuration. Nothing in it refers
// to a previous assembly.
type Assembly struct {
	ID     uuid.UUID            `json:"id" yaml:"id"`
	Spec   closet.Spec          `json:"spec" yaml:"spec"`
	Dims   closet.Dimensions    `json:"dimensions" yaml:"dimensions"`
	Boxes  []Box                `json:"boxes" yaml:"boxes"`
	Lights []Light              `json:"lights" yaml:"lights"`
	Camera Camera               `json:"camera" yaml:"camera"`
	Bounds geometry.BoundingBox `json:"bounds" yaml:"bounds"`
}

// Build lays out the closet centered on X, standing on Y=0, with the
// back at Z=-depth/2 and the doors in front of Z=+depth/2.
func Build(spec closet.Spec, dims closet.Dimensions) *Assembly {
	a := &Assembly{
		ID:     uuid.New(),
		Spec:   spec,
		Dims:   dims,
		Bounds: geometry.NewBoundingBox(),
	}

	w, h, d := spec.Width, spec.Height, spec.Depth
	innerWidth := w - 2*Thickness
	innerHeight := h - 2*Thickness

	// Side beams
	sideX := w/2 - Thickness/2
	a.add(Box{Name: "side-left", Kind: KindSideBeam, Role: RoleStructure,
		Size:     geometry.NewVector3(Thickness, h, d),
		Position: geometry.NewVector3(-sideX, h/2, 0),
	})
	a.add(Box{Name: "side-right", Kind: KindSideBeam, Role: RoleStructure,
		Size:     geometry.NewVector3(Thickness, h, d),
		Position: geometry.NewVector3(sideX, h/2, 0),
	})

	// Top and bottom beams
	a.add(Box{Name: "top", Kind: KindTopBeam, Role: RoleStructure,
		Size:     geometry.NewVector3(innerWidth, Thickness, d),
		Position: geometry.NewVector3(0, h-Thickness/2, 0),
	})
	a.add(Box{Name: "bottom", Kind: KindBottomBeam, Role: RoleStructure,
		Size:     geometry.NewVector3(innerWidth, Thickness, d),
		Position: geometry.NewVector3(0, Thickness/2, 0),
	})

	// Back panel
	a.add(Box{Name: "back", Kind: KindBackPanel, Role: RoleStructure,
		Size:     geometry.NewVector3(innerWidth, innerHeight, Thickness),
		Position: geometry.NewVector3(0, h/2, -d/2+Thickness/2),
	})

	// Shelves are spaced over the interior with ShelfCount+1 gaps, which
	// is not the calculator's ShelfHeight.
	spacing := ShelfSpacing(h, spec.ShelfCount)
	for i := 1; i <= min(spec.ShelfCount, MaxPanels); i++ {
		a.add(Box{Name: fmt.Sprintf("shelf-%d", i), Kind: KindShelf, Role: RoleShelf,
			Size:     geometry.NewVector3(innerWidth, PanelThickness, d-Thickness),
			Position: geometry.NewVector3(0, Thickness+float64(i)*spacing, Thickness/2),
		})
	}

	// Doors, left to right with a Thickness gap around and between them.
	// The calculator's door width ignores these gaps, so the doors may
	// overhang the frame.
	doorZ := d/2 + PanelThickness/2
	for i := 0; i < min(spec.DoorCount, MaxPanels); i++ {
		x := -w/2 + Thickness + float64(i)*(dims.DoorWidth+Thickness) + dims.DoorWidth/2
		a.add(Box{Name: fmt.Sprintf("door-%d", i+1), Kind: KindDoor, Role: RoleDoor,
			Size:     geometry.NewVector3(dims.DoorWidth, innerHeight, PanelThickness),
			Position: geometry.NewVector3(x, h/2, doorZ),
		})
	}

	white := closet.Color{R: 0xff, G: 0xff, B: 0xff}
	center := geometry.NewVector3(0, h/2, 0)
	a.Lights = []Light{
		{Kind: AmbientLight, Color: white, Intensity: AmbientIntensity},
		{Kind: DirectionalLight, Color: white, Intensity: DirectionalIntensity,
			Position: geometry.NewVector3(w, 2*h, CameraDistanceFactor*d),
			Target:   center,
		},
	}

	a.Camera = NewCamera(geometry.NewVector3(0, h/2, d*CameraDistanceFactor), center)
	return a
}

// ShelfSpacing is the vertical distance between shelves in the scene
func ShelfSpacing(height float64, shelfCount int) float64 {
	return (height - 2*Thickness) / float64(shelfCount+1)
}

func (a *Assembly) add(b Box) {
	switch b.Role {
	case RoleStructure:
		b.Color = a.Spec.StructureColor
	case RoleDoor:
		b.Color = a.Spec.DoorColor
	case RoleShelf:
		b.Color = a.Spec.ShelfColor
	}
	a.Boxes = append(a.Boxes, b)
	if !b.Degenerate() {
		a.Bounds.Union(b.Bounds())
	}
}

// Count returns how many boxes of the given kind the assembly holds
func (a *Assembly) Count(kind Kind) int {
	n := 0
	for _, b := range a.Boxes {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// Visible returns the boxes that can be drawn
func (a *Assembly) Visible() []Box {
	boxes := make([]Box, 0, len(a.Boxes))
	for _, b := range a.Boxes {
		if !b.Degenerate() {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

// Triangles tessellates all drawable boxes
func (a *Assembly) Triangles() []geometry.Triangle {
	visible := a.Visible()
	triangles := make([]geometry.Triangle, 0, len(visible)*12)
	for _, b := range visible {
		triangles = append(triangles, b.Triangles()...)
	}
	return triangles
}
