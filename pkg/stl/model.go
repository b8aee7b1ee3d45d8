// Package stl writes closet assemblies as STL meshes and reads them
// back. Coordinates are written in centimeters unless scaled.
package stl

import (
	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/geometry"
)

// MillimetersPerCentimeter scales assemblies to the usual STL unit
const MillimetersPerCentimeter = 10.0

// Model is a named triangle soup
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromAssembly tessellates every visible box of the assembly
func FromAssembly(a *assembly.Assembly) *Model {
	model := NewModel("closet")
	for _, box := range a.Visible() {
		for _, tri := range box.Triangles() {
			model.AddTriangle(tri)
		}
	}
	return model
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Scaled returns a copy with every vertex multiplied by factor
func (m *Model) Scaled(factor float64) *Model {
	scaled := NewModel(m.Name)
	for _, t := range m.Triangles {
		scaled.AddTriangle(geometry.Triangle{
			Normal: t.Normal,
			V1:     t.V1.Mul(factor),
			V2:     t.V2.Mul(factor),
			V3:     t.V3.Mul(factor),
		})
	}
	return scaled
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
