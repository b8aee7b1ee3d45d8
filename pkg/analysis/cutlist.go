// Package analysis derives a cut list from a closet assembly: the
// panels to saw, their area and an estimate of the finished weight.
package analysis

import (
	"cmp"
	"slices"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/geometry"
)

// ParticleBoardDensity in kilograms per cubic meter
const ParticleBoardDensity = 650.0

const (
	cm2PerM2 = 100 * 100
	cm3PerM3 = 100 * 100 * 100
)

// Part is a group of identical panels
type Part struct {
	Kind      assembly.Kind `json:"kind" yaml:"kind"`
	Count     int           `json:"count" yaml:"count"`
	Length    float64       `json:"length" yaml:"length"`
	Width     float64       `json:"width" yaml:"width"`
	Thickness float64       `json:"thickness" yaml:"thickness"`
}

// Area returns the face area of one panel in square meters
func (p Part) Area() float64 {
	return p.Length * p.Width / cm2PerM2
}

// Volume returns the volume of one panel in cubic meters
func (p Part) Volume() float64 {
	return p.Length * p.Width * p.Thickness / cm3PerM3
}

// CutList is the bill of panels for one assembly
type CutList struct {
	Parts       []Part           `json:"parts" yaml:"parts"`
	Overall     geometry.Vector3 `json:"overall" yaml:"overall"`
	TotalArea   float64          `json:"totalArea" yaml:"totalArea"`
	TotalVolume float64          `json:"totalVolume" yaml:"totalVolume"`
	Weight      float64          `json:"weight" yaml:"weight"`
}

// Analyze groups the visible boxes of a by kind and size. Degenerate
// boxes are left out, so a door count of zero yields no door row.
func Analyze(a *assembly.Assembly) *CutList {
	list := &CutList{Parts: make([]Part, 0)}
	if !a.Bounds.IsEmpty() {
		list.Overall = a.Bounds.Size()
	}

	for _, box := range a.Visible() {
		part := panelOf(box)
		if i := slices.IndexFunc(list.Parts, part.sameAs); i >= 0 {
			list.Parts[i].Count++
		} else {
			list.Parts = append(list.Parts, part)
		}
	}

	slices.SortStableFunc(list.Parts, func(x, y Part) int {
		return cmp.Compare(x.Kind, y.Kind)
	})

	for _, p := range list.Parts {
		list.TotalArea += float64(p.Count) * p.Area()
		list.TotalVolume += float64(p.Count) * p.Volume()
	}
	list.Weight = list.TotalVolume * ParticleBoardDensity
	return list
}

// PanelCount returns the number of panels over all parts
func (c *CutList) PanelCount() int {
	n := 0
	for _, p := range c.Parts {
		n += p.Count
	}
	return n
}

// panelOf orders the box's edges so that Thickness is the smallest
func panelOf(box assembly.Box) Part {
	edges := []float64{box.Size.X, box.Size.Y, box.Size.Z}
	slices.SortFunc(edges, func(a, b float64) int { return cmp.Compare(b, a) })
	return Part{Kind: box.Kind, Count: 1, Length: edges[0], Width: edges[1], Thickness: edges[2]}
}

func (p Part) sameAs(other Part) bool {
	const eps = 1e-9
	near := func(a, b float64) bool { return a-b < eps && b-a < eps }
	return p.Kind == other.Kind && near(p.Length, other.Length) &&
		near(p.Width, other.Width) && near(p.Thickness, other.Thickness)
}
