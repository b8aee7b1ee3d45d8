// Package elevation draws the front view of a closet assembly as SVG or
// PNG, with overall measurements labeled in the spec's language.
package elevation

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/geometry"
	"github.com/philipparndt/gocloset/pkg/i18n"
)

// Options control the drawing
type Options struct {
	// Scale is pixels per centimeter
	Scale float64
	// Margin around the closet in pixels
	Margin float64
	// DoorsOpen leaves the doors out so shelves are visible
	DoorsOpen bool
}

// DefaultOptions draws at 3 px/cm with the doors closed
func DefaultOptions() Options {
	return Options{Scale: 3, Margin: 40}
}

// Anchor is the horizontal alignment of a label
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Rect is one part seen from the front, in pixels
type Rect struct {
	Name       string
	Kind       assembly.Kind
	X, Y, W, H float64
	Fill       closet.Color
}

// Label is a line of text, in pixels. Y is the baseline.
type Label struct {
	X, Y   float64
	Text   string
	Anchor Anchor
}

// Layout is a resolved drawing that the SVG and PNG writers render
type Layout struct {
	Width, Height float64
	Title         string
	RTL           bool
	Rects         []Rect
	Labels        []Label
}

const lineHeight = 18

// Plan projects the visible boxes of a onto the front plane, painting
// from back to front, and lays out localized measurement labels.
func Plan(a *assembly.Assembly, loc *i18n.Localizer, opts Options) Layout {
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}

	layout := Layout{
		Title: loc.T("frontElevation"),
		RTL:   loc.Direction() == i18n.RightToLeft,
	}
	if a.Bounds.IsEmpty() {
		layout.Width, layout.Height = 2*opts.Margin, 2*opts.Margin
		return layout
	}

	origin, size := a.Bounds.Min, a.Bounds.Size()
	drawingW, drawingH := size.X*opts.Scale, size.Y*opts.Scale
	toX := func(x float64) float64 { return opts.Margin + (x-origin.X)*opts.Scale }
	toY := func(y float64) float64 { return opts.Margin + (origin.Y+size.Y-y)*opts.Scale }

	boxes := a.Visible()
	slices.SortStableFunc(boxes, func(x, y assembly.Box) int {
		return cmp.Compare(x.Position.Z+x.Size.Z/2, y.Position.Z+y.Size.Z/2)
	})

	front := geometry.NewVector3(0, 0, 1)
	for _, box := range boxes {
		if opts.DoorsOpen && box.Kind == assembly.KindDoor {
			continue
		}
		lo := box.Position.Sub(box.Size.Half())
		layout.Rects = append(layout.Rects, Rect{
			Name: box.Name,
			Kind: box.Kind,
			X:    toX(lo.X),
			Y:    toY(lo.Y + box.Size.Y),
			W:    box.Size.X * opts.Scale,
			H:    box.Size.Y * opts.Scale,
			Fill: assembly.Lit(a.Lights, front, box.Color),
		})
	}

	unit := loc.T("unitCM")
	lines := []string{
		fmt.Sprintf("%s: %s %s", loc.T("overallWidth"), closet.FormatCM(a.Spec.Width), unit),
		fmt.Sprintf("%s: %s %s", loc.T("overallHeight"), closet.FormatCM(a.Spec.Height), unit),
		fmt.Sprintf("%s: %s %s", loc.T("doorWidth"), closet.FormatCM(a.Dims.DoorWidth), unit),
		fmt.Sprintf("%s: %s %s", loc.T("shelfHeight"), closet.FormatCM(a.Dims.ShelfHeight), unit),
	}
	if opts.DoorsOpen {
		lines = append(lines, loc.T("doorsOpen"))
	}

	x, anchor := opts.Margin, AnchorStart
	if layout.RTL {
		x, anchor = opts.Margin+drawingW, AnchorEnd
	}
	layout.Labels = append(layout.Labels, Label{X: opts.Margin + drawingW/2, Y: opts.Margin * 0.6, Text: layout.Title, Anchor: AnchorMiddle})
	top := opts.Margin + drawingH + lineHeight*1.5
	for i, line := range lines {
		layout.Labels = append(layout.Labels, Label{X: x, Y: top + float64(i)*lineHeight, Text: line, Anchor: anchor})
	}

	layout.Width = drawingW + 2*opts.Margin
	layout.Height = top + float64(len(lines))*lineHeight + opts.Margin/2
	return layout
}
