// Package configurator holds the configurator's editable state. Each
// edit is an Action reduced into a new closet.Spec; the Session turns
// every resulting change into fresh dimensions and a rebuilt scene.
package configurator

import (
	"github.com/philipparndt/gocloset/pkg/closet"
)

// Action is a single edit of the spec
type Action interface {
	apply(closet.Spec) closet.Spec
}

type (
	SetWidth          struct{ Value float64 }
	SetHeight         struct{ Value float64 }
	SetDepth          struct{ Value float64 }
	SetBufferWidth    struct{ Value float64 }
	SetDoorCount      struct{ Value int }
	SetShelfCount     struct{ Value int }
	SetStructureColor struct{ Value closet.Color }
	SetDoorColor      struct{ Value closet.Color }
	SetShelfColor     struct{ Value closet.Color }
	SetLanguage       struct{ Value closet.Language }
	// ReplaceSpec swaps the whole spec, e.g. after a spec file reload
	ReplaceSpec struct{ Spec closet.Spec }
)

func (a SetWidth) apply(s closet.Spec) closet.Spec          { s.Width = a.Value; return s }
func (a SetHeight) apply(s closet.Spec) closet.Spec         { s.Height = a.Value; return s }
func (a SetDepth) apply(s closet.Spec) closet.Spec          { s.Depth = a.Value; return s }
func (a SetBufferWidth) apply(s closet.Spec) closet.Spec    { s.BufferWidth = a.Value; return s }
func (a SetDoorCount) apply(s closet.Spec) closet.Spec      { s.DoorCount = a.Value; return s }
func (a SetShelfCount) apply(s closet.Spec) closet.Spec     { s.ShelfCount = a.Value; return s }
func (a SetStructureColor) apply(s closet.Spec) closet.Spec { s.StructureColor = a.Value; return s }
func (a SetDoorColor) apply(s closet.Spec) closet.Spec      { s.DoorColor = a.Value; return s }
func (a SetShelfColor) apply(s closet.Spec) closet.Spec     { s.ShelfColor = a.Value; return s }
func (a SetLanguage) apply(s closet.Spec) closet.Spec       { s.Language = a.Value; return s }
func (a ReplaceSpec) apply(closet.Spec) closet.Spec         { return a.Spec }

// Policy decides what happens to out-of-range input
type Policy int

const (
	// Clamp coerces every edit into the valid domain
	Clamp Policy = iota
	// Parity keeps raw input, so zero counts or oversized buffers
	// render as degenerate geometry
	Parity
)

// ParsePolicy maps "clamp" or "parity" to a Policy
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "clamp", "":
		return Clamp, true
	case "parity":
		return Parity, true
	}
	return Clamp, false
}

func (p Policy) String() string {
	if p == Parity {
		return "parity"
	}
	return "clamp"
}

// Reduce applies an action to spec and returns the new spec. The input
// is never modified.
func Reduce(spec closet.Spec, action Action, policy Policy) closet.Spec {
	next := action.apply(spec)
	if policy == Clamp {
		next = next.Clamp()
	}
	return next
}
