// Package closet holds the closet parameters a user edits and the
// formulas that derive door, shelf and beam sizes from them.
//
// Every function here is pure and safe to call on each keystroke.
// Nothing guards against a zero door or shelf count: the division
// follows IEEE rules and yields Inf or NaN. Callers that want sane
// numbers validate or clamp the Spec first.
package closet

// RevealAllowance is the frame allowance in centimeters taken off the
// top and the bottom of door and internal beam heights.
const RevealAllowance = 1.7

const (
	externalBeams = 2
	internalBeams = 2
)

// Dimensions are the sub-part sizes derived from a Spec
type Dimensions struct {
	DoorWidth          float64 `json:"doorWidth" yaml:"doorWidth"`
	DoorHeight         float64 `json:"doorHeight" yaml:"doorHeight"`
	InternalBeamHeight float64 `json:"internalBeamHeight" yaml:"internalBeamHeight"`
	ShelfWidth         float64 `json:"shelfWidth" yaml:"shelfWidth"`
	ShelfHeight        float64 `json:"shelfHeight" yaml:"shelfHeight"`
	ShelfDepth         float64 `json:"shelfDepth" yaml:"shelfDepth"`
	ExternalBeamCount  int     `json:"externalBeamCount" yaml:"externalBeamCount"`
	InternalBeamCount  int     `json:"internalBeamCount" yaml:"internalBeamCount"`
}

// Compute derives all dimensions from a spec
func Compute(spec Spec) Dimensions {
	return Dimensions{
		DoorWidth:          DoorWidth(spec.Width, spec.BufferWidth, spec.DoorCount),
		DoorHeight:         DoorHeight(spec.Height),
		InternalBeamHeight: InternalBeamHeight(spec.Height),
		ShelfWidth:         ShelfWidth(spec.Width, spec.BufferWidth, spec.ShelfCount),
		ShelfHeight:        ShelfHeight(spec.Height, spec.ShelfCount),
		ShelfDepth:         ShelfDepth(spec.Depth),
		ExternalBeamCount:  ExternalBeamCount(),
		InternalBeamCount:  InternalBeamCount(),
	}
}

// DoorWidth splits the width left after one buffer on each side evenly
// across the doors. Gaps between doors are not subtracted.
func DoorWidth(width, bufferWidth float64, doorCount int) float64 {
	return (width - 2*bufferWidth) / float64(doorCount)
}

// DoorHeight returns the height of a door
func DoorHeight(height float64) float64 {
	return height - 2*RevealAllowance
}

// InternalBeamHeight returns the height of an internal beam.
// It currently equals DoorHeight but is kept as its own rule.
func InternalBeamHeight(height float64) float64 {
	return height - RevealAllowance*2
}

// ShelfWidth returns (width - 2*bufferWidth) / shelfCount
func ShelfWidth(width, bufferWidth float64, shelfCount int) float64 {
	return (width - 2*bufferWidth) / float64(shelfCount)
}

// ShelfHeight returns height / shelfCount
func ShelfHeight(height float64, shelfCount int) float64 {
	return height / float64(shelfCount)
}

// ShelfDepth returns the shelf depth; shelves span the full depth
func ShelfDepth(depth float64) float64 {
	return depth
}

// ExternalBeamCount is the number of external beams, independent of input
func ExternalBeamCount() int {
	return externalBeams
}

// InternalBeamCount is the number of internal beams, independent of input
func InternalBeamCount() int {
	return internalBeams
}
