package assembly

import (
	"fmt"

	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/geometry"
)

// Role decides which of the spec's colors a part takes
type Role int

const (
	RoleStructure Role = iota
	RoleDoor
	RoleShelf
)

var roleNames = map[Role]string{
	RoleStructure: "structure",
	RoleDoor:      "door",
	RoleShelf:     "shelf",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Role) UnmarshalText(text []byte) error {
	for role, name := range roleNames {
		if name == string(text) {
			*r = role
			return nil
		}
	}
	return fmt.Errorf("unknown role %q", text)
}

// Kind identifies the structural part a box represents
type Kind int

const (
	KindSideBeam Kind = iota
	KindTopBeam
	KindBottomBeam
	KindBackPanel
	KindShelf
	KindDoor
)

var kindNames = map[Kind]string{
	KindSideBeam:   "side-beam",
	KindTopBeam:    "top-beam",
	KindBottomBeam: "bottom-beam",
	KindBackPanel:  "back-panel",
	KindShelf:      "shelf",
	KindDoor:       "door",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown part kind %q", text)
}

// IsFrame reports whether the part belongs to the outer shell
func (k Kind) IsFrame() bool {
	return k == KindSideBeam || k == KindTopBeam || k == KindBottomBeam || k == KindBackPanel
}

// Box is one rectangular solid of the assembly. Position is the center.
type Box struct {
	Name     string           `json:"name" yaml:"name"`
	Kind     Kind             `json:"kind" yaml:"kind"`
	Role     Role             `json:"role" yaml:"role"`
	Size     geometry.Vector3 `json:"size" yaml:"size"`
	Position geometry.Vector3 `json:"position" yaml:"position"`
	Color    closet.Color     `json:"color" yaml:"color"`
}

// Bounds returns the box's axis-aligned extent
func (b Box) Bounds() geometry.BoundingBox {
	return geometry.BoxAround(b.Position, b.Size)
}

// Triangles tessellates the box into 12 outward-facing triangles
func (b Box) Triangles() []geometry.Triangle {
	return geometry.Tessellate(b.Position, b.Size)
}

// Degenerate reports whether the box cannot be drawn, which happens
// when the spec was not validated (zero counts, oversized buffers).
func (b Box) Degenerate() bool {
	return !b.Size.IsFinite() || !b.Position.IsFinite() ||
		b.Size.X <= 0 || b.Size.Y <= 0 || b.Size.Z <= 0
}
