// Package openscad writes closet assemblies as OpenSCAD source and
// renders them with the openscad binary when it is installed.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/geometry"
)

// Write emits one colored cube per visible box. OpenSCAD is Z-up, so
// the scene's Y (height) becomes Z and depth flips onto -Y.
func Write(w io.Writer, a *assembly.Assembly) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// closet %s\n", a.ID)
	fmt.Fprintf(bw, "// width=%s height=%s depth=%s doors=%d shelves=%d\n\n",
		num(a.Spec.Width), num(a.Spec.Height), num(a.Spec.Depth), a.Spec.DoorCount, a.Spec.ShelfCount)

	for _, box := range a.Visible() {
		corner := toSCAD(box.Position.Sub(box.Size.Half()))
		size := geometry.NewVector3(box.Size.X, box.Size.Z, box.Size.Y)
		// the -Y flip moves the corner to the far side
		corner.Y -= size.Y

		fmt.Fprintf(bw, "// %s\n", box.Name)
		fmt.Fprintf(bw, "color(%s) translate([%s, %s, %s]) cube([%s, %s, %s]);\n",
			colorVector(box.Color),
			num(corner.X), num(corner.Y), num(corner.Z),
			num(size.X), num(size.Y), num(size.Z))
	}
	return bw.Flush()
}

func toSCAD(v geometry.Vector3) geometry.Vector3 {
	return geometry.NewVector3(v.X, -v.Z, v.Y)
}

func colorVector(c closet.Color) string {
	return fmt.Sprintf("[%s, %s, %s]",
		num(float64(c.R)/255), num(float64(c.G)/255), num(float64(c.B)/255))
}

func num(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
