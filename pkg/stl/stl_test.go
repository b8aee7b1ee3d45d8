package stl

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
)

func defaultModel() (*assembly.Assembly, *Model) {
	spec := closet.DefaultSpec()
	a := assembly.Build(spec, closet.Compute(spec))
	return a, FromAssembly(a)
}

func TestFromAssemblyTessellatesVisibleBoxes(t *testing.T) {
	a, model := defaultModel()

	want := 12 * len(a.Visible())
	if model.TriangleCount() != want {
		t.Errorf("Expected %d triangles, got %d", want, model.TriangleCount())
	}
}

func TestModelBoundsMatchAssembly(t *testing.T) {
	a, model := defaultModel()

	got := model.BoundingBox().Size()
	want := a.Bounds.Size()
	if got.Distance(want) > 1e-9 {
		t.Errorf("Expected size %v, got %v", want, got)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	_, model := defaultModel()

	var buf bytes.Buffer
	if err := WriteBinary(&buf, model); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	if want := 84 + 50*model.TriangleCount(); buf.Len() != want {
		t.Errorf("Expected %d bytes, got %d", want, buf.Len())
	}

	read, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if read.TriangleCount() != model.TriangleCount() {
		t.Errorf("Expected %d triangles, got %d", model.TriangleCount(), read.TriangleCount())
	}
	if diff := math.Abs(read.SurfaceArea()-model.SurfaceArea()) / model.SurfaceArea(); diff > 1e-5 {
		t.Errorf("Surface area changed by %v", diff)
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	a, model := defaultModel()
	model = model.Scaled(MillimetersPerCentimeter)

	var buf bytes.Buffer
	if err := WriteASCII(&buf, model); err != nil {
		t.Fatalf("WriteASCII failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "solid closet\n") {
		t.Errorf("Unexpected header %q", buf.String()[:20])
	}

	read, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if read.Name != "closet" {
		t.Errorf("Expected name closet, got %q", read.Name)
	}
	if read.TriangleCount() != model.TriangleCount() {
		t.Errorf("Expected %d triangles, got %d", model.TriangleCount(), read.TriangleCount())
	}
	got, want := read.BoundingBox().Size().X, a.Bounds.Size().X*10
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Expected width %v mm, got %v", want, got)
	}
}

func TestZeroShelvesStillExports(t *testing.T) {
	spec := closet.DefaultSpec()
	spec.ShelfCount = 0
	model := FromAssembly(assembly.Build(spec, closet.Compute(spec)))

	var buf bytes.Buffer
	if err := WriteBinary(&buf, model); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
}
