package measurement

import (
	"math"
	"strings"
	"testing"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/geometry"
	"github.com/philipparndt/gocloset/pkg/i18n"
)

func TestOverallMatchesBounds(t *testing.T) {
	spec := closet.DefaultSpec()
	a := assembly.Build(spec, closet.Compute(spec))
	segments := Overall(a, i18n.New(closet.English))

	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}

	size := a.Bounds.Size()
	want := map[Axis]float64{AxisX: size.X, AxisY: size.Y, AxisZ: size.Z}
	for _, seg := range segments {
		if math.Abs(seg.Length()-want[seg.Axis]) > 1e-9 {
			t.Errorf("axis %d: length %f, want %f", seg.Axis, seg.Length(), want[seg.Axis])
		}
	}

	if seg := segments[0]; seg.Start.Z <= a.Bounds.Max.Z {
		t.Errorf("width line should sit in front of the closet, z=%f", seg.Start.Z)
	}
}

func TestOverallLabelsAreLocalized(t *testing.T) {
	spec := closet.DefaultSpec()
	spec.Language = closet.Hebrew
	a := assembly.Build(spec, closet.Compute(spec))
	loc := i18n.New(closet.Hebrew)

	for _, seg := range Overall(a, loc) {
		if seg.Text == "" {
			t.Fatal("empty label")
		}
	}
	if got := Overall(a, loc)[0].Text; !strings.HasPrefix(got, loc.T("width")) {
		t.Errorf("label %q does not start with %q", got, loc.T("width"))
	}
}

func TestOverallEmptyAssembly(t *testing.T) {
	if segs := Overall(&assembly.Assembly{Bounds: geometry.NewBoundingBox()}, i18n.New(closet.English)); segs != nil {
		t.Errorf("expected no segments, got %v", segs)
	}
}
