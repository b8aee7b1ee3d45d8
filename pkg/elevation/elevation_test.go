package elevation

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/i18n"
)

func build(spec closet.Spec) *assembly.Assembly {
	return assembly.Build(spec, closet.Compute(spec))
}

func TestPlanOneRectPerVisiblePart(t *testing.T) {
	a := build(closet.DefaultSpec())
	layout := Plan(a, i18n.New(closet.English), DefaultOptions())

	assert.Len(t, layout.Rects, len(a.Visible()))
	assert.Equal(t, assembly.KindBackPanel, layout.Rects[0].Kind)
	assert.Equal(t, assembly.KindDoor, layout.Rects[len(layout.Rects)-1].Kind)
}

func TestPlanDoorsOpenHidesDoors(t *testing.T) {
	a := build(closet.DefaultSpec())
	opts := DefaultOptions()
	opts.DoorsOpen = true
	layout := Plan(a, i18n.New(closet.English), opts)

	assert.Len(t, layout.Rects, len(a.Visible())-3)
	for _, r := range layout.Rects {
		assert.NotEqual(t, assembly.KindDoor, r.Kind)
	}
}

func TestPlanScalesBottomBeam(t *testing.T) {
	a := build(closet.DefaultSpec())
	opts := Options{Scale: 2, Margin: 10}
	layout := Plan(a, i18n.New(closet.English), opts)

	var bottom Rect
	for _, r := range layout.Rects {
		if r.Kind == assembly.KindBottomBeam {
			bottom = r
		}
	}
	assert.InDelta(t, 176*2, bottom.W, 1e-9)
	assert.InDelta(t, 2*2, bottom.H, 1e-9)
	// the floor is at the bottom of the drawing
	assert.InDelta(t, 10+a.Bounds.Size().Y*2, bottom.Y+bottom.H, 1e-9)
}

func TestPlanHebrewIsRightToLeft(t *testing.T) {
	a := build(closet.DefaultSpec())
	layout := Plan(a, i18n.New(closet.Hebrew), DefaultOptions())

	assert.True(t, layout.RTL)
	assert.Equal(t, "מבט חזית", layout.Title)
	assert.Equal(t, AnchorEnd, layout.Labels[1].Anchor)
	assert.Contains(t, layout.Labels[1].Text, "רוחב כולל")
}

func TestPlanFormatsNonFiniteMeasurements(t *testing.T) {
	spec := closet.DefaultSpec()
	spec.ShelfCount = 0
	layout := Plan(build(spec), i18n.New(closet.English), DefaultOptions())

	var found bool
	for _, l := range layout.Labels {
		if strings.HasPrefix(l.Text, "Shelf Height") {
			found = true
			assert.Contains(t, l.Text, closet.NotANumber)
		}
	}
	assert.True(t, found)
}

func TestWriteSVG(t *testing.T) {
	a := build(closet.DefaultSpec())
	layout := Plan(a, i18n.New(closet.English), DefaultOptions())

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, layout))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, len(a.Visible()), strings.Count(out, "data-part="))
	assert.Contains(t, out, `data-part="door-3"`)
	assert.Contains(t, out, "Overall Width: 180 cm")
}

func TestWritePNG(t *testing.T) {
	layout := Plan(build(closet.DefaultSpec()), i18n.New(closet.English), DefaultOptions())

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, layout))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, px(layout.Width), img.Bounds().Dx())
	assert.Equal(t, px(layout.Height), img.Bounds().Dy())
}
