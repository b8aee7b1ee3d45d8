package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
)

func newSpecCommand(t *testing.T, argv ...string) (*cobra.Command, *specFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	f := addSpecFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(argv))
	return cmd, f
}

func TestResolveAppliesChangedFlags(t *testing.T) {
	cmd, f := newSpecCommand(t, "--width", "200", "--doors", "4", "--door-color", "#112233", "--lang", "he")
	spec, err := f.resolve(cmd, nil)
	require.NoError(t, err)

	assert.Equal(t, 200.0, spec.Width)
	assert.Equal(t, 4, spec.DoorCount)
	assert.Equal(t, closet.Color{R: 0x11, G: 0x22, B: 0x33}, spec.DoorColor)
	assert.Equal(t, closet.Hebrew, spec.Language)
	assert.Equal(t, closet.DefaultSpec().Height, spec.Height)
}

func TestResolveRejectsInvalidUnlessClamped(t *testing.T) {
	cmd, f := newSpecCommand(t, "--shelves", "42")
	_, err := f.resolve(cmd, nil)
	assert.Error(t, err)

	cmd, f = newSpecCommand(t, "--shelves", "42", "--clamp")
	spec, err := f.resolve(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, closet.MaxShelves, spec.ShelfCount)
}

func TestResolveRejectsBadColor(t *testing.T) {
	cmd, f := newSpecCommand(t, "--shelf-color", "brown")
	_, err := f.resolve(cmd, nil)
	assert.ErrorContains(t, err, "--shelf-color")
}

func TestFormatFromExtension(t *testing.T) {
	assert.Equal(t, "scad", formatFromExtension("closet.SCAD"))
	assert.Equal(t, "svg", formatFromExtension("front.svg"))
	assert.Equal(t, "png", formatFromExtension("front.png"))
	assert.Equal(t, "stl", formatFromExtension("closet.stl"))
	assert.Equal(t, "stl", formatFromExtension(""))
}

func TestWriteExportFormats(t *testing.T) {
	spec := closet.DefaultSpec()
	a := assembly.Build(spec, closet.Compute(spec))

	for _, format := range []string{"stl", "stl-ascii", "scad", "svg", "png"} {
		var buf bytes.Buffer
		require.NoError(t, writeExport(&buf, a, format), format)
		assert.NotZero(t, buf.Len(), format)
	}

	assert.Error(t, writeExport(&bytes.Buffer{}, a, "obj"))
}
