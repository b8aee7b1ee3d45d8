package assembly

import (
	"testing"

	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	loaded   []*Assembly
	released int
}

func (r *recordingRenderer) Load(a *Assembly) { r.loaded = append(r.loaded, a) }
func (r *recordingRenderer) Release()         { r.released++ }

func TestRebuildReplacesAssembly(t *testing.T) {
	r := &recordingRenderer{}
	b := NewBuilder(r)

	spec := closet.DefaultSpec()
	first, err := b.Rebuild(spec, closet.Compute(spec))
	require.NoError(t, err)

	spec.ShelfCount = 8
	second, err := b.Rebuild(spec, closet.Compute(spec))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Same(t, second, b.Current())
	assert.Equal(t, 8, b.Current().Count(KindShelf))
	assert.Equal(t, 2, b.Builds())
	assert.Len(t, r.loaded, 2)
	assert.True(t, first.Camera.Controls.Disposed(), "old controls are disposed")
	assert.False(t, second.Camera.Controls.Disposed())
}

func TestCloseReleasesOnce(t *testing.T) {
	r := &recordingRenderer{}
	b := NewBuilder(r)

	spec := closet.DefaultSpec()
	_, err := b.Rebuild(spec, closet.Compute(spec))
	require.NoError(t, err)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	assert.Equal(t, 1, r.released)

	_, err = b.Rebuild(spec, closet.Compute(spec))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestBuilderWithoutRenderer(t *testing.T) {
	b := NewBuilder(nil)
	spec := closet.DefaultSpec()
	a, err := b.Rebuild(spec, closet.Compute(spec))
	require.NoError(t, err)
	assert.NotNil(t, a)
	assert.NoError(t, b.Close())
}
