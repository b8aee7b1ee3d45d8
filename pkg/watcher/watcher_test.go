package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/specfile"
)

func nextUpdate(t *testing.T, w *SpecWatcher) Update {
	t.Helper()
	select {
	case u := <-w.Updates():
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for update")
	}
	return Update{}
}

func TestReloadOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closet.yaml")
	require.NoError(t, specfile.Save(path, closet.DefaultSpec()))

	w, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	spec := closet.DefaultSpec()
	spec.DoorCount = 5
	require.NoError(t, specfile.Save(path, spec))

	u := nextUpdate(t, w)
	require.NoError(t, u.Err)
	assert.Equal(t, 5, u.Spec.DoorCount)
	assert.Equal(t, w.Path(), u.Path)
}

func TestReloadReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 100\n"), 0o644))

	w, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("structureColor: nope\n"), 0o644))

	u := nextUpdate(t, w)
	assert.Error(t, u.Err)
}

func TestIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "closet.yaml")
	require.NoError(t, specfile.Save(path, closet.DefaultSpec()))

	w, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("width: 1\n"), 0o644))

	select {
	case u := <-w.Updates():
		t.Fatalf("unexpected update %+v", u)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closet.yaml")
	require.NoError(t, specfile.Save(path, closet.DefaultSpec()))

	w, err := New(path, DefaultDebounce)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Updates()
	assert.False(t, ok)
}
