package specfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePartialYAMLKeepsDefaults(t *testing.T) {
	spec, err := Decode([]byte("width: 100\ndoorCount: 2\ndoorColor: \"#ffffff\"\nlanguage: he\n"), YAML)
	require.NoError(t, err)

	assert.Equal(t, 100.0, spec.Width)
	assert.Equal(t, 2, spec.DoorCount)
	assert.Equal(t, closet.Color{R: 255, G: 255, B: 255}, spec.DoorColor)
	assert.Equal(t, closet.Hebrew, spec.Language)
	assert.Equal(t, closet.DefaultSpec().Height, spec.Height)
	assert.Equal(t, closet.DefaultSpec().ShelfColor, spec.ShelfColor)
}

func TestDecodeTOML(t *testing.T) {
	spec, err := Decode([]byte("width = 120.5\nshelfCount = 7\nstructureColor = \"#000\"\n"), TOML)
	require.NoError(t, err)

	assert.Equal(t, 120.5, spec.Width)
	assert.Equal(t, 7, spec.ShelfCount)
	assert.Equal(t, closet.Color{}, spec.StructureColor)
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	_, err := Decode([]byte(`{"widht": 100}`), JSON)
	assert.Error(t, err)
}

func TestDecodeInvalidColor(t *testing.T) {
	_, err := Decode([]byte("doorColor: not-a-color\n"), YAML)
	assert.Error(t, err)
}

func TestSaveAndLoadEachFormat(t *testing.T) {
	dir := t.TempDir()
	spec := closet.DefaultSpec()
	spec.Width = 210
	spec.Language = closet.Hebrew

	for _, name := range []string{"closet.yaml", "closet.toml", "closet.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, spec), name)

		loaded, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, spec, loaded, name)
	}
}

func TestYAMLUsesHexColors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, closet.DefaultSpec(), YAML))
	assert.Regexp(t, `structureColor: ["']#8b5a2b["']`, buf.String())
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b/closet.YML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = FormatOf("closet.ini")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
