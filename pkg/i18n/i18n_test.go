package i18n

import (
	"testing"

	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/stretchr/testify/assert"
)

func TestTranslations(t *testing.T) {
	en := New(closet.English)
	he := New(closet.Hebrew)

	assert.Equal(t, "Width (cm)", en.T("width"))
	assert.Equal(t, "מספר דלתות", he.T("doorCount"))
	assert.Equal(t, "English", en.LanguageName(closet.English))
	assert.Equal(t, "עברית", he.LanguageName(closet.Hebrew))
}

func TestEveryEnglishMessageHasHebrew(t *testing.T) {
	en := New(closet.English)
	he := New(closet.Hebrew)
	for _, id := range []string{"title", "width", "height", "depth", "bufferWidth", "doorCount",
		"shelfCount", "structureColor", "doorColor", "shelfColor", "language", "doorWidth",
		"doorHeight", "internalBeamHeight", "shelfWidth", "shelfHeight", "shelfDepth"} {
		assert.NotEqual(t, id, en.T(id), "missing English %s", id)
		assert.NotEqual(t, en.T(id), he.T(id), "missing Hebrew %s", id)
	}
}

func TestUnknownMessageFallsBackToID(t *testing.T) {
	assert.Equal(t, "noSuchMessage", New(closet.Hebrew).T("noSuchMessage"))
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	l := New("fr")
	assert.Equal(t, closet.English, l.Language())
	assert.Equal(t, "Depth (cm)", l.T("depth"))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, LeftToRight, New(closet.English).Direction())
	assert.Equal(t, RightToLeft, New(closet.Hebrew).Direction())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want closet.Language
		ok   bool
	}{
		{"he", closet.Hebrew, true},
		{"he_IL.UTF-8", closet.Hebrew, true},
		{"iw", closet.Hebrew, true},
		{"en-US", closet.English, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLanguage(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestVisual(t *testing.T) {
	assert.Equal(t, "abc 12", Visual("abc 12"))
	assert.Equal(t, "םולש", Visual("שלום"))
	assert.Equal(t, `מ"ס 180 :ללוכ בחור`, Visual(`רוחב כולל: 180 ס"מ`))
	assert.Equal(t, "(מ\"ס) בחור", Visual("רוחב (ס\"מ)"))
	assert.Equal(t, "סופיא :Home", Visual("Home: איפוס"))
	assert.Equal(t, "12.5 הבוג", Visual("גובה 12.5"))
	assert.Equal(t, "", Visual(""))
}
