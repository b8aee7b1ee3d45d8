// Package i18n provides the English and Hebrew display strings of the
// configurator. Language only changes labels, never measurements.
package i18n

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/philipparndt/gocloset/pkg/closet"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
		for _, lang := range closet.Languages {
			path := fmt.Sprintf("locales/active.%s.yaml", lang)
			if _, err := b.LoadMessageFileFS(locales, path); err != nil {
				bundleErr = fmt.Errorf("failed to load %s: %w", path, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Direction is the writing direction of a language
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// Localizer looks up display strings for one language
type Localizer struct {
	lang      closet.Language
	localizer *i18n.Localizer
}

// New returns a localizer for lang. Unknown languages fall back to English.
func New(lang closet.Language) *Localizer {
	if !lang.Valid() {
		lang = closet.English
	}
	l := &Localizer{lang: lang}
	b, err := loadBundle()
	if err != nil {
		slog.Error("message catalog unavailable", "error", err)
		return l
	}
	l.localizer = i18n.NewLocalizer(b, string(lang), string(closet.English))
	return l
}

// Language returns the language the localizer serves
func (l *Localizer) Language() closet.Language {
	return l.lang
}

// T returns the display string for id, or id itself when no message exists
func (l *Localizer) T(id string) string {
	if l.localizer == nil {
		return id
	}
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || s == "" {
		return id
	}
	return s
}

// Direction returns RightToLeft for Hebrew
func (l *Localizer) Direction() Direction {
	if l.lang == closet.Hebrew {
		return RightToLeft
	}
	return LeftToRight
}

// LanguageName returns the display name of lang in this localizer's language
func (l *Localizer) LanguageName(lang closet.Language) string {
	return l.T(string(lang))
}

// ParseLanguage maps a tag such as "he-IL" or "en_US.UTF-8" to a
// supported language.
func ParseLanguage(s string) (closet.Language, bool) {
	s = strings.SplitN(s, ".", 2)[0]
	s = strings.ReplaceAll(s, "_", "-")
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "he", "iw":
		return closet.Hebrew, true
	case "en":
		return closet.English, true
	}
	return "", false
}

// DetectLanguage picks the user's system language when supported
func DetectLanguage() closet.Language {
	tag, err := locale.GetLanguage()
	if err != nil {
		slog.Debug("locale detection failed", "error", err)
		return closet.English
	}
	if lang, ok := ParseLanguage(tag); ok {
		return lang
	}
	return closet.English
}
