package i18n

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Visual reorders a right-to-left line for renderers that draw glyphs
// strictly left to right. Lines without strong characters are treated
// as right to left. Input the bidi algorithm rejects is returned as is.
func Visual(s string) string {
	if s == "" {
		return s
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.RightToLeft)); err != nil {
		return s
	}
	order, err := p.Order()
	if err != nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := order.NumRuns() - 1; i >= 0; i-- {
		run := order.Run(i)
		if run.Direction() == bidi.RightToLeft {
			b.WriteString(bidi.ReverseString(run.String()))
		} else {
			b.WriteString(run.String())
		}
	}
	return b.String()
}
