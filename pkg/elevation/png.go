package elevation

import (
	"fmt"
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"
)

// WritePNG rasterizes the layout. The built-in bitmap font only covers
// ASCII, so callers plan PNG layouts with an English localizer.
func WritePNG(w io.Writer, layout Layout) error {
	dc := gg.NewContext(px(layout.Width), px(layout.Height))
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetLineWidth(1)
	for _, r := range layout.Rects {
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		dc.SetColor(r.Fill.NRGBA())
		dc.FillPreserve()
		dc.SetColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
		dc.Stroke()
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff})
	for _, l := range layout.Labels {
		ax := 0.0
		switch l.Anchor {
		case AnchorMiddle:
			ax = 0.5
		case AnchorEnd:
			ax = 1
		}
		dc.DrawStringAnchored(l.Text, l.X, l.Y, ax, 0)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
