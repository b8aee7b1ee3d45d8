package elevation

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const (
	outlineStyle = "stroke:#333333;stroke-width:1"
	textStyle    = "font-family:sans-serif;font-size:13px;fill:#222222"
)

// WriteSVG renders the layout. Every part carries a data-part attribute
// with its name.
func WriteSVG(w io.Writer, layout Layout) error {
	canvas := svg.New(w)
	canvas.Start(px(layout.Width), px(layout.Height))
	canvas.Title(layout.Title)

	canvas.Gstyle(outlineStyle)
	for _, r := range layout.Rects {
		canvas.Rect(px(r.X), px(r.Y), max(px(r.W), 1), max(px(r.H), 1),
			"fill:"+r.Fill.Hex(),
			fmt.Sprintf(`data-part="%s"`, r.Name),
			fmt.Sprintf(`data-kind="%s"`, r.Kind),
		)
	}
	canvas.Gend()

	style := textStyle
	if layout.RTL {
		style += ";direction:rtl"
	}
	canvas.Gstyle(style)
	for _, l := range layout.Labels {
		canvas.Text(px(l.X), px(l.Y), l.Text, "text-anchor:"+textAnchor(l.Anchor))
	}
	canvas.Gend()

	canvas.End()
	return nil
}

func textAnchor(a Anchor) string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	}
	return "start"
}

func px(f float64) int {
	return int(math.Round(f))
}
