package viewer

import (
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gocloset/internal/measurement"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/geometry"
	"github.com/philipparndt/gocloset/pkg/i18n"
)

var (
	background = rl.NewColor(15, 18, 25, 255)
	edgeColor  = rl.NewColor(40, 30, 20, 255)
	hudColor   = rl.NewColor(230, 230, 230, 255)
	titleColor = rl.Yellow
)

// fontCandidates are common system fonts that carry Hebrew glyphs
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// fontCodepoints covers ASCII, the Hebrew block and a few symbols
func fontCodepoints() []rune {
	runes := make([]rune, 0, 95+112+4)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	for r := rune(0x0590); r <= 0x05FF; r++ {
		runes = append(runes, r)
	}
	return append(runes, '—', '²', '³', '×')
}

func loadFont(path string) rl.Font {
	paths := fontCandidates
	if path != "" {
		paths = []string{path}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return rl.LoadFontEx(p, 48, fontCodepoints())
		}
	}
	return rl.GetFontDefault()
}

func unloadFont(f rl.Font) {
	if f.Texture.ID != rl.GetFontDefault().Texture.ID {
		rl.UnloadFont(f)
	}
}

func (v *Viewer) draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(background)

	if v.scene == nil {
		return
	}

	rl.BeginMode3D(v.camera)
	if v.hasMesh {
		rl.DrawMesh(v.mesh, v.material, rl.MatrixIdentity())
	}
	for _, box := range v.scene.Visible() {
		for _, edge := range geometry.Edges(box.Position, box.Size) {
			rl.DrawLine3D(toRL(edge[0].X, edge[0].Y, edge[0].Z), toRL(edge[1].X, edge[1].Y, edge[1].Z), edgeColor)
		}
	}
	rl.EndMode3D()

	if v.showDimensions {
		ctx := measurement.RenderContext{Camera: v.camera, Font: v.font, FontSize: 16}
		if v.loc.Direction() == i18n.RightToLeft {
			ctx.Shape = i18n.Visual
		}
		measurement.Draw(ctx, v.dimensions)
	}

	v.drawHUD()
}

// drawHUD lists the derived dimensions in the scene's language.
// Right-to-left languages are aligned to the right edge.
func (v *Viewer) drawHUD() {
	const (
		fontSize   = float32(18)
		lineHeight = float32(24)
		margin     = float32(12)
	)
	spec, dims := v.scene.Spec, v.scene.Dims
	unit := v.loc.T("unitCM")
	measure := func(id string, value float64) string {
		return fmt.Sprintf("%s: %s %s", v.loc.T(id), closet.FormatCM(value), unit)
	}

	lines := []string{
		v.loc.T("title"),
		fmt.Sprintf("%s: %d   %s: %d", v.loc.T("doorCount"), spec.DoorCount, v.loc.T("shelfCount"), spec.ShelfCount),
		measure("doorWidth", dims.DoorWidth),
		measure("doorHeight", dims.DoorHeight),
		measure("internalBeamHeight", dims.InternalBeamHeight),
		measure("shelfWidth", dims.ShelfWidth),
		measure("shelfHeight", dims.ShelfHeight),
		measure("shelfDepth", dims.ShelfDepth),
		fmt.Sprintf("%s: %d   %s: %d", v.loc.T("externalBeamCount"), dims.ExternalBeamCount, v.loc.T("internalBeamCount"), dims.InternalBeamCount),
	}

	rtl := v.loc.Direction() == i18n.RightToLeft
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	drawLine := func(text string, y float32, color rl.Color) {
		x := margin
		if rtl {
			text = i18n.Visual(text)
			x = screenWidth - margin - rl.MeasureTextEx(v.font, text, fontSize, 1).X
		}
		rl.DrawTextEx(v.font, text, rl.Vector2{X: x, Y: y}, fontSize, 1, color)
	}

	y := margin
	for i, line := range lines {
		color := hudColor
		if i == 0 {
			color = titleColor
		}
		drawLine(line, y, color)
		y += lineHeight
	}

	drawLine(v.loc.T("controlsHelp"), screenHeight-margin-lineHeight, hudColor)
	if v.status != "" && time.Now().Before(v.statusUntil) {
		drawLine(v.status, screenHeight-margin-2*lineHeight, titleColor)
	}
}
