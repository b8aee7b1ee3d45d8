package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gocloset/internal/config"
	"github.com/philipparndt/gocloset/internal/logging"
	"github.com/philipparndt/gocloset/internal/preview"
	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/configurator"
	"github.com/philipparndt/gocloset/pkg/i18n"
	"github.com/philipparndt/gocloset/pkg/specfile"
)

// derivedIDs are the derived dimensions shown under the form, in order
var derivedIDs = []string{"doorWidth", "doorHeight", "internalBeamHeight", "shelfWidth", "shelfHeight", "shelfDepth"}

type App struct {
	window  fyne.Window
	session *configurator.Session
	preview *preview.Preview
	loc     *i18n.Localizer

	entries  map[configurator.Field]*widget.Entry
	swatches map[configurator.Field]*canvas.Rectangle
	derived  map[string]*widget.Label
	beams    *widget.Label
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	spec, err := initialSpec(cfg, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	policy, ok := configurator.ParsePolicy(cfg.Policy)
	if !ok {
		slog.Warn("unknown policy, using clamp", "policy", cfg.Policy)
	}

	a := app.New()
	w := a.NewWindow("gocloset")

	appInstance := &App{
		window:  w,
		preview: preview.New(),
	}
	session, err := configurator.NewSession(spec, assembly.NewBuilder(appInstance.preview), policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	appInstance.session = session
	session.Subscribe(appInstance.onChange)
	w.SetOnClosed(func() {
		if err := session.Close(); err != nil {
			slog.Error("failed to close session", "error", err)
		}
	})

	w.Resize(fyne.NewSize(1200, 900))
	w.ShowAndRun()
}

// initialSpec reads the optional spec file argument and picks the
// display language: config first, then the file, then the system locale.
func initialSpec(cfg config.Config, args []string) (closet.Spec, error) {
	spec := closet.DefaultSpec()
	fromFile := false
	if len(args) > 0 {
		loaded, err := specfile.Load(args[0])
		if err != nil {
			return spec, err
		}
		spec, fromFile = loaded, true
	}
	if cfg.Language != "" {
		if lang, ok := i18n.ParseLanguage(cfg.Language); ok {
			spec.Language = lang
			return spec, nil
		}
		slog.Warn("unsupported language in config", "language", cfg.Language)
	}
	if !fromFile {
		spec.Language = i18n.DetectLanguage()
	}
	return spec, nil
}

// onChange refreshes the derived labels, and rebuilds the whole form
// when the language changed.
func (a *App) onChange(snap configurator.Snapshot) {
	if a.loc == nil || a.loc.Language() != snap.Spec.Language {
		a.loc = i18n.New(snap.Spec.Language)
		a.window.SetTitle(a.loc.T("title"))
		a.buildUI(snap.Spec)
	}

	for _, id := range derivedIDs {
		a.derived[id].SetText(fmt.Sprintf("%s %s", closet.FormatCM(derivedValue(snap.Dims, id)), a.loc.T("unitCM")))
	}
	a.beams.SetText(fmt.Sprintf("%s: %d   %s: %d",
		a.loc.T("externalBeamCount"), snap.Dims.ExternalBeamCount,
		a.loc.T("internalBeamCount"), snap.Dims.InternalBeamCount))
	for field, swatch := range a.swatches {
		swatch.FillColor = configurator.ColorOf(snap.Spec, field).NRGBA()
		swatch.Refresh()
	}
}

func derivedValue(d closet.Dimensions, id string) float64 {
	switch id {
	case "doorWidth":
		return d.DoorWidth
	case "doorHeight":
		return d.DoorHeight
	case "internalBeamHeight":
		return d.InternalBeamHeight
	case "shelfWidth":
		return d.ShelfWidth
	case "shelfHeight":
		return d.ShelfHeight
	}
	return d.ShelfDepth
}

func (a *App) buildUI(spec closet.Spec) {
	rtl := a.loc.Direction() == i18n.RightToLeft
	a.entries = make(map[configurator.Field]*widget.Entry)
	a.swatches = make(map[configurator.Field]*canvas.Rectangle)
	a.derived = make(map[string]*widget.Label)

	row := func(label string, input fyne.CanvasObject) []fyne.CanvasObject {
		l := widget.NewLabel(label)
		if rtl {
			l.Alignment = fyne.TextAlignTrailing
			return []fyne.CanvasObject{input, l}
		}
		return []fyne.CanvasObject{l, input}
	}

	var dims []fyne.CanvasObject
	for _, field := range configurator.NumericFields {
		dims = append(dims, row(a.loc.T(string(field)), a.numericEntry(field, spec))...)
	}

	var colors []fyne.CanvasObject
	for _, field := range configurator.ColorFields {
		colors = append(colors, row(a.loc.T(string(field)), a.colorButton(field, spec))...)
	}

	names := make([]string, len(closet.Languages))
	for i, lang := range closet.Languages {
		names[i] = a.loc.LanguageName(lang)
	}
	languageSelect := widget.NewSelect(names, func(name string) {
		for _, lang := range closet.Languages {
			if a.loc.LanguageName(lang) == name && lang != a.session.Spec().Language {
				a.dispatch(configurator.SetLanguage{Value: lang})
				return
			}
		}
	})
	languageSelect.SetSelected(a.loc.LanguageName(spec.Language))
	colors = append(colors, row(a.loc.T("language"), languageSelect)...)

	var derived []fyne.CanvasObject
	for _, id := range derivedIDs {
		value := widget.NewLabel("")
		value.TextStyle = fyne.TextStyle{Monospace: true}
		a.derived[id] = value
		derived = append(derived, row(a.loc.T(id), value)...)
	}
	a.beams = widget.NewLabel("")

	heading := func(id string) fyne.CanvasObject {
		l := widget.NewLabel(a.loc.T(id))
		l.TextStyle = fyne.TextStyle{Bold: true}
		if rtl {
			l.Alignment = fyne.TextAlignTrailing
		}
		return l
	}

	resetButton := widget.NewButton(a.loc.T("resetCamera"), a.preview.ResetCamera)

	form := container.NewGridWithColumns(3,
		container.NewVBox(heading("dimensions"), container.NewGridWithColumns(2, dims...)),
		container.NewVBox(heading("colors"), container.NewGridWithColumns(2, colors...)),
		container.NewVBox(heading("derived"), container.NewGridWithColumns(2, derived...), a.beams),
	)
	if rtl {
		form = container.NewGridWithColumns(3, form.Objects[2], form.Objects[1], form.Objects[0])
	}

	previewHeader := container.NewHBox(heading("preview"), layout.NewSpacer(), resetButton)
	if rtl {
		previewHeader = container.NewHBox(resetButton, layout.NewSpacer(), heading("preview"))
	}

	content := container.NewBorder(
		container.NewVBox(form, widget.NewSeparator(), previewHeader),
		nil,
		nil,
		nil,
		a.preview,
	)
	a.window.SetContent(content)
}

func (a *App) numericEntry(field configurator.Field, spec closet.Spec) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(configurator.Value(spec, field))
	entry.OnChanged = func(text string) {
		if _, err := a.session.Edit(field, text); err != nil {
			// keep the last good value until the text parses
			slog.Debug("ignoring input", "field", field, "text", text, "error", err)
		}
	}
	entry.OnSubmitted = func(string) {
		entry.SetText(configurator.Value(a.session.Spec(), field))
	}
	a.entries[field] = entry
	return entry
}

func (a *App) colorButton(field configurator.Field, spec closet.Spec) fyne.CanvasObject {
	swatch := canvas.NewRectangle(configurator.ColorOf(spec, field).NRGBA())
	swatch.SetMinSize(fyne.NewSize(48, 24))
	swatch.CornerRadius = 4
	a.swatches[field] = swatch

	button := widget.NewButton(a.loc.T("pickColor"), func() {
		picker := dialog.NewColorPicker(a.loc.T(string(field)), a.loc.T("pickColor"), func(c color.Color) {
			a.dispatch(configurator.ColorAction(field, closet.FromColor(c)))
		}, a.window)
		picker.Advanced = true
		picker.SetColor(configurator.ColorOf(a.session.Spec(), field).NRGBA())
		picker.Show()
	})
	return container.NewBorder(nil, nil, swatch, nil, button)
}

func (a *App) dispatch(action configurator.Action) {
	if _, err := a.session.Dispatch(action); err != nil {
		dialog.ShowError(err, a.window)
	}
}
