package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/configurator"
	"github.com/philipparndt/gocloset/pkg/i18n"
	"github.com/philipparndt/gocloset/pkg/specfile"
)

// specFlags override fields of the loaded spec
type specFlags struct {
	width, height, depth, bufferWidth float64
	doors, shelves                    int
	structureColor, doorColor         string
	shelfColor, lang                  string
	clamp                             bool
}

func addSpecFlags(cmd *cobra.Command) *specFlags {
	f := &specFlags{}
	def := closet.DefaultSpec()
	flags := cmd.Flags()
	flags.Float64Var(&f.width, "width", def.Width, "overall width in cm")
	flags.Float64Var(&f.height, "height", def.Height, "overall height in cm")
	flags.Float64Var(&f.depth, "depth", def.Depth, "overall depth in cm")
	flags.Float64Var(&f.bufferWidth, "buffer-width", def.BufferWidth, "clearance subtracted from the width in cm")
	flags.IntVar(&f.doors, "doors", def.DoorCount, "number of doors")
	flags.IntVar(&f.shelves, "shelves", def.ShelfCount, fmt.Sprintf("number of shelves (0-%d)", closet.MaxShelves))
	flags.StringVar(&f.structureColor, "structure-color", def.StructureColor.Hex(), "frame color as #rrggbb")
	flags.StringVar(&f.doorColor, "door-color", def.DoorColor.Hex(), "door color as #rrggbb")
	flags.StringVar(&f.shelfColor, "shelf-color", def.ShelfColor.Hex(), "shelf color as #rrggbb")
	flags.StringVar(&f.lang, "lang", "", "display language: en or he (default from config or system locale)")
	flags.BoolVar(&f.clamp, "clamp", false, "clamp out-of-range values instead of failing")
	return f
}

// resolve builds the spec from the optional file argument, the config
// and the changed flags, then validates or clamps it.
func (f *specFlags) resolve(cmd *cobra.Command, args []string) (closet.Spec, error) {
	spec := closet.DefaultSpec()
	path := cfg.SpecFile
	if len(args) > 0 {
		path = args[0]
	}
	if path != "" {
		loaded, err := specfile.Load(path)
		if err != nil {
			return spec, err
		}
		spec = loaded
		slog.Debug("loaded spec", "path", path)
	} else {
		spec.Language = i18n.DetectLanguage()
	}

	if cfg.Language != "" {
		if lang, ok := i18n.ParseLanguage(cfg.Language); ok {
			spec.Language = lang
		} else {
			slog.Warn("unsupported language in config", "language", cfg.Language)
		}
	}

	var actions []configurator.Action
	changed := cmd.Flags().Changed
	if changed("width") {
		actions = append(actions, configurator.SetWidth{Value: f.width})
	}
	if changed("height") {
		actions = append(actions, configurator.SetHeight{Value: f.height})
	}
	if changed("depth") {
		actions = append(actions, configurator.SetDepth{Value: f.depth})
	}
	if changed("buffer-width") {
		actions = append(actions, configurator.SetBufferWidth{Value: f.bufferWidth})
	}
	if changed("doors") {
		actions = append(actions, configurator.SetDoorCount{Value: f.doors})
	}
	if changed("shelves") {
		actions = append(actions, configurator.SetShelfCount{Value: f.shelves})
	}
	for _, c := range []struct {
		flag  string
		field configurator.Field
		value string
	}{
		{"structure-color", configurator.FieldStructureColor, f.structureColor},
		{"door-color", configurator.FieldDoorColor, f.doorColor},
		{"shelf-color", configurator.FieldShelfColor, f.shelfColor},
	} {
		if !changed(c.flag) {
			continue
		}
		color, err := closet.ParseColor(c.value)
		if err != nil {
			return spec, fmt.Errorf("--%s: %w", c.flag, err)
		}
		actions = append(actions, configurator.ColorAction(c.field, color))
	}
	if changed("lang") {
		lang, ok := i18n.ParseLanguage(f.lang)
		if !ok {
			return spec, fmt.Errorf("--lang: unsupported language %q", f.lang)
		}
		actions = append(actions, configurator.SetLanguage{Value: lang})
	}

	for _, action := range actions {
		spec = configurator.Reduce(spec, action, configurator.Parity)
	}

	if f.clamp {
		return spec.Clamp(), nil
	}
	if err := spec.Validate(); err != nil {
		return spec, err
	}
	return spec, nil
}
