package server

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/philipparndt/gocloset/pkg/analysis"
	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/elevation"
	"github.com/philipparndt/gocloset/pkg/i18n"
	"github.com/philipparndt/gocloset/pkg/openscad"
	"github.com/philipparndt/gocloset/pkg/specfile"
	"github.com/philipparndt/gocloset/pkg/stl"
)

// DimensionsResponse pairs the effective spec with its dimensions
type DimensionsResponse struct {
	Spec       closet.Spec       `json:"spec" yaml:"spec"`
	Dimensions closet.Dimensions `json:"dimensions" yaml:"dimensions"`
}

// readSpec decodes the body on top of the default spec. With
// ?policy=clamp out-of-range values are coerced instead of rejected.
func readSpec(c fiber.Ctx) (closet.Spec, error) {
	spec := closet.DefaultSpec()
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		var err error
		spec, err = specfile.Decode(body, specfile.JSON)
		if err != nil {
			return spec, fiber.NewError(fiber.StatusBadRequest, "invalid JSON payload: "+err.Error())
		}
	}
	if c.Query("policy") == "clamp" {
		spec = spec.Clamp()
	}
	if err := spec.Validate(); err != nil {
		return spec, fiber.NewError(fiber.StatusBadRequest, strings.ReplaceAll(err.Error(), "\n", "; "))
	}
	return spec, nil
}

func buildFrom(c fiber.Ctx) (*assembly.Assembly, error) {
	spec, err := readSpec(c)
	if err != nil {
		return nil, err
	}
	return assembly.Build(spec, closet.Compute(spec)), nil
}

func handleDimensions(c fiber.Ctx) error {
	spec, err := readSpec(c)
	if err != nil {
		return err
	}
	return c.JSON(DimensionsResponse{Spec: spec, Dimensions: closet.Compute(spec)})
}

func handleAssembly(c fiber.Ctx) error {
	a, err := buildFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(a)
}

func handleCutList(c fiber.Ctx) error {
	a, err := buildFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(analysis.Analyze(a))
}

func elevationOptions(c fiber.Ctx) elevation.Options {
	opts := elevation.DefaultOptions()
	opts.DoorsOpen = c.Query("doors") == "open"
	return opts
}

func handleElevationSVG(c fiber.Ctx) error {
	a, err := buildFrom(c)
	if err != nil {
		return err
	}
	layout := elevation.Plan(a, i18n.New(a.Spec.Language), elevationOptions(c))

	var buf bytes.Buffer
	if err := elevation.WriteSVG(&buf, layout); err != nil {
		return err
	}
	c.Set("Content-Type", "image/svg+xml")
	return c.Send(buf.Bytes())
}

func handleElevationPNG(c fiber.Ctx) error {
	a, err := buildFrom(c)
	if err != nil {
		return err
	}
	layout := elevation.Plan(a, i18n.New(closet.English), elevationOptions(c))

	var buf bytes.Buffer
	if err := elevation.WritePNG(&buf, layout); err != nil {
		return err
	}
	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

// exportFormats are the values accepted by /api/export/:format
var exportFormats = []string{"stl", "stl-ascii", "scad"}

func handleExport(c fiber.Ctx) error {
	format := c.Params("format")
	if !slices.Contains(exportFormats, format) {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unknown export format %q", format))
	}
	a, err := buildFrom(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case "stl":
		err = stl.WriteBinary(&buf, stl.FromAssembly(a).Scaled(stl.MillimetersPerCentimeter))
		c.Set("Content-Type", "model/stl")
	case "stl-ascii":
		err = stl.WriteASCII(&buf, stl.FromAssembly(a).Scaled(stl.MillimetersPerCentimeter))
		c.Set("Content-Type", "model/stl")
	case "scad":
		err = openscad.Write(&buf, a)
		c.Set("Content-Type", "text/plain; charset=utf-8")
	}
	if err != nil {
		return err
	}
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="closet.%s"`, strings.TrimSuffix(format, "-ascii")))
	return c.Send(buf.Bytes())
}
