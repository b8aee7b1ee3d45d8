package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/elevation"
	"github.com/philipparndt/gocloset/pkg/i18n"
	"github.com/philipparndt/gocloset/pkg/openscad"
	"github.com/philipparndt/gocloset/pkg/stl"
)

var exportCmd = &cobra.Command{
	Use:   "export [spec-file]",
	Short: "Export the closet as STL, OpenSCAD, SVG or PNG",
	Long: `Export the closet model or its front elevation.

Formats:
  stl        binary STL in millimeters
  stl-ascii  ASCII STL in millimeters
  scad       OpenSCAD source
  svg        front elevation as SVG
  png        front elevation as PNG

With --render the SCAD source is passed to openscad, which must be
installed, and the output format follows the --output extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportSpec      *specFlags
	exportFormat    string
	exportOutput    string
	exportDoorsOpen bool
	exportRender    bool
)

func init() {
	exportSpec = addSpecFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "stl, stl-ascii, scad, svg or png (default from --output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportDoorsOpen, "doors-open", false, "leave the doors out of the elevation")
	exportCmd.Flags().BoolVar(&exportRender, "render", false, "render with openscad to --output")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	spec, err := exportSpec.resolve(cmd, args)
	if err != nil {
		return err
	}
	a := assembly.Build(spec, closet.Compute(spec))

	if exportRender {
		return renderWithOpenSCAD(cmd.Context(), a)
	}

	format := exportFormat
	if format == "" {
		format = formatFromExtension(exportOutput)
	}

	var out io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeExport(out, a, format); err != nil {
		return err
	}
	if exportOutput != "" {
		slog.Info("exported", "format", format, "file", exportOutput)
	}
	return nil
}

func writeExport(w io.Writer, a *assembly.Assembly, format string) error {
	switch format {
	case "stl":
		return stl.WriteBinary(w, stl.FromAssembly(a).Scaled(stl.MillimetersPerCentimeter))
	case "stl-ascii":
		return stl.WriteASCII(w, stl.FromAssembly(a).Scaled(stl.MillimetersPerCentimeter))
	case "scad":
		return openscad.Write(w, a)
	case "svg", "png":
		opts := elevation.DefaultOptions()
		opts.DoorsOpen = exportDoorsOpen
		if format == "svg" {
			return elevation.WriteSVG(w, elevation.Plan(a, i18n.New(a.Spec.Language), opts))
		}
		return elevation.WritePNG(w, elevation.Plan(a, i18n.New(closet.English), opts))
	}
	return fmt.Errorf("unsupported export format %q", format)
}

func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scad":
		return "scad"
	case ".svg":
		return "svg"
	case ".png":
		return "png"
	}
	return "stl"
}

func renderWithOpenSCAD(ctx context.Context, a *assembly.Assembly) error {
	if exportOutput == "" {
		return fmt.Errorf("--render requires --output")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	workDir, err := os.MkdirTemp("", "gocloset-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(workDir)

	output, err := filepath.Abs(exportOutput)
	if err != nil {
		return err
	}
	slog.Info("rendering with openscad", "output", output)
	return openscad.NewRenderer(workDir).Render(ctx, a, output)
}
