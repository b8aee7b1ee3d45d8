package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocloset/internal/server"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/i18n"
)

var dimsCmd = &cobra.Command{
	Use:   "dims [spec-file]",
	Short: "Print the derived door, beam and shelf dimensions",
	Long:  "Compute the derived dimensions of a closet from a spec file and/or flags and print them in the spec's language.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDims,
}

var (
	dimsSpec   *specFlags
	dimsOutput string
)

func init() {
	dimsSpec = addSpecFlags(dimsCmd)
	dimsCmd.Flags().StringVarP(&dimsOutput, "output", "o", outputText, "output format: text, json or yaml")
	rootCmd.AddCommand(dimsCmd)
}

func runDims(cmd *cobra.Command, args []string) error {
	spec, err := dimsSpec.resolve(cmd, args)
	if err != nil {
		return err
	}
	dims := closet.Compute(spec)

	if dimsOutput != outputText {
		return writeStructured(os.Stdout, server.DimensionsResponse{Spec: spec, Dimensions: dims}, dimsOutput)
	}

	loc := i18n.New(spec.Language)
	unit := loc.T("unitCM")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, loc.T("derived"))
	for _, row := range []struct {
		id    string
		value float64
	}{
		{"doorWidth", dims.DoorWidth},
		{"doorHeight", dims.DoorHeight},
		{"internalBeamHeight", dims.InternalBeamHeight},
		{"shelfWidth", dims.ShelfWidth},
		{"shelfHeight", dims.ShelfHeight},
		{"shelfDepth", dims.ShelfDepth},
	} {
		fmt.Fprintf(w, "  %s\t%s %s\n", loc.T(row.id), closet.FormatCM(row.value), unit)
	}
	fmt.Fprintf(w, "  %s\t%d\n", loc.T("externalBeamCount"), dims.ExternalBeamCount)
	fmt.Fprintf(w, "  %s\t%d\n", loc.T("internalBeamCount"), dims.InternalBeamCount)
	return w.Flush()
}
