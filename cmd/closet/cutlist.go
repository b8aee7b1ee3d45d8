package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocloset/pkg/analysis"
	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/i18n"
)

var cutlistCmd = &cobra.Command{
	Use:   "cutlist [spec-file]",
	Short: "List the panels needed to build a closet",
	Long:  "Group the parts of the closet by kind and size and print the panel count, total area and estimated weight.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCutlist,
}

var (
	cutlistSpec   *specFlags
	cutlistOutput string
)

func init() {
	cutlistSpec = addSpecFlags(cutlistCmd)
	cutlistCmd.Flags().StringVarP(&cutlistOutput, "output", "o", outputText, "output format: text, json or yaml")
	rootCmd.AddCommand(cutlistCmd)
}

func runCutlist(cmd *cobra.Command, args []string) error {
	spec, err := cutlistSpec.resolve(cmd, args)
	if err != nil {
		return err
	}
	list := analysis.Analyze(assembly.Build(spec, closet.Compute(spec)))

	if cutlistOutput != outputText {
		return writeStructured(os.Stdout, list, cutlistOutput)
	}

	loc := i18n.New(spec.Language)
	fmt.Println(loc.T("cutList"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Part\tCount\tLength\tWidth\tThickness\t")
	for _, p := range list.Parts {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t\n", p.Kind, p.Count,
			closet.FormatCM(p.Length), closet.FormatCM(p.Width), closet.FormatCM(p.Thickness))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("%s: %.3f\n", loc.T("panelArea"), list.TotalArea)
	fmt.Printf("%s: %.1f\n", loc.T("weight"), list.Weight)
	return nil
}
