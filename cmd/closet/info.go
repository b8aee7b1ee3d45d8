package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocloset/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file.stl]",
	Short: "Display information about an exported STL file",
	Long:  "Show the triangle count, surface area and bounding box of an STL file, for example one written by 'closet export'.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("failed to parse STL file: %w", err)
	}

	bbox := model.BoundingBox()
	size := bbox.Size()

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", model.TriangleCount())
	fmt.Printf("  Surface Area: %.2f square units\n\n", model.SurfaceArea())

	if model.TriangleCount() == 0 {
		return nil
	}

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.2f, %.2f, %.2f)\n", bbox.Min.X, bbox.Min.Y, bbox.Min.Z)
	fmt.Printf("  Max: (%.2f, %.2f, %.2f)\n\n", bbox.Max.X, bbox.Max.Y, bbox.Max.Z)

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.2f units\n", size.X)
	fmt.Printf("  Height (Y): %.2f units\n", size.Y)
	fmt.Printf("  Depth (Z): %.2f units\n", size.Z)
	fmt.Printf("  Diagonal: %.2f units\n", bbox.Diagonal())
	return nil
}
