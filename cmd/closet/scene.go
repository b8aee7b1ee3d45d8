package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
)

var sceneCmd = &cobra.Command{
	Use:   "scene [spec-file]",
	Short: "Print the 3D scene of a closet",
	Long:  "Build the closet assembly (boxes, lights and camera) and print it as JSON or YAML.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScene,
}

var (
	sceneSpec   *specFlags
	sceneOutput string
)

func init() {
	sceneSpec = addSpecFlags(sceneCmd)
	sceneCmd.Flags().StringVarP(&sceneOutput, "output", "o", outputJSON, "output format: json or yaml")
	rootCmd.AddCommand(sceneCmd)
}

func runScene(cmd *cobra.Command, args []string) error {
	spec, err := sceneSpec.resolve(cmd, args)
	if err != nil {
		return err
	}
	a := assembly.Build(spec, closet.Compute(spec))
	return writeStructured(os.Stdout, a, sceneOutput)
}
