package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocloset/internal/config"
	"github.com/philipparndt/gocloset/internal/logging"
	"github.com/philipparndt/gocloset/version"
)

var (
	configPath string
	logLevel   string
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "closet",
	Short: "Parametric closet calculator and 3D configurator",
	Long: `closet computes door, beam and shelf sizes for a parametric closet,
builds its 3D scene and exports it as STL, OpenSCAD, SVG or PNG.
It can also open an interactive 3D viewer or serve an HTTP API.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		_, err = logging.Setup(os.Stderr, cfg.LogLevel)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $CLOSET_CONFIG or ~/.config/gocloset/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
