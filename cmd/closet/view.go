package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocloset/internal/viewer"
	"github.com/philipparndt/gocloset/pkg/configurator"
	"github.com/philipparndt/gocloset/pkg/watcher"
)

var viewCmd = &cobra.Command{
	Use:   "view [spec-file]",
	Short: "Open the interactive 3D viewer",
	Long: `Open a window showing the closet in 3D.

Drag to orbit, scroll to zoom, Left/Right change the door count,
Up/Down the shelf count, L switches the language and Home resets the
camera. When a spec file is given it is watched and reloaded on save.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

var (
	viewSpec   *specFlags
	viewPolicy string
	viewFont   string
	viewWatch  bool
)

func init() {
	viewSpec = addSpecFlags(viewCmd)
	viewCmd.Flags().StringVar(&viewPolicy, "policy", "", "input policy: clamp or parity (default from config)")
	viewCmd.Flags().StringVar(&viewFont, "font", "", "TTF font with Hebrew glyphs")
	viewCmd.Flags().BoolVar(&viewWatch, "watch", true, "reload the spec file when it changes")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	spec, err := viewSpec.resolve(cmd, args)
	if err != nil {
		return err
	}

	name := cfg.Policy
	if viewPolicy != "" {
		name = viewPolicy
	}
	policy, ok := configurator.ParsePolicy(name)
	if !ok {
		return fmt.Errorf("unsupported policy %q", name)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := viewer.Options{
		Width:    int32(cfg.Window.Width),
		Height:   int32(cfg.Window.Height),
		Policy:   policy,
		FontPath: viewFont,
	}

	path := cfg.SpecFile
	if len(args) > 0 {
		path = args[0]
	}
	if viewWatch && path != "" {
		w, err := watcher.New(path, watcher.DefaultDebounce)
		if err != nil {
			return err
		}
		defer w.Close()
		go w.Run(ctx)
		opts.Watcher = w
		slog.Info("watching spec file", "path", w.Path())
	}

	return viewer.New(opts).Run(ctx, spec)
}
