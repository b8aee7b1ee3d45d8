package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocloset/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator and exporters over HTTP",
	Long: `Start an HTTP server. POST a JSON spec to:

  /api/dimensions        derived dimensions
  /api/assembly          3D scene
  /api/cutlist           panel list
  /api/elevation.svg     front elevation (?doors=open)
  /api/elevation.png     front elevation (?doors=open)
  /api/export/:format    stl, stl-ascii or scad

Add ?policy=clamp to clamp out-of-range values instead of rejecting them.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr      string
	serveAccessLog bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&serveAccessLog, "access-log", true, "log every request")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Addr:         addr,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		AccessLog:    serveAccessLog,
	})
	return srv.Run(ctx)
}
