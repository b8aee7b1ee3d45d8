// Package server exposes the calculator, the scene builder and the
// exporters over HTTP. Every request builds its own assembly; nothing
// is shared between requests.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// Options configure the server
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// AccessLog enables the request logger middleware
	AccessLog bool
}

// Server wraps the fiber app
type Server struct {
	app  *fiber.App
	addr string
}

// New creates a server with all routes registered
func New(opts Options) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "gocloset",
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	api := app.Group("/api")
	api.Post("/dimensions", handleDimensions)
	api.Post("/assembly", handleAssembly)
	api.Post("/cutlist", handleCutList)
	api.Post("/elevation.svg", handleElevationSVG)
	api.Post("/elevation.png", handleElevationPNG)
	api.Post("/export/:format", handleExport)

	return &Server{app: app, addr: opts.Addr}
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", s.addr)
		errc <- s.app.Listen(s.addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	slog.Info("http server stopped")
	return nil
}

func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
