package assembly

import (
	"errors"
	"log/slog"

	"github.com/philipparndt/gocloset/pkg/closet"
)

// ErrClosed is returned when rebuilding after Close
var ErrClosed = errors.New("scene builder closed")

// Renderer displays assemblies. Load replaces whatever was shown
// before; Release drops resize handling, disposes camera controls and
// stops the render loop.
type Renderer interface {
	Load(a *Assembly)
	Release()
}

// Builder tears down and rebuilds the scene on every spec change
type Builder struct {
	renderer Renderer
	current  *Assembly
	builds   int
	closed   bool
}

// NewBuilder creates a builder feeding renderer. A nil renderer builds
// assemblies without displaying them.
func NewBuilder(renderer Renderer) *Builder {
	return &Builder{renderer: renderer}
}

// Rebuild discards the current assembly and builds a new one
func (b *Builder) Rebuild(spec closet.Spec, dims closet.Dimensions) (*Assembly, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if b.current != nil {
		b.current.Camera.Controls.Dispose()
	}

	a := Build(spec, dims)
	b.current = a
	b.builds++
	if b.renderer != nil {
		b.renderer.Load(a)
	}

	slog.Debug("scene rebuilt",
		"id", a.ID,
		"boxes", len(a.Boxes),
		"doors", a.Count(KindDoor),
		"shelves", a.Count(KindShelf),
		"build", b.builds,
	)
	return a, nil
}

// Current returns the latest assembly, or nil before the first build
func (b *Builder) Current() *Assembly {
	return b.current
}

// Builds returns how many assemblies have been built
func (b *Builder) Builds() int {
	return b.builds
}

// Close releases the renderer. It is safe to call more than once.
func (b *Builder) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.current != nil {
		b.current.Camera.Controls.Dispose()
	}
	if b.renderer != nil {
		b.renderer.Release()
	}
	return nil
}
