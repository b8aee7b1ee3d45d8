// Package viewer is the raylib 3D preview window. It renders the
// current closet assembly, orbits the camera with the mouse and edits
// door and shelf counts from the keyboard.
package viewer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gocloset/internal/measurement"
	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/configurator"
	"github.com/philipparndt/gocloset/pkg/i18n"
	"github.com/philipparndt/gocloset/pkg/watcher"
)

// Options configure the window
type Options struct {
	Width, Height int32
	Policy        configurator.Policy
	// Watcher, when set, feeds reloaded spec files into the window
	Watcher *watcher.SpecWatcher
	// FontPath overrides the search for a font with Hebrew glyphs
	FontPath string
}

// Viewer implements assembly.Renderer on top of raylib
type Viewer struct {
	opts    Options
	session *configurator.Session

	scene     *assembly.Assembly
	meshData  assembly.MeshData
	texcoords []float32
	mesh      rl.Mesh
	material  rl.Material
	hasMesh   bool
	camera    rl.Camera3D

	loc            *i18n.Localizer
	font           rl.Font
	released       bool
	dimensions     []measurement.Segment
	showDimensions bool

	status      string
	statusUntil time.Time
}

// New creates a viewer. The window opens in Run.
func New(opts Options) *Viewer {
	if opts.Width <= 0 {
		opts.Width = 1400
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	return &Viewer{opts: opts, loc: i18n.New(closet.English), showDimensions: true}
}

// Run opens the window and blocks until it is closed or ctx is done
func (v *Viewer) Run(ctx context.Context, spec closet.Spec) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(v.opts.Width, v.opts.Height, "gocloset")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	v.font = loadFont(v.opts.FontPath)
	defer unloadFont(v.font)
	v.material = rl.LoadMaterialDefault()

	session, err := configurator.NewSession(spec, assembly.NewBuilder(v), v.opts.Policy)
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}
	v.session = session
	defer session.Close()

	for !rl.WindowShouldClose() && !v.released {
		if ctx.Err() != nil {
			break
		}
		v.drainWatcher()
		v.handleInput()
		v.updateCamera()
		v.draw()
	}
	return nil
}

// Load replaces the displayed assembly. Orbit angles carry over from
// the previous scene so editing does not reset the view.
func (v *Viewer) Load(a *assembly.Assembly) {
	if v.scene != nil {
		prev := v.scene.Camera.Controls
		a.Camera.Controls.SetView(prev.Azimuth, prev.Polar)
	}
	v.unloadMesh()

	v.scene = a
	v.loc = i18n.New(a.Spec.Language)
	v.dimensions = measurement.Overall(a, v.loc)
	v.meshData = a.Bake()
	if v.meshData.TriangleCount() > 0 {
		v.texcoords = make([]float32, v.meshData.VertexCount()*2)
		v.mesh = uploadMesh(v.meshData, v.texcoords)
		v.hasMesh = true
	}
	a.Camera.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	v.syncCamera()
}

// Release drops the GPU mesh and stops the render loop
func (v *Viewer) Release() {
	v.unloadMesh()
	v.released = true
}

func (v *Viewer) unloadMesh() {
	if v.hasMesh {
		rl.UnloadMesh(&v.mesh)
		v.hasMesh = false
	}
	v.meshData = assembly.MeshData{}
	v.texcoords = nil
}

func (v *Viewer) dispatch(action configurator.Action) {
	if _, err := v.session.Dispatch(action); err != nil {
		slog.Warn("edit rejected", "error", err)
		v.flash(err.Error())
	}
}

func (v *Viewer) drainWatcher() {
	if v.opts.Watcher == nil {
		return
	}
	select {
	case u, ok := <-v.opts.Watcher.Updates():
		if !ok {
			v.opts.Watcher = nil
			return
		}
		if u.Err != nil {
			v.flash(u.Err.Error())
			return
		}
		v.dispatch(configurator.ReplaceSpec{Spec: u.Spec})
		v.flash(u.Path)
	default:
	}
}

func (v *Viewer) flash(msg string) {
	v.status = msg
	v.statusUntil = time.Now().Add(3 * time.Second)
}
