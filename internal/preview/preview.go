// Package preview is the configurator's embedded 3D preview: a fyne
// widget that rasterizes the current closet assembly in software and
// orbits it with drag and scroll.
package preview

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gocloset/pkg/assembly"
)

// Height is the fixed height of the preview; it fills the width
const Height = 600

const (
	rotateSpeed = 0.01
	zoomSpeed   = 0.002
)

// Preview implements assembly.Renderer as a fyne widget
type Preview struct {
	widget.BaseWidget

	scene    *assembly.Assembly
	raster   *canvas.Raster
	anim     *fyne.Animation
	released bool
}

// New creates an empty preview
func New() *Preview {
	p := &Preview{}
	p.raster = canvas.NewRaster(p.render)
	p.ExtendBaseWidget(p)
	return p
}

// Load shows a new assembly, keeping the orbit angles of the previous one
func (p *Preview) Load(a *assembly.Assembly) {
	if p.released {
		return
	}
	if p.scene != nil {
		prev := p.scene.Camera.Controls
		a.Camera.Controls.SetView(prev.Azimuth, prev.Polar)
		a.Camera.Update()
	}
	p.scene = a
	p.startLoop()
	p.raster.Refresh()
}

// Release stops the damping loop and drops the scene
func (p *Preview) Release() {
	if p.anim != nil {
		p.anim.Stop()
		p.anim = nil
	}
	p.scene = nil
	p.released = true
	p.raster.Refresh()
}

// ResetCamera returns to the initial view
func (p *Preview) ResetCamera() {
	if p.scene == nil {
		return
	}
	p.scene.Camera.Controls.Reset()
	p.scene.Camera.Update()
	p.raster.Refresh()
}

// startLoop runs the orbit damping once per frame for as long as the
// widget lives.
func (p *Preview) startLoop() {
	if p.anim != nil {
		return
	}
	p.anim = fyne.NewAnimation(time.Second, func(float32) {
		if p.scene == nil {
			return
		}
		if p.scene.Camera.Update() {
			p.raster.Refresh()
		}
	})
	p.anim.RepeatCount = fyne.AnimationRepeatForever
	p.anim.Curve = fyne.AnimationLinear
	p.anim.Start()
}

func (p *Preview) render(w, h int) image.Image {
	if p.scene != nil {
		p.scene.Camera.Resize(float64(w), float64(h))
	}
	return Rasterize(p.scene, w, h)
}

// Dragged orbits the camera
func (p *Preview) Dragged(event *fyne.DragEvent) {
	if p.scene == nil {
		return
	}
	p.scene.Camera.Controls.Rotate(-float64(event.Dragged.DX)*rotateSpeed, -float64(event.Dragged.DY)*rotateSpeed)
}

// DragEnd implements fyne.Draggable
func (p *Preview) DragEnd() {}

// Scrolled zooms the camera
func (p *Preview) Scrolled(event *fyne.ScrollEvent) {
	if p.scene == nil {
		return
	}
	p.scene.Camera.Controls.Zoom(-float64(event.Scrolled.DY) * zoomSpeed)
	p.scene.Camera.Update()
	p.raster.Refresh()
}

// CreateRenderer implements fyne.Widget
func (p *Preview) CreateRenderer() fyne.WidgetRenderer {
	return &previewRenderer{preview: p}
}

type previewRenderer struct {
	preview *Preview
}

func (r *previewRenderer) Layout(size fyne.Size) {
	r.preview.raster.Resize(size)
}

func (r *previewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, Height)
}

func (r *previewRenderer) Refresh() {
	r.preview.raster.Refresh()
}

func (r *previewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.preview.raster}
}

// Destroy keeps the scene; the builder releases it on Close
func (r *previewRenderer) Destroy() {}
