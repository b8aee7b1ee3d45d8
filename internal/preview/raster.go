package preview

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/geometry"
)

var (
	backgroundColor = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	edgeColor       = color.RGBA{R: 40, G: 30, B: 20, A: 255}
)

// edgeBias lets edges win the depth test against their own faces
const edgeBias = 0.5

type projected struct {
	x, y, z float64
}

// Rasterize draws the assembly with a depth buffer: lit faces first,
// then box outlines that are not hidden behind other faces.
func Rasterize(a *assembly.Assembly, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = backgroundColor.R, backgroundColor.G, backgroundColor.B, backgroundColor.A
	}
	if a == nil || width <= 0 || height <= 0 {
		return img
	}

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	cam := a.Camera
	w, h := float64(width), float64(height)
	project := func(v geometry.Vector3) (projected, bool) {
		x, y, z := cam.Project(v, w, h)
		return projected{x, y, z}, z > cam.Near
	}

	visible := a.Visible()
	for _, box := range visible {
		for _, tri := range box.Triangles() {
			// back-face culling
			if tri.Normal.Dot(cam.Position.Sub(tri.V1)) <= 0 {
				continue
			}
			p1, ok1 := project(tri.V1)
			p2, ok2 := project(tri.V2)
			p3, ok3 := project(tri.V3)
			if !ok1 || !ok2 || !ok3 {
				continue
			}
			lit := assembly.Lit(a.Lights, tri.Normal, box.Color)
			fillTriangleWithDepth(img, zbuffer, p1, p2, p3, color.RGBA{R: lit.R, G: lit.G, B: lit.B, A: 255})
		}
	}

	for _, box := range visible {
		for _, edge := range geometry.Edges(box.Position, box.Size) {
			p1, ok1 := project(edge[0])
			p2, ok2 := project(edge[1])
			if ok1 && ok2 {
				drawLineWithDepth(img, zbuffer, p1, p2, edgeColor)
			}
		}
	}
	return img
}

// fillTriangleWithDepth fills a triangle with scanlines, interpolating
// depth and keeping the nearest fragment per pixel.
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, p1, p2, p3 projected, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if p1.y > p2.y {
		p1, p2 = p2, p1
	}
	if p2.y > p3.y {
		p2, p3 = p3, p2
	}
	if p1.y > p2.y {
		p1, p2 = p2, p1
	}

	bounds := img.Bounds()
	width := bounds.Max.X

	for y := int(math.Max(0, math.Ceil(p1.y))); y <= int(math.Min(float64(bounds.Max.Y-1), p3.y)); y++ {
		fy := float64(y)

		// the long edge spans the whole triangle, the short one switches at p2
		long := interpolate(p1, p3, fy)
		short := interpolate(p2, p3, fy)
		if fy < p2.y {
			short = interpolate(p1, p2, fy)
		}
		xStart, xEnd, zStart, zEnd := long.x, short.x, long.z, short.z
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		for x := int(math.Max(0, math.Ceil(xStart))); x <= int(math.Min(float64(width-1), xEnd)); x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// interpolate returns the point of edge a-b at height y
func interpolate(a, b projected, y float64) projected {
	if a.y == b.y {
		return a
	}
	t := (y - a.y) / (b.y - a.y)
	return projected{x: a.x + t*(b.x-a.x), y: y, z: a.z + t*(b.z-a.z)}
}

// drawLineWithDepth is Bresenham's algorithm with a depth test
func drawLineWithDepth(img *image.RGBA, zbuffer []float64, p1, p2 projected, col color.RGBA) {
	bounds := img.Bounds()
	x1, y1 := int(math.Round(p1.x)), int(math.Round(p1.y))
	x2, y2 := int(math.Round(p2.x)), int(math.Round(p2.y))

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	steps := max(dx, dy)
	err := dx - dy

	for i := 0; ; i++ {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			t := 0.0
			if steps > 0 {
				t = float64(i) / float64(steps)
			}
			z := p1.z + t*(p2.z-p1.z)
			idx := y1*bounds.Max.X + x1
			if z <= zbuffer[idx]+edgeBias {
				img.SetRGBA(x1, y1, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
