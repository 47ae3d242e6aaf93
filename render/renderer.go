package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Garyljackson/3d-pipes/vmath"
)

// HUDRows is the number of terminal rows reserved below the viewport
const HUDRows = 2

// Renderer ray traces the scene into a Frame and flushes it to a tcell screen
type Renderer struct {
	Scene    *Scene
	Camera   *Camera
	Lighting Lighting

	frame *Frame
}

func NewRenderer(scene *Scene, camera *Camera) *Renderer {
	return &Renderer{
		Scene:    scene,
		Camera:   camera,
		Lighting: DefaultLighting(),
		frame:    NewFrame(0, 0),
	}
}

// Frame returns the last rendered frame
func (r *Renderer) Frame() *Frame { return r.frame }

// Rasterize renders the scene into a cols x rows cell viewport
func (r *Renderer) Rasterize(cols, rows int) *Frame {
	f := r.frame
	f.Resize(cols, rows)
	f.Clear(r.Lighting.Background)
	if f.width == 0 || f.height == 0 {
		return f
	}

	view := r.Camera.View(f.width, f.height)
	prims := r.Scene.Primitives()
	for i := range prims {
		r.trace(f, view, &prims[i])
	}
	return f
}

// trace shades every pixel inside the screen bounds of p that it covers
func (r *Renderer) trace(f *Frame, view View, p *Primitive) {
	x0, y0, x1, y1, ok := screenBounds(view, p, f.width, f.height)
	if !ok {
		return
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			rd := view.Ray(float64(x)+0.5, float64(y)+0.5)
			t, n, hit := p.Intersect(view.Eye, rd)
			if !hit || t >= f.Depth(x, y) {
				continue
			}
			toEye := vmath.V3FScale(rd, -1)
			if vmath.V3FDot(n, toEye) < 0 {
				n = vmath.V3FScale(n, -1)
			}
			f.Plot(x, y, t, r.Lighting.Shade(p.Material, n, toEye, t))
		}
	}
}

// screenBounds projects the bounding sphere of p to a clamped pixel rectangle
// A sphere crossing the near plane covers the whole frame
func screenBounds(view View, p *Primitive, w, h int) (x0, y0, x1, y1 int, ok bool) {
	cx, cy, depth, visible := view.Project(p.center)
	if depth+p.bound < near {
		return 0, 0, 0, 0, false
	}
	if !visible || depth-p.bound < near {
		return 0, 0, w - 1, h - 1, true
	}

	pr := p.bound*view.Focal/(depth-p.bound) + 1
	x0 = max(0, int(math.Floor(cx-pr)))
	y0 = max(0, int(math.Floor(cy-pr)))
	x1 = min(w-1, int(math.Ceil(cx+pr)))
	y1 = min(h-1, int(math.Ceil(cy+pr)))
	if x0 > x1 || y0 > y1 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}

// Draw renders a full frame plus HUD; the caller calls screen.Show
func (r *Renderer) Draw(screen tcell.Screen, hud HUD) {
	cols, rows := screen.Size()
	viewRows := max(0, rows-HUDRows)
	f := r.Rasterize(cols, viewRows)
	f.Flush(screen, 0)
	hud.Draw(screen, cols, rows)
}
