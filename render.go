package pondfeeder

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// ShadowColor is the tint of flattened shadow triangles.
var ShadowColor = Color{0, 0, 0, 0.3}

// DefaultShadowPlaneY is the top of the pond floor.
const DefaultShadowPlaneY = 0.25

const defaultCommandCap = 1024

// RenderCommand is a single screen-space triangle emitted during traversal.
type RenderCommand struct {
	Points      [3][2]float32
	Color       Color
	Depth       float64
	RenderLayer uint8
	treeOrder   int
}

// Renderer draws a Scene through a PerspectiveCamera into an ebiten.Image.
// Triangles are flat shaded and painted back to front.
type Renderer struct {
	width, height int

	// ShadowsEnabled draws planar shadows for CastShadow meshes when the
	// scene's sun casts shadows.
	ShadowsEnabled bool
	// ShadowPlaneY is the height shadows are flattened onto.
	ShadowPlaneY float64

	commands []RenderCommand
	sortBuf  []RenderCommand
	verts    []ebiten.Vertex
	inds     []uint16

	debug bool
	stats debugStats
}

// NewRenderer creates a renderer with the given target size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:          width,
		height:         height,
		ShadowsEnabled: true,
		ShadowPlaneY:   DefaultShadowPlaneY,
		commands:       make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:        make([]RenderCommand, 0, defaultCommandCap),
	}
}

// SetSize sets the render target dimensions in pixels.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Size returns the render target dimensions in pixels.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Commands returns the commands built by the last Render or BuildCommands
// call, in draw order. The returned slice MUST NOT be mutated.
func (r *Renderer) Commands() []RenderCommand {
	return r.commands
}

// Render clears target to the scene background and draws the scene.
func (r *Renderer) Render(target *ebiten.Image, scene *Scene, cam *PerspectiveCamera) {
	if target == nil || scene == nil || cam == nil {
		return
	}
	r.debug = scene.debug
	var t0 time.Time
	if r.debug {
		r.stats = debugStats{}
		t0 = time.Now()
	}

	target.Fill(scene.Background.toRGBA())
	r.BuildCommands(scene, cam)

	if r.debug {
		r.stats.buildTime = time.Since(t0)
		r.stats.commandCount = len(r.commands)
		t0 = time.Now()
	}

	r.submitBatches(target)

	if r.debug {
		r.stats.submitTime = time.Since(t0)
		r.debugLog(r.stats)
	}
}

// BuildCommands traverses the scene and fills the sorted command list without
// drawing anything.
func (r *Renderer) BuildCommands(scene *Scene, cam *PerspectiveCamera) {
	r.commands = r.commands[:0]
	updateWorldMatrix(scene.root, mgl64.Ident4())

	viewProj := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	treeOrder := 0
	r.traverse(scene, scene.root, cam, viewProj, &treeOrder)

	if r.ShadowsEnabled && scene.Sun != nil && scene.Sun.CastShadow {
		r.traverseShadows(scene.root, scene.Sun.Direction(), cam, viewProj, &treeOrder)
	}

	r.mergeSort()
}

// traverse emits one command per visible, front-facing triangle.
func (r *Renderer) traverse(scene *Scene, n *Node, cam *PerspectiveCamera, viewProj mgl64.Mat4, treeOrder *int) {
	if !n.Visible {
		return
	}
	if g := n.Geometry; g != nil {
		w, h := float64(r.width), float64(r.height)
		for i := 0; i < g.TriangleCount(); i++ {
			la, lb, lc := g.Triangle(i)
			a := mgl64.TransformCoordinate(la, n.worldMatrix)
			b := mgl64.TransformCoordinate(lb, n.worldMatrix)
			c := mgl64.TransformCoordinate(lc, n.worldMatrix)

			normal := b.Sub(a).Cross(c.Sub(a))
			if normal.Len() == 0 || normal.Dot(cam.Position.Sub(a)) <= 0 {
				continue
			}
			normal = normal.Normalize()

			cmd, ok := projectTriangle(viewProj, cam.Near, w, h, a, b, c)
			if !ok {
				continue
			}
			*treeOrder++
			cmd.Color = shade(n.Color, normal, scene.Ambient, scene.Sun)
			cmd.RenderLayer = n.RenderLayer
			cmd.treeOrder = *treeOrder
			r.commands = append(r.commands, cmd)
		}
	}
	for _, child := range n.children {
		r.traverse(scene, child, cam, viewProj, treeOrder)
	}
}

// traverseShadows flattens the light-facing triangles of shadow casters onto
// the shadow plane.
func (r *Renderer) traverseShadows(n *Node, lightDir mgl64.Vec3, cam *PerspectiveCamera, viewProj mgl64.Mat4, treeOrder *int) {
	if !n.Visible {
		return
	}
	if g := n.Geometry; g != nil && n.CastShadow {
		w, h := float64(r.width), float64(r.height)
		for i := 0; i < g.TriangleCount(); i++ {
			la, lb, lc := g.Triangle(i)
			a := mgl64.TransformCoordinate(la, n.worldMatrix)
			b := mgl64.TransformCoordinate(lb, n.worldMatrix)
			c := mgl64.TransformCoordinate(lc, n.worldMatrix)
			if b.Sub(a).Cross(c.Sub(a)).Dot(lightDir) <= 0 {
				continue
			}
			sa, okA := projectOntoPlane(a, lightDir, r.ShadowPlaneY)
			sb, okB := projectOntoPlane(b, lightDir, r.ShadowPlaneY)
			sc, okC := projectOntoPlane(c, lightDir, r.ShadowPlaneY)
			if !okA || !okB || !okC {
				continue
			}
			cmd, ok := projectTriangle(viewProj, cam.Near, w, h, sa, sb, sc)
			if !ok {
				continue
			}
			*treeOrder++
			cmd.Color = ShadowColor
			cmd.RenderLayer = LayerShadow
			cmd.treeOrder = *treeOrder
			r.commands = append(r.commands, cmd)
		}
	}
	for _, child := range n.children {
		r.traverseShadows(child, lightDir, cam, viewProj, treeOrder)
	}
}

// projectTriangle projects a world-space triangle to screen space. Triangles
// with any corner in front of the near plane are dropped.
func projectTriangle(viewProj mgl64.Mat4, near, w, h float64, a, b, c mgl64.Vec3) (RenderCommand, bool) {
	var cmd RenderCommand
	var depth float64
	for i, p := range [3]mgl64.Vec3{a, b, c} {
		sx, sy, d, ok := projectPoint(viewProj, p, w, h)
		if !ok || d < near {
			return RenderCommand{}, false
		}
		cmd.Points[i] = [2]float32{float32(sx), float32(sy)}
		depth += d
	}
	cmd.Depth = depth / 3
	return cmd, true
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should be drawn before or at the same
// position as b: lower layers first, then farther triangles first. Using <=
// for treeOrder keeps the sort stable.
func commandLessOrEqual(a, b RenderCommand) bool {
	if a.RenderLayer != b.RenderLayer {
		return a.RenderLayer < b.RenderLayer
	}
	if a.Depth != b.Depth {
		return a.Depth > b.Depth
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts r.commands in-place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (r *Renderer) mergeSort() {
	n := len(r.commands)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]RenderCommand, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.commands
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.commands, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
