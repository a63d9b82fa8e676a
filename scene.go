package pondfeeder

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Pellet appearance.
const (
	PelletRadius   = 0.05
	PelletSegments = 4
)

// PelletColor is the material color of feed pellets.
var PelletColor = ColorHex(0x451a03)

// Handle addresses a pooled render object owned by the scene. The zero Handle
// is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// pelletSlot is one entry in the scene's pellet render pool. gen is bumped on
// every release so stale handles are rejected.
type pelletSlot struct {
	node *Node
	gen  uint32
	used bool
}

// Scene owns the node tree, the lights, and the pooled pellet meshes.
type Scene struct {
	root  *Node
	debug bool

	// Background fills the frame before geometry is drawn.
	Background Color
	Ambient    *AmbientLight
	Sun        *DirectionalLight

	pelletGeom *Geometry
	slots      []pelletSlot
	free       []uint32
	attached   int
}

// NewScene creates an empty scene with a root group.
func NewScene() *Scene {
	return &Scene{
		root:       NewGroup("root"),
		Background: ColorHex(0x1e293b),
		pelletGeom: NewSphereGeometry(PelletRadius, PelletSegments, PelletSegments),
	}
}

// Root returns the scene's root group.
func (s *Scene) Root() *Node {
	return s.root
}

// Add attaches nodes directly under the root.
func (s *Scene) Add(nodes ...*Node) {
	for _, n := range nodes {
		s.root.AddChild(n)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, child count warnings are logged, and per-frame render stats
// are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// AttachPellet takes a pellet mesh from the pool, places it at pos and
// attaches it to the scene.
func (s *Scene) AttachPellet(pos mgl64.Vec3) Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, pelletSlot{
			node: NewMesh("pellet", s.pelletGeom, PelletColor),
			gen:  1,
		})
	}
	slot := &s.slots[idx]
	slot.used = true
	slot.node.Position = pos
	s.root.AddChild(slot.node)
	s.attached++
	return Handle{index: idx, gen: slot.gen}
}

// slot returns the live slot for h, or nil if h is stale or invalid.
func (s *Scene) slot(h Handle) *pelletSlot {
	if h.gen == 0 || int(h.index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[h.index]
	if !sl.used || sl.gen != h.gen {
		return nil
	}
	return sl
}

// MovePellet sets the position of an attached pellet. Stale handles are ignored.
func (s *Scene) MovePellet(h Handle, pos mgl64.Vec3) {
	if sl := s.slot(h); sl != nil {
		sl.node.Position = pos
	}
}

// DetachPellet removes the pellet from the scene and returns its mesh to the
// pool. It reports false for stale or invalid handles.
func (s *Scene) DetachPellet(h Handle) bool {
	sl := s.slot(h)
	if sl == nil {
		return false
	}
	sl.node.RemoveFromParent()
	sl.used = false
	sl.gen++
	s.free = append(s.free, h.index)
	s.attached--
	return true
}

// PelletAttached reports whether h refers to a pellet currently in the scene.
func (s *Scene) PelletAttached(h Handle) bool {
	sl := s.slot(h)
	return sl != nil && sl.node.Parent != nil
}

// AttachedPellets returns the number of pellets currently in the scene.
func (s *Scene) AttachedPellets() int {
	return s.attached
}
