package pondfeeder

import (
	"github.com/go-gl/mathgl/mgl64"
)

// nodeIDCounter is a plain counter (no atomic: the scene is only touched from
// the game goroutine).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Render layers, drawn in ascending order.
const (
	LayerGround  uint8 = iota // surfaces shadows fall on
	LayerShadow               // flattened shadow triangles
	LayerDefault              // everything else, depth sorted
)

// Node is the scene graph element. Groups are nodes without geometry; meshes
// carry a Geometry and a flat material color.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Local transform. Rotation is XYZ Euler angles in radians.
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3

	Visible bool

	// RenderLayer is the primary draw-order key; depth only orders commands
	// within a layer.
	RenderLayer uint8

	// Mesh fields (nil Geometry means group)
	Geometry   *Geometry
	Color      Color
	CastShadow bool

	// Computed during traversal.
	worldMatrix mgl64.Mat4

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = mgl64.Vec3{1, 1, 1}
	n.Color = ColorWhite
	n.Visible = true
	n.RenderLayer = LayerDefault
	n.worldMatrix = mgl64.Ident4()
}

// NewGroup creates a node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewMesh creates a node that draws geom with a flat color.
func NewMesh(name string, geom *Geometry, c Color) *Node {
	n := &Node{Name: name, Geometry: geom}
	nodeDefaults(n)
	n.Color = c
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("pondfeeder: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("pondfeeder: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("pondfeeder: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// SetPosition sets the local position.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = mgl64.Vec3{x, y, z}
}

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Geometry = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
