package pondfeeder

import (
	"github.com/go-gl/mathgl/mgl64"
)

// localMatrix returns T * Rz * Ry * Rx * S for the node's local transform.
func (n *Node) localMatrix() mgl64.Mat4 {
	m := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	if n.Rotation != (mgl64.Vec3{}) {
		m = m.Mul4(mgl64.HomogRotate3DZ(n.Rotation[2]))
		m = m.Mul4(mgl64.HomogRotate3DY(n.Rotation[1]))
		m = m.Mul4(mgl64.HomogRotate3DX(n.Rotation[0]))
	}
	if n.Scale != (mgl64.Vec3{1, 1, 1}) {
		m = m.Mul4(mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2]))
	}
	return m
}

// WorldMatrix composes the local transforms from the root down to n.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	if n.Parent == nil {
		return n.localMatrix()
	}
	return n.Parent.WorldMatrix().Mul4(n.localMatrix())
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	m := n.WorldMatrix()
	return m.Col(3).Vec3()
}

// updateWorldMatrix refreshes the cached world matrix of n and its subtree.
func updateWorldMatrix(n *Node, parent mgl64.Mat4) {
	n.worldMatrix = parent.Mul4(n.localMatrix())
	for _, c := range n.children {
		updateWorldMatrix(c, n.worldMatrix)
	}
}
