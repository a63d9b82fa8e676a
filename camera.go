package pondfeeder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Default projection parameters.
const (
	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// Orbit parameters: the camera circles the origin at OrbitRadius, advancing
// OrbitRate radians per wall-clock millisecond, at a fixed OrbitHeight.
const (
	OrbitRadius = 15.0
	OrbitRate   = 0.0003
	OrbitHeight = 10.0
)

// PerspectiveCamera is a pinhole camera looking from Position at Target.
type PerspectiveCamera struct {
	// FOV is the vertical field of view in degrees.
	FOV    float64
	Aspect float64
	Near   float64
	Far    float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	projection mgl64.Mat4
}

// NewPerspectiveCamera creates a camera with the given projection parameters
// and computes its projection matrix.
func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl64.Vec3{0, 1, 0},
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection matrix. Call this after
// changing FOV, Aspect, Near or Far.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	aspect := c.Aspect
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = 1
	}
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the matrix computed by the last UpdateProjectionMatrix.
func (c *PerspectiveCamera) ProjectionMatrix() mgl64.Mat4 {
	return c.projection
}

// ViewMatrix returns the world-to-camera matrix.
func (c *PerspectiveCamera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// LookAt points the camera at target.
func (c *PerspectiveCamera) LookAt(target mgl64.Vec3) {
	c.Target = target
}

// OrbitPose returns the camera position on the orbit for the given elapsed
// wall-clock milliseconds.
func OrbitPose(ms, radius, rate float64) mgl64.Vec3 {
	t := ms * rate
	return mgl64.Vec3{math.Cos(t) * radius, OrbitHeight, math.Sin(t) * radius}
}

// Orbit places the camera on its orbit for the given elapsed milliseconds and
// aims it at the origin.
func (c *PerspectiveCamera) Orbit(ms, radius, rate float64) {
	c.Position = OrbitPose(ms, radius, rate)
	c.LookAt(mgl64.Vec3{})
}

// Project maps a world-space point to screen pixels for a viewport of the
// given size, with Y increasing downward. depth is the distance along the
// view axis; ok is false when the point lies behind the near plane.
func (c *PerspectiveCamera) Project(world mgl64.Vec3, width, height float64) (sx, sy, depth float64, ok bool) {
	return projectPoint(c.projection.Mul4(c.ViewMatrix()), world, width, height)
}

// projectPoint applies a combined view-projection matrix.
func projectPoint(viewProj mgl64.Mat4, world mgl64.Vec3, width, height float64) (sx, sy, depth float64, ok bool) {
	clip := viewProj.Mul4x1(world.Vec4(1))
	w := clip[3]
	if w <= 1e-9 {
		return 0, 0, 0, false
	}
	ndcX := clip[0] / w
	ndcY := clip[1] / w
	sx = (ndcX + 1) / 2 * width
	sy = (1 - ndcY) / 2 * height
	return sx, sy, w, true
}
