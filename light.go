package pondfeeder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AmbientLight lights every face equally.
type AmbientLight struct {
	Color     Color
	Intensity float64
}

// DirectionalLight shines from Position toward Target. When CastShadow is set
// and the renderer has shadows enabled, shadow-casting meshes are flattened
// onto the shadow plane along the light direction.
type DirectionalLight struct {
	Color      Color
	Intensity  float64
	Position   mgl64.Vec3
	Target     mgl64.Vec3
	CastShadow bool
}

// Direction returns the unit vector pointing from the target toward the light.
func (l *DirectionalLight) Direction() mgl64.Vec3 {
	d := l.Position.Sub(l.Target)
	if d.Len() == 0 {
		return mgl64.Vec3{0, 1, 0}
	}
	return d.Normalize()
}

// shade returns base lit by the ambient and directional lights for a face with
// the given unit normal. Either light may be nil.
func shade(base Color, normal mgl64.Vec3, ambient *AmbientLight, sun *DirectionalLight) Color {
	var r, g, b float64
	if ambient != nil {
		r += ambient.Color.R * ambient.Intensity
		g += ambient.Color.G * ambient.Intensity
		b += ambient.Color.B * ambient.Intensity
	}
	if sun != nil {
		lambert := math.Max(0, normal.Dot(sun.Direction())) * sun.Intensity
		r += sun.Color.R * lambert
		g += sun.Color.G * lambert
		b += sun.Color.B * lambert
	}
	return Color{
		R: clamp01(base.R * r),
		G: clamp01(base.G * g),
		B: clamp01(base.B * b),
		A: base.A,
	}
}

// projectOntoPlane slides p along dir until it reaches the horizontal plane
// y = planeY. ok is false when dir is parallel to the plane or p is below it.
func projectOntoPlane(p, dir mgl64.Vec3, planeY float64) (mgl64.Vec3, bool) {
	if dir[1] <= 1e-9 || p[1] < planeY {
		return mgl64.Vec3{}, false
	}
	t := (p[1] - planeY) / dir[1]
	return p.Sub(dir.Mul(t)), true
}
