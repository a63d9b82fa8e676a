package pondfeeder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is an indexed triangle list in local space. Triangles wind
// counter-clockwise when seen from outside the solid.
type Geometry struct {
	Positions []mgl64.Vec3
	Indices   []uint16
}

// TriangleCount returns the number of triangles in the geometry.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Triangle returns the three local-space corners of triangle i.
func (g *Geometry) Triangle(i int) (a, b, c mgl64.Vec3) {
	return g.Positions[g.Indices[i*3]], g.Positions[g.Indices[i*3+1]], g.Positions[g.Indices[i*3+2]]
}

// boxFace describes one side of a box: outward normal n and in-plane axes u, v
// with u x v = n.
type boxFace struct {
	n, u, v mgl64.Vec3
}

var boxFaces = [6]boxFace{
	{mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 1, 0}},
	{mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0}},
	{mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
	{mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}},
	{mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
	{mgl64.Vec3{0, 0, -1}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 1, 0}},
}

// NewBoxGeometry builds an axis-aligned box of the given width (x), height (y)
// and depth (z) centered on the origin.
func NewBoxGeometry(width, height, depth float64) *Geometry {
	half := mgl64.Vec3{width / 2, height / 2, depth / 2}
	g := &Geometry{
		Positions: make([]mgl64.Vec3, 0, 24),
		Indices:   make([]uint16, 0, 36),
	}
	for _, f := range boxFaces {
		c := mulElem(f.n, half)
		u := mulElem(f.u, half)
		v := mulElem(f.v, half)
		base := uint16(len(g.Positions))
		g.Positions = append(g.Positions,
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
		)
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// NewCylinderGeometry builds a cylinder (or truncated cone) along the y axis,
// centered on the origin. A radius of zero omits that cap.
func NewCylinderGeometry(radiusTop, radiusBottom, height float64, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	hy := height / 2
	g := &Geometry{
		Positions: make([]mgl64.Vec3, 0, segments*2+2),
		Indices:   make([]uint16, 0, segments*12),
	}
	// Ring vertices: bottom k at 2k, top k at 2k+1.
	for k := 0; k < segments; k++ {
		theta := 2 * math.Pi * float64(k) / float64(segments)
		sin, cos := math.Sincos(theta)
		g.Positions = append(g.Positions,
			mgl64.Vec3{radiusBottom * sin, -hy, radiusBottom * cos},
			mgl64.Vec3{radiusTop * sin, hy, radiusTop * cos},
		)
	}
	for k := 0; k < segments; k++ {
		next := (k + 1) % segments
		b0, t0 := uint16(2*k), uint16(2*k+1)
		b1, t1 := uint16(2*next), uint16(2*next+1)
		g.Indices = append(g.Indices, b0, b1, t1, b0, t1, t0)
	}
	if radiusTop > 0 {
		center := uint16(len(g.Positions))
		g.Positions = append(g.Positions, mgl64.Vec3{0, hy, 0})
		for k := 0; k < segments; k++ {
			next := (k + 1) % segments
			g.Indices = append(g.Indices, center, uint16(2*k+1), uint16(2*next+1))
		}
	}
	if radiusBottom > 0 {
		center := uint16(len(g.Positions))
		g.Positions = append(g.Positions, mgl64.Vec3{0, -hy, 0})
		for k := 0; k < segments; k++ {
			next := (k + 1) % segments
			g.Indices = append(g.Indices, center, uint16(2*next), uint16(2*k))
		}
	}
	return g
}

// NewSphereGeometry builds a UV sphere centered on the origin.
func NewSphereGeometry(radius float64, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	g := &Geometry{}
	grid := make([][]uint16, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		phi := math.Pi * float64(iy) / float64(heightSegments)
		sinPhi, cosPhi := math.Sincos(phi)
		row := make([]uint16, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			theta := 2 * math.Pi * float64(ix) / float64(widthSegments)
			sinTheta, cosTheta := math.Sincos(theta)
			row[ix] = uint16(len(g.Positions))
			g.Positions = append(g.Positions, mgl64.Vec3{
				-radius * cosTheta * sinPhi,
				radius * cosPhi,
				radius * sinTheta * sinPhi,
			})
		}
		grid[iy] = row
	}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}

// mulElem multiplies two vectors component-wise.
func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
