package pondfeeder

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- White pixel singleton (no sync.Once: drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized white source image for
// untextured triangles. It is the center pixel of a 3x3 image so that
// sampling never bleeds past its edges.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixelImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixelImage
}

// countTriangles returns the number of triangles in the visible subtree of n.
func countTriangles(n *Node) int {
	if !n.Visible {
		return 0
	}
	total := 0
	if n.Geometry != nil {
		total = n.Geometry.TriangleCount()
	}
	for _, c := range n.children {
		total += countTriangles(c)
	}
	return total
}
