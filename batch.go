package pondfeeder

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVerts keeps indices within uint16 range.
const maxBatchVerts = 65535 - 3

// submitBatches converts the sorted commands into vertex batches and draws
// them with DrawTriangles.
func (r *Renderer) submitBatches(target *ebiten.Image) {
	if len(r.commands) == 0 {
		return
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	for i := range r.commands {
		if len(r.verts)+3 > maxBatchVerts {
			r.flush(target)
		}
		r.appendTriangle(&r.commands[i])
	}
	r.flush(target)
}

// appendTriangle writes one command's vertices into the current batch.
func (r *Renderer) appendTriangle(cmd *RenderCommand) {
	c := cmd.Color
	a := float32(clamp01(c.A))
	cr := float32(clamp01(c.R)) * a
	cg := float32(clamp01(c.G)) * a
	cb := float32(clamp01(c.B)) * a

	base := uint16(len(r.verts))
	for _, p := range cmd.Points {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   p[0],
			DstY:   p[1],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: a,
		})
	}
	r.inds = append(r.inds, base, base+1, base+2)
}

// flush draws the current batch and resets it.
func (r *Renderer) flush(target *ebiten.Image) {
	if len(r.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	target.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &op)
	if r.debug {
		r.stats.drawCallCount++
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}
