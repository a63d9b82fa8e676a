package pondfeeder

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay shows FPS, TPS, the live pellet count and the feed state in the
// top-left corner. The text is refreshed every ~0.5 seconds.
type StatsOverlay struct {
	img        *ebiten.Image
	text       string
	sinceDraw  float64
	needsFrame bool
}

// NewStatsOverlay creates an overlay. Its image is allocated on first draw.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{needsFrame: true}
}

func (o *StatsOverlay) update(dt float64) {
	o.sinceDraw += dt
	if o.sinceDraw >= 0.5 {
		o.sinceDraw = 0
		o.needsFrame = true
	}
}

// statsText formats the overlay contents.
func statsText(fps, tps float64, pellets int, state State) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nPellets: %d\nState: %s", fps, tps, pellets, state)
}

func (o *StatsOverlay) draw(screen *ebiten.Image, h *SceneHandle) {
	if o.img == nil {
		// 130x68 fits four DebugPrint lines.
		o.img = ebiten.NewImage(130, 68)
	}
	if o.needsFrame {
		o.needsFrame = false
		o.text = statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), h.Emitter.AliveCount(), h.Driver.State())
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text)
	}
	screen.DrawImage(o.img, nil)
}
