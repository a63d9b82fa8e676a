package pondfeeder

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Feed button placement when anchored to the bottom of the window.
const (
	buttonWidth  = 160
	buttonHeight = 44
	buttonMargin = 20
)

var (
	buttonIdleColor = color.RGBA{R: 0x1d, G: 0x4e, B: 0xd8, A: 0xff}
	buttonHeldColor = color.RGBA{R: 0x06, G: 0x5f, B: 0x46, A: 0xff}
)

// Game adapts a SceneHandle to ebiten.Game. Update polls input and ticks the
// driver; Draw renders; Layout keeps the camera and renderer sized to the
// window.
type Game struct {
	handle *SceneHandle

	signal       *FeedSignal
	source       FeedSource
	button       *FeedButton
	anchorButton bool

	clock func() time.Duration

	overlay *StatsOverlay

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	injectQueue []syntheticGesture
	testRunner  *TestRunner

	width, height int
	// pinned is set by a scripted resize; Layout then keeps that size
	// instead of following the window.
	pinned bool
}

// NewGame creates a host loop for handle. A nil handle yields a game that
// draws nothing, matching the missing-container no-op.
func NewGame(handle *SceneHandle) *Game {
	start := time.Now()
	signal := NewFeedSignal()
	return &Game{
		handle:        handle,
		signal:        signal,
		source:        signal,
		clock:         func() time.Duration { return time.Since(start) },
		ScreenshotDir: "screenshots",
	}
}

// Signal returns the channel gestures are published on.
func (g *Game) Signal() *FeedSignal {
	return g.signal
}

// SetFeedButton attaches a feed control publishing to the game's signal. When
// anchored, the control is kept centered at the bottom of the window.
func (g *Game) SetFeedButton(b *FeedButton, anchored bool) error {
	if b == nil {
		log.Warn().Msg("no feed control, feeding disabled")
		return ErrMissingControl
	}
	b.signal = g.signal
	g.button = b
	g.anchorButton = anchored
	if anchored && g.width > 0 {
		g.placeButton(g.width, g.height)
	}
	return nil
}

// FeedButton returns the attached control, or nil.
func (g *Game) FeedButton() *FeedButton {
	return g.button
}

// SetFeedSource replaces where the feeding state is read from each tick.
func (g *Game) SetFeedSource(src FeedSource) {
	if src == nil {
		src = g.signal
	}
	g.source = src
}

// SetClock replaces the elapsed-time source used for the camera orbit.
func (g *Game) SetClock(fn func() time.Duration) {
	g.clock = fn
}

// ShowStats toggles the stats overlay.
func (g *Game) ShowStats(enabled bool) {
	if !enabled {
		g.overlay = nil
		return
	}
	if g.overlay == nil {
		g.overlay = NewStatsOverlay()
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.handle == nil {
		return nil
	}
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	if !g.processInjected() && g.button != nil {
		g.button.Poll()
	}
	g.step(1.0 / float64(ebiten.TPS()))
	return nil
}

// step reads the feed state once and runs one driver tick.
func (g *Game) step(dt float64) {
	feeding := g.source.Feeding()
	g.handle.Driver.Tick(g.clock(), feeding)
	if g.overlay != nil {
		g.overlay.update(dt)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.handle == nil {
		return
	}
	g.handle.Renderer.Render(screen, g.handle.Scene, g.handle.Camera)
	if g.button != nil {
		g.drawButton(screen)
	}
	if g.overlay != nil {
		g.overlay.draw(screen, g.handle)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen matches the window so
// the projection aspect tracks the container, unless a test script pinned a
// size with a resize step.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.pinned {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	if g.handle != nil {
		g.handle.Resize(width, height)
	}
	if g.button != nil && g.anchorButton {
		g.placeButton(width, height)
	}
}

func (g *Game) placeButton(width, height int) {
	g.button.Bounds = Rect{
		X:      float64(width-buttonWidth) / 2,
		Y:      float64(height - buttonHeight - buttonMargin),
		Width:  buttonWidth,
		Height: buttonHeight,
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	b := g.button.Bounds
	clr := buttonIdleColor
	if g.handle.Driver.State() == StateFeeding {
		clr = buttonHeldColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), clr, true)
	// DebugPrint glyphs are 6x16.
	tx := int(b.X + (b.Width-float64(len(g.button.Label)*6))/2)
	ty := int(b.Y + (b.Height-16)/2)
	ebitenutil.DebugPrintAt(screen, g.button.Label, tx, ty)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the tick rate. Zero keeps Ebitengine's default of 60.
	TPS int
}

// Run opens a resizable window and runs g until the window is closed.
func Run(g *Game, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(g)
}
