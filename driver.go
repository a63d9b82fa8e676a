package pondfeeder

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the driver's feeding state.
type State uint8

const (
	StateIdle    State = iota // feed control released
	StateFeeding              // feed control held
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFeeding:
		return "feeding"
	default:
		return "unknown"
	}
}

// FeedSource reports whether the feed control is held. It is read once per
// tick by the host loop and passed into Driver.Tick.
type FeedSource interface {
	Feeding() bool
}

// FeederRest is the feeder rig's resting position.
var FeederRest = mgl64.Vec3{4, 0, 0}

// DriverConfig tunes the per-tick animation.
type DriverConfig struct {
	OrbitRadius float64
	OrbitRate   float64
	// Jitter is the full width of the random x/z offset applied to the feeder
	// while feeding.
	Jitter float64
	Rest   mgl64.Vec3
}

// DefaultDriverConfig returns the stock orbit and jitter settings.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		OrbitRadius: OrbitRadius,
		OrbitRate:   OrbitRate,
		Jitter:      0.05,
		Rest:        FeederRest,
	}
}

// Driver advances the animation one tick at a time. It never reads input or
// renders; the host passes the feeding state in and draws afterwards.
type Driver struct {
	config  DriverConfig
	camera  *PerspectiveCamera
	feeder  *Node
	emitter *Emitter
	rnd     func() float64

	state       State
	ticks       uint64
	transitions int
}

// NewDriver creates a driver for the given camera, feeder group and emitter.
// camera and feeder may be nil, in which case that part of the tick is skipped.
func NewDriver(camera *PerspectiveCamera, feeder *Node, emitter *Emitter, cfg DriverConfig) *Driver {
	return &Driver{
		config:  cfg,
		camera:  camera,
		feeder:  feeder,
		emitter: emitter,
		rnd:     rand.Float64,
	}
}

// SetRand replaces the random source used for feeder jitter.
func (d *Driver) SetRand(fn func() float64) {
	if fn == nil {
		fn = rand.Float64
	}
	d.rnd = fn
}

// Tick runs one frame of the animation. now is the elapsed wall-clock time
// since the animation started; feeding is the current state of the feed control.
func (d *Driver) Tick(now time.Duration, feeding bool) {
	d.ticks++

	if d.camera != nil {
		ms := float64(now) / float64(time.Millisecond)
		d.camera.Orbit(ms, d.config.OrbitRadius, d.config.OrbitRate)
	}

	next := StateIdle
	if feeding {
		next = StateFeeding
	}
	if next != d.state {
		d.transitions++
		log.Debug().Stringer("from", d.state).Stringer("to", next).Uint64("tick", d.ticks).Msg("feed state")
		d.state = next
	}

	if d.state == StateFeeding {
		d.emitter.Emit()
		if d.feeder != nil {
			rest := d.config.Rest
			d.feeder.Position = mgl64.Vec3{
				rest[0] + (d.rnd()-0.5)*d.config.Jitter,
				rest[1],
				rest[2] + (d.rnd()-0.5)*d.config.Jitter,
			}
		}
	} else if d.feeder != nil {
		d.feeder.Position = d.config.Rest
	}

	d.emitter.Advance()
}

// State returns the state observed by the last tick.
func (d *Driver) State() State {
	return d.state
}

// Ticks returns the number of ticks run.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Transitions returns the number of idle/feeding edges seen so far.
func (d *Driver) Transitions() int {
	return d.transitions
}

// Emitter returns the driver's pellet emitter.
func (d *Driver) Emitter() *Emitter {
	return d.emitter
}
