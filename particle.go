package pondfeeder

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is one falling feed pellet. Handle refers to the pellet mesh the
// particle owns in the scene.
type Particle struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Handle   Handle
}

// PelletSink receives the render side of the particle lifecycle. *Scene
// implements it.
type PelletSink interface {
	AttachPellet(pos mgl64.Vec3) Handle
	MovePellet(h Handle, pos mgl64.Vec3)
	DetachPellet(h Handle) bool
}

// EmitterConfig controls where pellets spawn and how they fall. Velocities
// and gravity are per tick, not per second.
type EmitterConfig struct {
	// SpawnPoint is the world-space drop point under the feeder.
	SpawnPoint mgl64.Vec3
	// VelocityX is the range of initial x velocities.
	VelocityX Range
	// VelocityY is the fixed initial y velocity.
	VelocityY float64
	// VelocityZ is the range of initial z velocities.
	VelocityZ Range
	// Gravity is subtracted from every pellet's y velocity each tick.
	Gravity float64
	// GroundY is the height below which pellets are removed.
	GroundY float64
	// PerTick is the number of pellets Emit spawns per call.
	PerTick int
	// MaxParticles caps the live set for Emit. Zero means unbounded.
	MaxParticles int
}

// DefaultEmitterConfig returns the stock feeder behavior: two pellets per tick
// dropped from (4, 3.2, 0), drifting toward negative x.
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		SpawnPoint: mgl64.Vec3{4, 3.2, 0},
		VelocityX:  Range{-0.15, -0.05},
		VelocityY:  -0.05,
		VelocityZ:  Range{-0.04, 0.04},
		Gravity:    0.003,
		GroundY:    0.5,
		PerTick:    2,
	}
}

// Emitter owns the live set of pellets.
type Emitter struct {
	config    EmitterConfig
	particles []Particle
	sink      PelletSink
	rnd       func() float64
}

// NewEmitter creates an emitter that attaches pellet meshes to sink.
func NewEmitter(sink PelletSink, cfg EmitterConfig) *Emitter {
	return &Emitter{
		config: cfg,
		sink:   sink,
		rnd:    rand.Float64,
	}
}

// SetRand replaces the random source. fn must return values in [0, 1).
func (e *Emitter) SetRand(fn func() float64) {
	if fn == nil {
		fn = rand.Float64
	}
	e.rnd = fn
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *Emitter) Config() *EmitterConfig {
	return &e.config
}

// Spawn creates one pellet at the spawn point, adds it to the live set and
// attaches its mesh to the scene.
func (e *Emitter) Spawn() Particle {
	p := Particle{
		Position: e.config.SpawnPoint,
		Velocity: mgl64.Vec3{
			e.config.VelocityX.Random(e.rnd),
			e.config.VelocityY,
			e.config.VelocityZ.Random(e.rnd),
		},
	}
	p.Handle = e.sink.AttachPellet(p.Position)
	e.particles = append(e.particles, p)
	return p
}

// Emit spawns PerTick pellets, stopping early at MaxParticles. It returns the
// number spawned.
func (e *Emitter) Emit() int {
	n := 0
	for i := 0; i < e.config.PerTick; i++ {
		if e.config.MaxParticles > 0 && len(e.particles) >= e.config.MaxParticles {
			break
		}
		e.Spawn()
		n++
	}
	return n
}

// Advance integrates every live pellet by one tick and prunes those that fell
// below GroundY. It returns the number removed.
func (e *Emitter) Advance() int {
	removed := 0
	// Walk backwards so swap-removal only moves already-advanced entries.
	for i := len(e.particles) - 1; i >= 0; i-- {
		p := &e.particles[i]
		p.Position = p.Position.Add(p.Velocity)
		p.Velocity[1] -= e.config.Gravity

		if p.Position[1] < e.config.GroundY {
			e.sink.DetachPellet(p.Handle)
			last := len(e.particles) - 1
			e.particles[i] = e.particles[last]
			e.particles[last] = Particle{}
			e.particles = e.particles[:last]
			removed++
			continue
		}
		e.sink.MovePellet(p.Handle, p.Position)
	}
	return removed
}

// Particles returns the live set. The returned slice MUST NOT be mutated and
// is only valid until the next Spawn, Advance or Reset.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// AliveCount returns the number of live pellets.
func (e *Emitter) AliveCount() int {
	return len(e.particles)
}

// Reset detaches every live pellet and empties the live set.
func (e *Emitter) Reset() {
	for i := range e.particles {
		e.sink.DetachPellet(e.particles[i].Handle)
	}
	clear(e.particles)
	e.particles = e.particles[:0]
}
