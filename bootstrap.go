package pondfeeder

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrMissingContainer is returned by Initialize when there is no surface
	// to draw into.
	ErrMissingContainer = errors.New("pondfeeder: missing container")
	// ErrMissingControl is returned when a UI control the caller asked for
	// cannot be found.
	ErrMissingControl = errors.New("pondfeeder: missing control")
)

// Container is the display surface the scene renders into.
type Container interface {
	Size() (width, height int)
}

// FixedContainer is a Container with a constant size.
type FixedContainer struct {
	W, H int
}

// Size returns the fixed dimensions.
func (c FixedContainer) Size() (int, int) {
	return c.W, c.H
}

// Material colors.
var (
	waterColor   = ColorHex(0x0ea5e9)
	wallColor    = ColorHex(0x8b5e3c)
	bodyColor    = ColorHex(0xffffff)
	capColor     = ColorHex(0x1d4ed8)
	poleColor    = ColorHex(0x334155)
	sensorColor  = ColorHex(0x065f46)
	initialEye   = mgl64.Vec3{12, OrbitHeight, 12}
	sunPosition  = mgl64.Vec3{5, 10, 5}
	sensorOffset = mgl64.Vec3{4, 1.8, -2.8}
)

// SceneHandle bundles everything Initialize builds.
type SceneHandle struct {
	Scene    *Scene
	Camera   *PerspectiveCamera
	Renderer *Renderer
	Pond     *Node
	Feeder   *Node
	Sensor   *Node
	Emitter  *Emitter
	Driver   *Driver
}

// Options tune Initialize. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Emitter EmitterConfig
	Driver  DriverConfig
	Shadows bool
}

// DefaultOptions returns the stock scene settings.
func DefaultOptions() Options {
	return Options{
		Emitter: DefaultEmitterConfig(),
		Driver:  DefaultDriverConfig(),
		Shadows: true,
	}
}

// Initialize builds the camera, lights, static geometry, emitter and driver
// for a container with DefaultOptions.
func Initialize(c Container) (*SceneHandle, error) {
	return InitializeWith(c, DefaultOptions())
}

// InitializeWith is Initialize with explicit options. A nil or zero-area
// container yields ErrMissingContainer and no scene; callers treat that as
// "nothing to animate".
func InitializeWith(c Container, opts Options) (*SceneHandle, error) {
	if c == nil {
		log.Warn().Msg("no container, pond animation disabled")
		return nil, ErrMissingContainer
	}
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		log.Warn().Int("width", w).Int("height", h).Msg("container has no area, pond animation disabled")
		return nil, fmt.Errorf("%w: size %dx%d", ErrMissingContainer, w, h)
	}

	scene := NewScene()
	scene.Ambient = &AmbientLight{Color: ColorWhite, Intensity: 0.5}
	scene.Sun = &DirectionalLight{
		Color:      ColorWhite,
		Intensity:  1,
		Position:   sunPosition,
		CastShadow: true,
	}

	cam := NewPerspectiveCamera(DefaultFOV, float64(w)/float64(h), DefaultNear, DefaultFar)
	cam.Position = initialEye
	cam.LookAt(mgl64.Vec3{})

	renderer := NewRenderer(w, h)
	renderer.ShadowsEnabled = opts.Shadows

	pond := newPond()
	feeder := newFeeder(opts.Driver.Rest)
	sensor := newSensor()
	scene.Add(pond, feeder, sensor)

	emitter := NewEmitter(scene, opts.Emitter)
	driver := NewDriver(cam, feeder, emitter, opts.Driver)

	log.Info().Int("width", w).Int("height", h).
		Int("triangles", countTriangles(scene.root)).Msg("scene initialized")

	return &SceneHandle{
		Scene:    scene,
		Camera:   cam,
		Renderer: renderer,
		Pond:     pond,
		Feeder:   feeder,
		Sensor:   sensor,
		Emitter:  emitter,
		Driver:   driver,
	}, nil
}

// Resize applies a new container size to the handle's camera and renderer.
func (h *SceneHandle) Resize(width, height int) {
	Resize(h.Camera, h.Renderer, width, height)
}

// newPond builds the basin: a floor slab and four walls, open at the top.
func newPond() *Node {
	pond := NewGroup("pond")

	floor := NewMesh("floor", NewBoxGeometry(10, 0.5, 6), waterColor)
	floor.RenderLayer = LayerGround
	pond.AddChild(floor)

	longWall := NewBoxGeometry(10.5, 2.5, 0.4)
	shortWall := NewBoxGeometry(0.4, 2.5, 6.5)
	walls := []struct {
		name string
		geom *Geometry
		pos  mgl64.Vec3
	}{
		{"wall_north", longWall, mgl64.Vec3{0, 1, 3}},
		{"wall_south", longWall, mgl64.Vec3{0, 1, -3}},
		{"wall_east", shortWall, mgl64.Vec3{5, 1, 0}},
		{"wall_west", shortWall, mgl64.Vec3{-5, 1, 0}},
	}
	for _, w := range walls {
		m := NewMesh(w.name, w.geom, wallColor)
		m.Position = w.pos
		pond.AddChild(m)
	}
	return pond
}

// newFeeder builds the feeder rig: hopper body, lid, support pole and antenna,
// grouped so the driver can shake it as one piece.
func newFeeder(rest mgl64.Vec3) *Node {
	feeder := NewGroup("feeder")

	body := NewMesh("body", NewCylinderGeometry(0.6, 0.4, 2, 16), bodyColor)
	body.SetPosition(0, 4, 0)

	lid := NewMesh("cap", NewCylinderGeometry(0.7, 0.6, 0.2, 16), capColor)
	lid.SetPosition(0, 5, 0)

	pole := NewMesh("pole", NewCylinderGeometry(0.1, 0.1, 4.5, 8), poleColor)
	pole.SetPosition(1, 2, 0)

	antenna := NewMesh("antenna", NewBoxGeometry(0.02, 0.5, 0.02), poleColor)
	antenna.SetPosition(0, 5.3, 0)

	for _, part := range []*Node{body, lid, pole, antenna} {
		part.CastShadow = true
		feeder.AddChild(part)
	}
	feeder.Position = rest
	return feeder
}

// newSensor builds the decorative water sensor on the south wall.
func newSensor() *Node {
	sensor := NewMesh("sensor", NewBoxGeometry(0.5, 0.3, 0.1), sensorColor)
	sensor.Position = sensorOffset
	return sensor
}
