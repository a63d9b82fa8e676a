// Package pondfeeder renders a small 3D fish pond with an automatic feeder on
// top of [Ebitengine].
//
// The scene is built once by [Initialize]: a rectangular pond basin, a
// feeder rig standing on the pond edge, and a decorative sensor box, lit by
// an ambient and a shadow-casting directional light. A perspective camera
// orbits the pond continuously.
//
// While the feed control is held, the [Driver] asks the [Emitter] for two
// pellets per tick and shakes the feeder rig. Pellets fall under a constant
// per-tick gravity decrement and are removed once they drop below the water
// line.
//
// # Quick start
//
//	handle, err := pondfeeder.Initialize(pondfeeder.FixedContainer{W: 960, H: 540})
//	if err != nil {
//		return err // ErrMissingContainer: nothing to draw into
//	}
//	pondfeeder.Run(pondfeeder.NewGame(handle), pondfeeder.RunConfig{Title: "Pond", Width: 960, Height: 540})
//
// # Host independence
//
// [Driver.Tick] takes the current time and the feeding state as arguments and
// never touches the window, so it can be stepped from tests or any other
// frame source. [Game] is the Ebitengine adapter that wires input, ticking,
// resizing and drawing together.
//
// [Ebitengine]: https://ebitengine.org
package pondfeeder
