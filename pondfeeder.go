package pondfeeder

import (
	"image/color"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// log is the package logger. It discards everything until SetLogger is called.
var log = zerolog.Nop()

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	log = l
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default material color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorHex converts a 0xRRGGBB value into an opaque Color.
func ColorHex(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// Scale multiplies the RGB components by f, leaving alpha untouched.
func (c Color) Scale(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A}
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle in screen pixels. The origin is the
// top-left corner with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a half-open [Min, Max) interval used for randomized values.
type Range struct {
	Min, Max float64
}

// Random draws a value from the range using rnd, which must return values in
// [0, 1). A nil rnd uses math/rand/v2.
func (r Range) Random(rnd func() float64) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	if rnd == nil {
		rnd = rand.Float64
	}
	return r.Min + rnd()*(r.Max-r.Min)
}
