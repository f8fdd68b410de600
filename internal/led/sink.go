// Package led defines the output contract of the badge and its sinks: a
// ws2812 strip on hardware builds and a terminal ring for the simulator.
package led

import (
	"image/color"

	"soulstar.dev/internal/colour"
)

// Sink consumes rendered frames. Write applies gamma correction and the
// global brightness before the transfer. A Write error is fatal to the
// caller: there is no second display path to fall back to.
type Sink interface {
	Write(frame []color.RGBA, brightness uint8) error
}

// Correct returns a gamma-corrected, brightness-scaled copy of a frame.
// Shared by all sinks so every output path agrees on what a colour means.
func Correct(frame []color.RGBA, brightness uint8) []color.RGBA {
	out := make([]color.RGBA, len(frame))
	for i, px := range frame {
		out[i] = colour.SetBrightness(brightness, colour.Gamma(px))
	}
	return out
}
