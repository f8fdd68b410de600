//go:build tinygo

package led

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// Strip drives a ws2812 LED string on hardware builds.
type Strip struct {
	dev ws2812.Device
}

// NewStrip configures the pin and wraps the ws2812 driver around it.
func NewStrip(pin machine.Pin) *Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &Strip{dev: ws2812.New(pin)}
}

func (s *Strip) Write(frame []color.RGBA, brightness uint8) error {
	return s.dev.WriteColors(Correct(frame, brightness))
}
