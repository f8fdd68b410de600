// Package colour provides the pixel arithmetic shared by the animations and
// the LED sinks: brightness scaling, gamma correction and clipping.
package colour

import (
	"image/color"
	"math"
)

// gamma8 maps linear 8-bit intensity to the perceptual curve of WS2812-style
// LEDs. Built once at startup; 2.8 is the exponent the smart-LED world has
// settled on.
var gamma8 [256]uint8

func init() {
	for i := range gamma8 {
		gamma8[i] = uint8(math.Pow(float64(i)/255.0, 2.8)*255.0 + 0.5)
	}
}

// SetBrightness scales a pixel by brightness/255 per channel.
func SetBrightness(brightness uint8, pixel color.RGBA) color.RGBA {
	if brightness == 0 {
		return color.RGBA{A: pixel.A}
	}
	if brightness == 255 {
		return pixel
	}
	// u16 for the multiplication so it cannot overflow before the division.
	return color.RGBA{
		R: uint8(uint16(pixel.R) * uint16(brightness) / 255),
		G: uint8(uint16(pixel.G) * uint16(brightness) / 255),
		B: uint8(uint16(pixel.B) * uint16(brightness) / 255),
		A: pixel.A,
	}
}

// Gamma applies the gamma curve to each channel of a pixel.
func Gamma(pixel color.RGBA) color.RGBA {
	return color.RGBA{
		R: gamma8[pixel.R],
		G: gamma8[pixel.G],
		B: gamma8[pixel.B],
		A: pixel.A,
	}
}

// Clip clamps a value into the 0-255 range.
func Clip(v int16) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ClipMin clamps a value into the min-255 range.
func ClipMin(v int16, min uint8) uint8 {
	if v < int16(min) {
		return min
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
