package animation

import (
	"math/rand"
	"time"

	"soulstar.dev/internal/colour"
)

// Direction of a brightness sweep.
type Direction int

const (
	Up Direction = iota
	Down
)

// Throb oscillates a brightness value between a floor and 255. It is not
// part of the animation union: it produces brightness levels, not frames,
// and feeds things like the scanning indicator pulse.
type Throb struct {
	brightness uint8
	direction  Direction
	step       int16
	min        uint8
	once       bool
}

// NewThrob creates a throb starting at brightness, moving in direction by
// step per call, never dipping below min. With once set it ends when the
// downward sweep reaches the floor.
func NewThrob(brightness uint8, direction Direction, step uint8, min uint8, once bool) *Throb {
	return &Throb{
		brightness: brightness,
		direction:  direction,
		step:       int16(step),
		min:        min,
		once:       once,
	}
}

// NewRandomThrob starts at a random brightness above min with a random step
// and direction.
func NewRandomThrob(min uint8) *Throb {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	dir := Up
	if rng.Intn(2) == 0 {
		dir = Down
	}
	return &Throb{
		brightness: min + uint8(rng.Intn(256-int(min))),
		direction:  dir,
		step:       int16(8 + rng.Intn(56)),
		min:        min,
	}
}

// Next returns the next brightness value, or ok=false when a one-shot throb
// has finished its downward sweep.
func (t *Throb) Next() (uint8, bool) {
	switch t.direction {
	case Up:
		t.brightness = colour.Clip(int16(t.brightness) + t.step)
		if t.brightness == 255 {
			t.direction = Down
		}
	case Down:
		t.brightness = colour.ClipMin(int16(t.brightness)-t.step, t.min)
		if t.brightness <= t.min {
			if t.once {
				return 0, false
			}
			t.direction = Up
		}
	}
	return t.brightness, true
}
