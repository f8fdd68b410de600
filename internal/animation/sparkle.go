package animation

import (
	"image/color"
	"math/rand"
	"time"

	"soulstar.dev/internal/colour"
)

// Sparkle flickers the whole strip in one colour, each pixel at an
// independently drawn random brightness per frame.
type Sparkle struct {
	colour   color.RGBA
	stripLen int
	// expires is the instant past which next returns nothing. Zero means
	// the sparkle runs until interrupted.
	expires time.Time
	rng     *rand.Rand
}

// NewSparkle builds a sparkle animation over stripLen pixels. A zero ttl
// never expires and is interruptable; a positive ttl expires that long after
// creation and runs to completion uninterrupted, which is what announces a
// new arrival without the announcement being stomped by the next one.
//
// The generator seed is the monotonic clock at creation: visual variety
// only, nothing cryptographic.
func NewSparkle(c color.RGBA, stripLen int, ttl time.Duration) Animation {
	s := &Sparkle{
		colour:   c,
		stripLen: stripLen,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if ttl > 0 {
		s.expires = time.Now().Add(ttl)
	}
	return Animation{kind: KindSparkle, sparkle: s}
}

func (s *Sparkle) next(now time.Time) ([]color.RGBA, bool) {
	if !s.expires.IsZero() && !now.Before(s.expires) {
		return nil, false
	}
	frame := make([]color.RGBA, s.stripLen)
	for i := range frame {
		frame[i] = colour.SetBrightness(uint8(s.rng.Intn(256)), s.colour)
	}
	return frame, true
}

func (s *Sparkle) interruptable() bool {
	return s.expires.IsZero()
}
