package animation

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulstar.dev/internal/tracker"
)

const stripLen = 24

func base() color.RGBA {
	return color.RGBA{R: 0x80, G: 0x40, B: 0xFF, A: 0xFF}
}

func TestSparkleEndlessIsInterruptable(t *testing.T) {
	anim := NewSparkle(base(), stripLen, 0)

	assert.True(t, anim.Interruptable())
	for i := 0; i < 50; i++ {
		frame, ok := anim.Next(time.Now())
		require.True(t, ok)
		require.Len(t, frame, stripLen)
	}
}

func TestSparkleScalesBaseColour(t *testing.T) {
	anim := NewSparkle(base(), stripLen, 0)

	frame, ok := anim.Next(time.Now())
	require.True(t, ok)
	for _, px := range frame {
		assert.LessOrEqual(t, px.R, base().R)
		assert.LessOrEqual(t, px.G, base().G)
		assert.LessOrEqual(t, px.B, base().B)
	}
}

func TestSparkleExpiry(t *testing.T) {
	anim := NewSparkle(base(), stripLen, time.Second)

	assert.False(t, anim.Interruptable())

	_, ok := anim.Next(time.Now())
	assert.True(t, ok)

	_, ok = anim.Next(time.Now().Add(2*time.Second))
	assert.False(t, ok)
}

func TestPresenceEmptySnapshotExhausted(t *testing.T) {
	anim := NewPresence(nil, stripLen)

	assert.True(t, anim.Interruptable())
	_, ok := anim.Next(time.Now())
	assert.False(t, ok)
}

func TestPresenceRotation(t *testing.T) {
	souls := tracker.VisibleSouls{
		{Colour: color.RGBA{R: 1, A: 0xFF}},
		{Colour: color.RGBA{G: 1, A: 0xFF}},
		{Colour: color.RGBA{B: 1, A: 0xFF}},
	}
	anim := NewPresence(souls, stripLen)

	frame0, ok := anim.Next(time.Now())
	require.True(t, ok)
	require.Len(t, frame0, stripLen)
	for i, s := range souls {
		assert.Equal(t, s.Colour, frame0[i])
	}

	// Frame k equals frame 0 rotated right by k mod strip length.
	for k := 1; k < 2*stripLen; k++ {
		frame, ok := anim.Next(time.Now())
		require.True(t, ok)
		for i := range frame0 {
			assert.Equal(t, frame0[i], frame[(i+k)%stripLen], "frame %d position %d", k, i)
		}
	}
}

func TestPresenceSnapshotIsCaptured(t *testing.T) {
	souls := tracker.VisibleSouls{{Colour: color.RGBA{R: 9, A: 0xFF}}}
	anim := NewPresence(souls, stripLen)

	// Mutating the caller's slice must not affect the animation.
	souls[0].Colour = color.RGBA{}

	frame, ok := anim.Next(time.Now())
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 9, A: 0xFF}, frame[0])
}

func TestThrobOscillates(t *testing.T) {
	th := NewThrob(0, Up, 64, 0, false)

	seenTop, seenBottom := false, false
	prev := uint8(0)
	for i := 0; i < 32; i++ {
		v, ok := th.Next()
		require.True(t, ok)
		if v == 255 {
			seenTop = true
		}
		if seenTop && v < prev {
			seenBottom = true
		}
		prev = v
	}
	assert.True(t, seenTop)
	assert.True(t, seenBottom)
}

func TestThrobOnceTerminates(t *testing.T) {
	th := NewThrob(0, Up, 64, 0, true)

	done := false
	for i := 0; i < 64; i++ {
		if _, ok := th.Next(); !ok {
			done = true
			break
		}
	}
	assert.True(t, done)
}

func TestAnimationString(t *testing.T) {
	assert.Equal(t, "Sparkle", NewSparkle(base(), stripLen, 0).String())
	assert.Equal(t, "Presence", NewPresence(nil, stripLen).String())
}
