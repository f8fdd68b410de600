package animation

import (
	"image/color"

	"soulstar.dev/internal/tracker"
)

// Presence rotates the colours of the currently visible souls around the
// strip, one step per frame. The snapshot is captured at construction and
// never refreshed; the display task queues a fresh Presence whenever the
// tracker changes.
type Presence struct {
	souls    tracker.VisibleSouls
	stripLen int
	index    int
}

// NewPresence captures a soul snapshot. If the snapshot is empty the
// animation is exhausted from the first poll.
func NewPresence(souls tracker.VisibleSouls, stripLen int) Animation {
	captured := make(tracker.VisibleSouls, len(souls))
	copy(captured, souls)
	return Animation{kind: KindPresence, presence: &Presence{
		souls:    captured,
		stripLen: stripLen,
	}}
}

func (p *Presence) next() ([]color.RGBA, bool) {
	if len(p.souls) == 0 {
		return nil, false
	}
	frame := make([]color.RGBA, p.stripLen)
	for i, s := range p.souls {
		if i >= p.stripLen {
			break
		}
		frame[i] = s.Colour
	}
	rotateRight(frame, p.index)
	p.index = (p.index + 1) % p.stripLen
	return frame, true
}

// rotateRight shifts the frame right by n positions, wrapping around.
func rotateRight(frame []color.RGBA, n int) {
	if len(frame) == 0 {
		return
	}
	n %= len(frame)
	if n == 0 {
		return
	}
	tmp := make([]color.RGBA, len(frame))
	copy(tmp, frame)
	for i, px := range tmp {
		frame[(i+n)%len(frame)] = px
	}
}
