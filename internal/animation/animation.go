// Package animation provides the light patterns the display task renders.
//
// The set of animations is closed: a Sparkle flicker and a rotating Presence
// display. They are modelled as a tagged union rather than an interface
// hierarchy so that every call site matches exhaustively over the two kinds
// and the set cannot be extended by accident from the outside.
package animation

import (
	"image/color"
	"time"
)

// Kind tags the variant held by an Animation.
type Kind int

const (
	KindSparkle Kind = iota
	KindPresence
)

// Animation is one lazy frame producer. The zero value is not usable; build
// instances with NewSparkle or NewPresence.
type Animation struct {
	kind     Kind
	sparkle  *Sparkle
	presence *Presence
}

// Next produces the next frame, or ok=false once the animation is exhausted.
// An exhausted animation stays exhausted.
func (a Animation) Next(now time.Time) ([]color.RGBA, bool) {
	switch a.kind {
	case KindSparkle:
		return a.sparkle.next(now)
	case KindPresence:
		return a.presence.next()
	}
	return nil, false
}

// Interruptable reports whether a pending animation may replace this one
// before it is exhausted.
func (a Animation) Interruptable() bool {
	switch a.kind {
	case KindSparkle:
		return a.sparkle.interruptable()
	case KindPresence:
		return true
	}
	return true
}

func (a Animation) Kind() Kind { return a.kind }

func (a Animation) String() string {
	switch a.kind {
	case KindSparkle:
		return "Sparkle"
	case KindPresence:
		return "Presence"
	}
	return "Unknown"
}
