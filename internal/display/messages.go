package display

import "soulstar.dev/internal/protocol"

// Msg is a control message for the display task. Producers send exactly one
// of the concrete types below; the task consumes each message exactly once.
type Msg interface{}

// Stop suspends animation ticks without touching the LEDs.
type Stop struct{}

// Start resumes animation ticks.
type Start struct{}

// Off clears the LEDs and suspends animation ticks.
type Off struct{}

// On resumes animation ticks after Off.
type On struct{}

// Torch bypasses the animation with solid white at the current brightness
// while On is true.
type Torch struct {
	On bool
}

// Brightness sets the global brightness applied at output.
type Brightness struct {
	Level uint8
}

// PresenceUpdate forwards a decoded peer beacon to the tracker.
type PresenceUpdate struct {
	Msg protocol.PresenceMessage
}

// TrySend is the non-blocking send used from contexts that must not wait,
// such as the radio scan callback. On a full channel the message is dropped
// and false returned; peers re-broadcast, so the state heals on the next
// report.
func TrySend(ch chan<- Msg, msg Msg) bool {
	select {
	case ch <- msg:
		return true
	default:
		return false
	}
}
