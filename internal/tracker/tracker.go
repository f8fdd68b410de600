// Package tracker keeps the bounded, time-windowed map of souls currently
// in range. It is the only state shared between the display task and the
// radio callback, so every operation takes the lock for exactly its own
// duration and nothing else - the lock never spans a channel send, a sleep
// or any other suspension.
package tracker

import (
	"image/color"
	"log/slog"
	"sort"
	"sync"
	"time"

	"soulstar.dev/internal/protocol"
)

// SoulSummary is the render-ready view of one soul.
type SoulSummary struct {
	Colour color.RGBA
	// TxLoss is the peer's advertised transmit power minus the received
	// signal strength; bigger means further away.
	TxLoss int16
}

// VisibleSouls is a snapshot of all current summaries. Order is whatever the
// map iteration produced; callers must not rely on it.
type VisibleSouls []SoulSummary

// Tracker is the presence register.
type Tracker struct {
	mu       sync.Mutex
	capacity int
	flushAge time.Duration
	souls    map[uint32]protocol.PresenceMessage
}

// New creates a tracker bounded to capacity entries; entries unseen for
// longer than flushAge are removed by Flush.
func New(capacity int, flushAge time.Duration) *Tracker {
	return &Tracker{
		capacity: capacity,
		flushAge: flushAge,
		souls:    make(map[uint32]protocol.PresenceMessage, capacity),
	}
}

// Update upserts a soul by its identity key and reports whether the key is
// new. A refresh overwrites every field of the stored message and returns
// false. Insertion at full capacity is logged and dropped; the device keeps
// running and the soul will be retried on its next beacon, most likely after
// a flush has made room.
func (t *Tracker) Update(msg protocol.PresenceMessage) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.souls[msg.Key]; ok {
		t.souls[msg.Key] = msg
		return false
	}
	if len(t.souls) >= t.capacity {
		slog.Error("tracker full, dropping soul", "key", msg.Key, "name", msg.Name, "capacity", t.capacity)
		return false
	}
	slog.Info("tracker adding soul", "key", msg.Key, "name", msg.Name)
	t.souls[msg.Key] = msg
	return true
}

// Flush removes every soul last seen at or before now minus the flush age.
// Returns true iff anything was removed.
func (t *Tracker) Flush(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	horizon := now.Add(-t.flushAge)
	removed := false
	for key, msg := range t.souls {
		if !msg.LastSeen.After(horizon) {
			slog.Info("tracker removing soul", "key", key, "name", msg.Name, "lastSeen", msg.LastSeen)
			delete(t.souls, key)
			removed = true
		}
	}
	return removed
}

// Summary snapshots the current souls for an animation to capture.
func (t *Tracker) Summary() VisibleSouls {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(VisibleSouls, 0, len(t.souls))
	for _, msg := range t.souls {
		out = append(out, SoulSummary{
			Colour: msg.Colour,
			TxLoss: int16(msg.TxPower) - msg.RSSI,
		})
	}
	return out
}

// Souls returns a copy of all current entries, strongest signal first.
// Used by the status display, not by animations.
func (t *Tracker) Souls() []protocol.PresenceMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]protocol.PresenceMessage, 0, len(t.souls))
	for _, msg := range t.souls {
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RSSI > out[j].RSSI
	})
	return out
}

// Count returns the number of tracked souls.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.souls)
}
