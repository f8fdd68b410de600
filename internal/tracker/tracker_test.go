package tracker

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulstar.dev/internal/protocol"
)

const flushAge = 15 * time.Second

func msg(key uint32, rssi int16, seen time.Time) protocol.PresenceMessage {
	return protocol.PresenceMessage{
		Key:      key,
		RSSI:     rssi,
		TxPower:  4,
		LastSeen: seen,
		Name:     "Ember",
		Colour:   color.RGBA{R: 0xFF, G: 0x45, B: 0x00, A: 0xFF},
	}
}

func TestUpdateNewSoul(t *testing.T) {
	trk := New(16, flushAge)

	assert.True(t, trk.Update(msg(0xABCD, -50, time.Now())))
	assert.Equal(t, 1, trk.Count())
}

func TestUpdateRefreshOverwrites(t *testing.T) {
	trk := New(16, flushAge)
	now := time.Now()

	require.True(t, trk.Update(msg(0xABCD, -50, now)))

	refreshed := msg(0xABCD, -70, now.Add(time.Second))
	refreshed.Colour = color.RGBA{R: 0x00, G: 0x47, B: 0xAB, A: 0xFF}
	assert.False(t, trk.Update(refreshed))
	assert.Equal(t, 1, trk.Count())

	souls := trk.Souls()
	require.Len(t, souls, 1)
	assert.Equal(t, int16(-70), souls[0].RSSI)
	assert.Equal(t, refreshed.Colour, souls[0].Colour)
	assert.Equal(t, refreshed.LastSeen, souls[0].LastSeen)
}

func TestUpdateAtCapacityDrops(t *testing.T) {
	trk := New(2, flushAge)
	now := time.Now()

	require.True(t, trk.Update(msg(1, -50, now)))
	require.True(t, trk.Update(msg(2, -50, now)))
	assert.False(t, trk.Update(msg(3, -50, now)))
	assert.Equal(t, 2, trk.Count())

	// An existing soul still refreshes at capacity.
	assert.False(t, trk.Update(msg(1, -40, now.Add(time.Second))))
	assert.Equal(t, 2, trk.Count())
}

func TestFlushRemovesStaleSouls(t *testing.T) {
	trk := New(16, flushAge)
	now := time.Now()

	trk.Update(msg(1, -50, now.Add(-flushAge-time.Second))) // stale
	trk.Update(msg(2, -50, now.Add(-flushAge)))             // exactly at the horizon: stale
	trk.Update(msg(3, -50, now))                            // fresh

	assert.True(t, trk.Flush(now))
	assert.Equal(t, 1, trk.Count())

	souls := trk.Souls()
	require.Len(t, souls, 1)
	assert.Equal(t, uint32(3), souls[0].Key)
}

func TestFlushNothingToDo(t *testing.T) {
	trk := New(16, flushAge)
	now := time.Now()

	trk.Update(msg(1, -50, now))
	assert.False(t, trk.Flush(now))
	assert.Equal(t, 1, trk.Count())
}

func TestSummary(t *testing.T) {
	trk := New(4, flushAge)
	now := time.Now()

	assert.Empty(t, trk.Summary())

	trk.Update(msg(1, -50, now))
	trk.Update(msg(2, -62, now))

	summary := trk.Summary()
	require.Len(t, summary, 2)
	assert.LessOrEqual(t, len(summary), 4)
	for _, s := range summary {
		// TxPower 4 minus RSSI of -50 or -62.
		assert.Contains(t, []int16{54, 66}, s.TxLoss)
	}
}

func TestSoulsSortedByRSSI(t *testing.T) {
	trk := New(16, flushAge)
	now := time.Now()

	trk.Update(msg(1, -80, now))
	trk.Update(msg(2, -40, now))
	trk.Update(msg(3, -60, now))

	souls := trk.Souls()
	require.Len(t, souls, 3)
	assert.Equal(t, uint32(2), souls[0].Key)
	assert.Equal(t, uint32(1), souls[2].Key)
}
