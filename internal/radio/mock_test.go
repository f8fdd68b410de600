package radio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulstar.dev/internal/config"
	"soulstar.dev/internal/display"
	"soulstar.dev/internal/protocol"
)

func TestMockFieldBeaconsDecode(t *testing.T) {
	cfg := config.Default()
	field := NewMockField(cfg, make(chan display.Msg, 64))

	require.NotEmpty(t, field.souls)
	for _, s := range field.souls {
		msg, ok := protocol.DecodeReport(s.payload, -50, s.addr)
		require.True(t, ok, "mock beacon must pass our own filter")
		assert.Equal(t, protocol.IdentityKey(s.addr), msg.Key)
		assert.NotEqual(t, protocol.UnknownName, msg.Name)
	}
}

func TestMockFieldEmit(t *testing.T) {
	cfg := config.Default()
	ctrl := make(chan display.Msg, 64)
	field := NewMockField(cfg, ctrl)

	field.emit(0)

	received := 0
	for {
		select {
		case msg := <-ctrl:
			update, ok := msg.(display.PresenceUpdate)
			require.True(t, ok)
			assert.NotZero(t, update.Msg.Colour.A)
			received++
		default:
			// Souls occasionally wander out of range, but a whole silent
			// field would mean the emit path is broken.
			assert.Greater(t, received, 0)
			return
		}
	}
}
