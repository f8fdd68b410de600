package protocol

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soulColour() color.RGBA {
	return color.RGBA{R: 0x20, G: 0xC0, B: 0x60, A: 0xFF}
}

func TestIdentityKey(t *testing.T) {
	addr := [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	assert.Equal(t, uint32(0x02060506), IdentityKey(addr))
}

func TestIdentityKeyDeterministic(t *testing.T) {
	addr := [6]byte{0xFF, 0x8F, 0x1A, 0x05, 0xE4, 0xFF}
	first := IdentityKey(addr)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, IdentityKey(addr))
	}
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("01:02:03:04:05:06")
	require.NoError(t, err)
	assert.Equal(t, [6]byte{1, 2, 3, 4, 5, 6}, addr)

	_, err = ParseAddress("not-a-mac")
	assert.Error(t, err)
}

func TestEncodeBeaconRoundTrip(t *testing.T) {
	payload, err := EncodeBeacon("Ember", soulColour(), -8)
	require.NoError(t, err)
	require.LessOrEqual(t, len(payload), MaxAdvLen)

	addr := [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	msg, ok := DecodeReport(payload, -55, addr)
	require.True(t, ok)

	assert.Equal(t, "Ember", msg.Name)
	assert.Equal(t, soulColour(), msg.Colour)
	assert.Equal(t, int8(-8), msg.TxPower)
	assert.Equal(t, int16(-55), msg.RSSI)
	assert.Equal(t, IdentityKey(addr), msg.Key)
	assert.False(t, msg.LastSeen.IsZero())
}

func TestEncodeBeaconTooLong(t *testing.T) {
	_, err := EncodeBeacon("this name is far too long for a beacon", soulColour(), 0)
	assert.Error(t, err)
}

func TestDecodeReportTrailingZeroPadding(t *testing.T) {
	payload, err := EncodeBeacon("Kelp", soulColour(), 4)
	require.NoError(t, err)

	// Controllers pad scan reports out to the PDU size with zeros.
	padded := make([]byte, MaxAdvLen)
	copy(padded, payload)

	msg, ok := DecodeReport(padded, -60, [6]byte{1, 2, 3, 4, 5, 6})
	require.True(t, ok)
	assert.Equal(t, "Kelp", msg.Name)
}

func TestDecodeReportFiltersForeignCompany(t *testing.T) {
	// Well-formed advertisement, wrong company ID.
	raw := []byte{
		6, 0xFF, 0x4C, 0x00, 0x10, 0x20, 0x30,
	}
	_, ok := DecodeReport(raw, -50, [6]byte{1, 2, 3, 4, 5, 6})
	assert.False(t, ok)
}

func TestDecodeReportFiltersWrongPayloadSize(t *testing.T) {
	// Our company ID but four payload bytes instead of three.
	raw := []byte{
		7, 0xFF, 0xEF, 0xBE, 0x10, 0x20, 0x30, 0x40,
	}
	_, ok := DecodeReport(raw, -50, [6]byte{1, 2, 3, 4, 5, 6})
	assert.False(t, ok)
}

func TestDecodeReportFiltersNoManufacturerData(t *testing.T) {
	raw := []byte{
		5, 0x09, 'p', 'h', 'o', 'n', // name-only advertisement
	}
	_, ok := DecodeReport(raw, -50, [6]byte{1, 2, 3, 4, 5, 6})
	assert.False(t, ok)
}

func TestDecodeReportFiltersMalformed(t *testing.T) {
	// Length byte runs past the end of the payload.
	raw := []byte{
		6, 0xFF, 0xEF, 0xBE, 0x10,
	}
	_, ok := DecodeReport(raw, -50, [6]byte{1, 2, 3, 4, 5, 6})
	assert.False(t, ok)
}

func TestDecodeReportDefaults(t *testing.T) {
	// Manufacturer block only: no name, no tx power field.
	raw := []byte{
		6, 0xFF, 0xEF, 0xBE, 0x10, 0x20, 0x30,
	}
	msg, ok := DecodeReport(raw, -50, [6]byte{1, 2, 3, 4, 5, 6})
	require.True(t, ok)
	assert.Equal(t, UnknownName, msg.Name)
	assert.Equal(t, int8(0), msg.TxPower)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, msg.Colour)
}

func TestDecodeReportEmpty(t *testing.T) {
	_, ok := DecodeReport(nil, -50, [6]byte{1, 2, 3, 4, 5, 6})
	assert.False(t, ok)
}
