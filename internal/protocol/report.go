package protocol

import (
	"encoding/binary"
	"image/color"
	"time"

	"soulstar.dev/internal/config"
)

// UnknownName is what a soul is called when its beacon carries no name.
const UnknownName = "[unnamed soul]"

// PresenceMessage is the decoded state of one peer as of its latest beacon.
type PresenceMessage struct {
	// Key identifies the peer; see IdentityKey.
	Key uint32
	// RSSI of the report that produced this message, in dBm.
	RSSI int16
	// TxPower the peer claims to transmit at, in dBm. Zero if absent.
	TxPower int8
	// LastSeen is when the report arrived.
	LastSeen time.Time
	Name     string
	Colour   color.RGBA
}

// DecodeReport parses a raw advertisement into a PresenceMessage.
//
// A report is accepted only if it carries a manufacturer data block with our
// company ID and exactly three payload bytes (the colour). Everything else -
// other vendors, malformed records, phone chatter - returns ok=false. That
// is filtering, not failure; the scanner sees far more foreign traffic than
// soul beacons.
func DecodeReport(raw []byte, rssi int16, addr [6]byte) (PresenceMessage, bool) {
	name := UnknownName
	var txPower int8
	var soulColour color.RGBA
	matched := false

	for i := 0; i < len(raw); {
		length := int(raw[i])
		if length == 0 {
			break // zero-length record terminates the payload
		}
		if i+1+length > len(raw) {
			return PresenceMessage{}, false
		}
		typ := raw[i+1]
		data := raw[i+2 : i+1+length]

		switch typ {
		case adCompleteName, adShortName:
			if len(data) > 0 {
				name = string(data)
			}
		case adTxPower:
			if len(data) == 1 {
				txPower = int8(data[0])
			}
		case adManufacturer:
			if len(data) == 5 && binary.LittleEndian.Uint16(data[:2]) == config.CompanyID {
				soulColour = color.RGBA{R: data[2], G: data[3], B: data[4], A: 0xFF}
				matched = true
			}
		}
		i += 1 + length
	}

	if !matched {
		return PresenceMessage{}, false
	}
	return PresenceMessage{
		Key:      IdentityKey(addr),
		RSSI:     rssi,
		TxPower:  txPower,
		LastSeen: time.Now(),
		Name:     name,
		Colour:   soulColour,
	}, true
}
