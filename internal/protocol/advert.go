// Package protocol owns the presence wire format: the outgoing beacon, the
// scan-report filter and the identity key derived from a radio address.
//
// The beacon is a legacy BLE advertisement, a sequence of length-type-value
// records inside a 31 byte payload. We broadcast four of them: the complete
// local name, the discoverability flags, a manufacturer data block tagged
// with our company ID carrying the soul colour, and the transmit power level.
package protocol

import (
	"encoding/binary"
	"fmt"
	"image/color"

	"soulstar.dev/internal/config"
)

// Advertising data record types, per the Bluetooth assigned numbers.
const (
	adFlags        = 0x01
	adShortName    = 0x08
	adCompleteName = 0x09
	adTxPower      = 0x0A
	adManufacturer = 0xFF
)

const (
	flagLEGeneralDiscoverable = 0x02
	flagBREDRNotSupported     = 0x04
)

// MaxAdvLen is the legacy advertising PDU payload limit.
const MaxAdvLen = 31

// EncodeBeacon builds the advertisement payload for this device. An encoded
// beacon that does not fit in MaxAdvLen is a configuration mistake, not a
// runtime condition: callers should fail at startup on a non-nil error.
func EncodeBeacon(name string, colour color.RGBA, txPower int8) ([]byte, error) {
	buf := make([]byte, 0, MaxAdvLen)

	// Complete local name.
	buf = append(buf, byte(1+len(name)), adCompleteName)
	buf = append(buf, name...)

	// Discoverability flags.
	buf = append(buf, 2, adFlags, flagLEGeneralDiscoverable|flagBREDRNotSupported)

	// Manufacturer data: company ID (little endian) + soul colour.
	buf = append(buf, 6, adManufacturer)
	buf = binary.LittleEndian.AppendUint16(buf, config.CompanyID)
	buf = append(buf, colour.R, colour.G, colour.B)

	// Transmit power level.
	buf = append(buf, 2, adTxPower, byte(txPower))

	if len(buf) > MaxAdvLen {
		return nil, fmt.Errorf("beacon is %d bytes, limit is %d (name %q too long?)",
			len(buf), MaxAdvLen, name)
	}
	return buf, nil
}
