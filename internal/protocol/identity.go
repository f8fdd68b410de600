package protocol

import (
	"fmt"
	"net"
)

// IdentityKey folds a 6 byte radio address into a 32 bit key, XOR-combining
// the two most significant byte pairs. It is deterministic, so the same
// badge always maps to the same key, but distinct addresses can collide.
// That is an accepted trade-off for a 4 byte key, not a security property.
//
// addr[0] is the most significant byte as received, so
// 01:02:03:04:05:06 becomes 0x02060506.
func IdentityKey(addr [6]byte) uint32 {
	return uint32(addr[5]) |
		uint32(addr[4])<<8 |
		uint32(addr[3]^addr[1])<<16 |
		uint32(addr[2]^addr[0])<<24
}

// ParseAddress converts a textual MAC address ("AA:BB:CC:DD:EE:FF") into the
// 6 byte form IdentityKey expects.
func ParseAddress(s string) ([6]byte, error) {
	var addr [6]byte
	hw, err := net.ParseMAC(s)
	if err != nil {
		return addr, err
	}
	if len(hw) != 6 {
		return addr, fmt.Errorf("address %q is not 6 bytes", s)
	}
	copy(addr[:], hw)
	return addr, nil
}
