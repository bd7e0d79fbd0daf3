// Package address provides the 32-bit node address used throughout netforest.
//
// An [Address] is an immutable value with a canonical dotted-quad string form
// and a total order given by unsigned comparison of its 32-bit encoding. That
// order governs child ordering in bracket notation, layer ordering in level
// queries and the ordering of [network.Network.List].
//
// Addresses can only be obtained from a canonical string:
//
//	a, err := address.Parse("141.255.1.133")
//	if err != nil {
//	    // errors.Is(err, errors.ErrCodeInvalidAddress)
//	}
//
// Octets with a redundant leading zero ("01", "00"), surrounding whitespace,
// signs, and anything other than exactly four octets are rejected.
//
// [network.Network.List]: github.com/matzehuels/netforest/pkg/network.Network.List
package address

import (
	"cmp"
	"encoding/binary"
	"net/netip"
	"slices"

	"github.com/matzehuels/netforest/pkg/errors"
)

// Address is a 32-bit node address. The zero value is 0.0.0.0.
// Address values are comparable and safe to use as map keys.
type Address struct {
	ip uint32
}

// Parse parses a canonical dotted-quad string.
//
// Returns an error with code [errors.ErrCodeInvalidAddress] unless s consists
// of exactly four dot-separated decimal octets in [0,255], each written
// without a leading zero (a single "0" is allowed). IPv6 and IPv4-mapped IPv6
// forms are rejected.
func Parse(s string) (Address, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return Address{}, errors.Wrap(errors.ErrCodeInvalidAddress, err, "invalid address %q", s)
	}
	if !ip.Is4() {
		return Address{}, errors.New(errors.ErrCodeInvalidAddress, "invalid address %q: not a dotted-quad", s)
	}
	b := ip.As4()
	return Address{ip: binary.BigEndian.Uint32(b[:])}, nil
}

// MustParse is like [Parse] but panics on error.
// It is intended for literals in tests and examples.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromUint32 returns the address with the given 32-bit encoding.
func FromUint32(v uint32) Address { return Address{ip: v} }

// Uint32 returns the 32-bit encoding of a.
func (a Address) Uint32() uint32 { return a.ip }

// String returns the canonical dotted-quad form. It always round-trips
// through [Parse].
func (a Address) String() string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], a.ip)
	return netip.AddrFrom4(b).String()
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to or
// after b in unsigned numeric order.
func (a Address) Compare(b Address) int { return cmp.Compare(a.ip, b.ip) }

// Less reports whether a sorts before b.
func (a Address) Less(b Address) bool { return a.ip < b.ip }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler with the same rules as
// [Parse].
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Sort sorts addrs in place in ascending order.
func Sort(addrs []Address) {
	slices.SortFunc(addrs, Address.Compare)
}
