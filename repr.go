// Package bytex renders bytes as binary literals.
//
// The bit manipulation primitives live in package bit and the volatile
// register accessors in package register.
package bytex

import "bytex/bit"

// ReprLen is the length of a byte representation: "0b" and 8 digits.
const ReprLen = 2 + bit.MaxPosition + 1

// Repr returns b in the form "0bxxxxxxxx", most significant bit first.
func Repr(b uint8) [ReprLen]byte {
	var r [ReprLen]byte
	r[0] = '0'
	r[1] = 'b'
	for pos := uint(0); pos < uint(bit.MaxPosition+1); pos++ {
		r[ReprLen-1-pos] = bit.AsChar(b, pos)
	}
	return r
}

// Byte is a uint8 that prints as a binary literal.
type Byte uint8

func (b Byte) String() string {
	r := Repr(uint8(b))
	return string(r[:])
}
