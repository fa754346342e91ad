// Package bit reads and modifies single bits of a byte.
//
// Positions are counted from the least significant bit (position 0) up to
// MaxPosition. Passing a greater position is a programming error: every
// function panics with a *PositionError rather than act on a neighbouring bit.
package bit

import "fmt"

// MaxPosition is the highest valid bit position in a byte.
const MaxPosition = 7

// PositionError is the panic value raised for an out of range bit position.
type PositionError struct {
	Pos uint
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("bit position %d out of range [0, %d]", e.Pos, MaxPosition)
}

func checkPosition(pos uint) {
	if pos > MaxPosition {
		panic(&PositionError{Pos: pos})
	}
}

// Mask returns a byte with only the bit at pos set.
func Mask(pos uint) uint8 {
	checkPosition(pos)
	return 1 << pos
}

// Get returns the bit of v at pos, either 0 or 1.
func Get(v uint8, pos uint) uint8 {
	checkPosition(pos)
	return v >> pos & 0x01
}

// IsSet reports whether the bit of v at pos is 1.
func IsSet(v uint8, pos uint) bool {
	return Get(v, pos) != 0
}

// Set forces the bit at pos to 1 and returns the new value.
func Set(v *uint8, pos uint) uint8 {
	checkPosition(pos)
	*v |= 1 << pos
	return *v
}

// Unset forces the bit at pos to 0 and returns the new value.
func Unset(v *uint8, pos uint) uint8 {
	checkPosition(pos)
	*v &^= 1 << pos
	return *v
}

// Toggle flips the bit at pos and returns the new value.
func Toggle(v *uint8, pos uint) uint8 {
	checkPosition(pos)
	*v ^= 1 << pos
	return *v
}

// AsChar returns the bit of v at pos as the digit '0' or '1'.
func AsChar(v uint8, pos uint) byte {
	switch Get(v, pos) {
	case 0:
		return '0'
	case 1:
		return '1'
	}
	panic("bit.Get returned a value other than 0 or 1")
}
