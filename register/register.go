// Package register performs volatile accesses to memory-mapped hardware
// registers.
//
// Read and Write perform exactly one load or store at the given address. The
// caller guarantees that the address is valid, aligned and mapped for the
// whole duration of the call: nothing is validated, and an invalid address is
// undefined behaviour. Serializing concurrent accesses to the same register
// (for instance by masking interrupts) is also up to the caller.
package register

import "fmt"

// Read performs a single volatile load of the byte at addr.
func Read(addr uintptr) uint8 {
	v := load8(addr)
	traceRead(addr, v)
	return v
}

// Write performs a single volatile store of v at addr.
func Write(addr uintptr, v uint8) {
	traceWrite(addr, v)
	store8(addr, v)
}

// Addr is the address of a byte-sized register.
type Addr uintptr

func (a Addr) Read() uint8 { return Read(uintptr(a)) }

func (a Addr) Write(v uint8) { Write(uintptr(a), v) }

// Update reads the register once, lets fn modify the value, then writes the
// result back once. fn typically is one of the bit operations:
//
//	PORTD.Update(func(v *uint8) uint8 { return bit.Toggle(v, 7) })
//
// The read-modify-write sequence is not atomic.
func (a Addr) Update(fn func(v *uint8) uint8) {
	v := a.Read()
	a.Write(fn(&v))
}

func (a Addr) String() string {
	return fmt.Sprintf("0x%04x", uintptr(a))
}
