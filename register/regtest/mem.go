// Package regtest provides ordinary memory standing in for hardware
// registers, for tests of code built on package register.
package regtest

import (
	"fmt"
	"runtime"
	"unsafe"

	"bytex/register"
)

// MaxSize is the largest memory area: offsets are 16-bit.
const MaxSize = 0x10000

// Mem is a linear memory area whose bytes can be addressed as registers.
// Offsets wrap around the size of Data, which must be a power of two no
// greater than MaxSize.
type Mem struct {
	Name string
	Data []byte
}

// NewMem allocates a zeroed memory area of size bytes.
func NewMem(name string, size int) *Mem {
	m := &Mem{Name: name, Data: make([]byte, size)}
	m.check()
	return m
}

func (m *Mem) check() {
	if len(m.Data) == 0 || len(m.Data)&(len(m.Data)-1) != 0 {
		panic(fmt.Sprintf("regtest: %s: memory buffer size %d is not pow2", m.Name, len(m.Data)))
	}
	if len(m.Data) > MaxSize {
		panic(fmt.Sprintf("regtest: %s: memory buffer size %d exceeds %d", m.Name, len(m.Data), MaxSize))
	}
}

func (m *Mem) mask() uint16 {
	return uint16(len(m.Data) - 1)
}

// Addr returns the register address of the byte at offset off.
//
// The returned address stays valid as long as m is reachable: call KeepAlive
// after the last register access if m is not otherwise used.
func (m *Mem) Addr(off uint16) register.Addr {
	m.check()
	ptr := unsafe.Pointer(&m.Data[off&m.mask()])
	return register.Addr(uintptr(ptr))
}

// KeepAlive marks m as reachable up to the point of the call.
func (m *Mem) KeepAlive() {
	runtime.KeepAlive(m.Data)
}
