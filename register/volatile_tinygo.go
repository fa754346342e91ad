//go:build tinygo

package register

import (
	"runtime/volatile"
	"unsafe"
)

func load8(addr uintptr) uint8 {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(addr)))
}

func store8(addr uintptr, v uint8) {
	volatile.StoreUint8((*uint8)(unsafe.Pointer(addr)), v)
}

// No logging on bare metal targets.
func traceRead(uintptr, uint8)  {}
func traceWrite(uintptr, uint8) {}
