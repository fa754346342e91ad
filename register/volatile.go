//go:build !tinygo

package register

import (
	"unsafe"

	"bytex/log"
)

// The gc toolchain has no volatile intrinsic. A call to a function that is
// never inlined acts as a compiler barrier: the access below can't be elided,
// merged or moved across another register access.

// addr is a register address guaranteed valid by the caller, not a Go
// pointer: the conversion flagged by vet's unsafeptr check is intended.

//go:noinline
func load8(addr uintptr) uint8 {
	return *(*uint8)(unsafe.Pointer(addr))
}

//go:noinline
func store8(addr uintptr, v uint8) {
	*(*uint8)(unsafe.Pointer(addr)) = v
}

func traceRead(addr uintptr, v uint8) {
	log.ModReg.DebugZ("read").Hex64("addr", uint64(addr)).Hex8("val", v).End()
}

func traceWrite(addr uintptr, v uint8) {
	log.ModReg.DebugZ("write").Hex64("addr", uint64(addr)).Hex8("val", v).End()
}
