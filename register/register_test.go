package register_test

import (
	"testing"

	"bytex/bit"
	"bytex/register"
	"bytex/register/regtest"
)

// ATmega328P port D, data space addresses.
const (
	offDDRD  = 0x2a
	offPORTD = 0x2b
	DDD7     = 7
	PORTD7   = 7
)

func TestWriteRead(t *testing.T) {
	mem := regtest.NewMem("sram", 0x100)
	defer mem.KeepAlive()

	for i := 0; i < 256; i++ {
		addr := uintptr(mem.Addr(uint16(i)))
		register.Write(addr, uint8(i))
		if got := register.Read(addr); got != uint8(i) {
			t.Fatalf("Read(%#x) = %#02x after Write(%#02x)", i, got, i)
		}
	}

	// Writes land in the backing memory.
	for i, b := range mem.Data {
		if b != uint8(i) {
			t.Fatalf("Data[%d] = %#02x, want %#02x", i, b, i)
		}
	}
}

func TestWriteDoesNotTouchNeighbours(t *testing.T) {
	mem := regtest.NewMem("sram", 4)
	defer mem.KeepAlive()

	mem.Addr(1).Write(0xff)
	want := []byte{0, 0xff, 0, 0}
	for i := range want {
		if mem.Data[i] != want[i] {
			t.Fatalf("Data = %x, want %x", mem.Data, want)
		}
	}
}

func TestAddrWraps(t *testing.T) {
	mem := regtest.NewMem("sram", 0x40)
	defer mem.KeepAlive()

	if mem.Addr(0x41) != mem.Addr(0x01) {
		t.Errorf("Addr(0x41) = %v, want %v", mem.Addr(0x41), mem.Addr(0x01))
	}
}

func TestAddrUpdate(t *testing.T) {
	mem := regtest.NewMem("io", 0x100)
	defer mem.KeepAlive()

	ddrd := mem.Addr(offDDRD)
	portd := mem.Addr(offPORTD)

	// Configure PD7 as an output, then toggle it.
	ddrd.Update(func(v *uint8) uint8 { return bit.Set(v, DDD7) })
	if got := ddrd.Read(); got != 0b1000_0000 {
		t.Fatalf("DDRD = %08b, want 10000000", got)
	}

	portd.Write(0b0000_0101)
	toggle := func(v *uint8) uint8 { return bit.Toggle(v, PORTD7) }

	portd.Update(toggle)
	if got := portd.Read(); got != 0b1000_0101 {
		t.Fatalf("PORTD = %08b, want 10000101", got)
	}
	portd.Update(toggle)
	if got := portd.Read(); got != 0b0000_0101 {
		t.Fatalf("PORTD = %08b, want 00000101", got)
	}
}

func TestAddrString(t *testing.T) {
	if got := register.Addr(0x2b).String(); got != "0x002b" {
		t.Errorf("String() = %q, want 0x002b", got)
	}
}
