// Package hwio implements the memory side of the emulated machine: the flat
// 64KiB address space, memory-mapped devices, and the bus that ties them.
package hwio

// Bus is the memory interface seen by the CPU.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)

	// Peek8 reads a byte without triggering any side effect, it's used for
	// debugging and tracing.
	Peek8(addr uint16) uint8
}

// Read16 reads a little-endian word at addr. The high byte address wraps
// around at the end of the address space.
func Read16(b Bus, addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Peek16 is the side-effect free version of Read16.
func Peek16(b Bus, addr uint16) uint16 {
	lo := b.Peek8(addr)
	hi := b.Peek8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func Write16(b Bus, addr uint16, val uint16) {
	lo := uint8(val & 0xff)
	hi := uint8(val >> 8)
	b.Write8(addr, lo)
	b.Write8(addr+1, hi)
}
