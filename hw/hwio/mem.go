package hwio

import (
	"emu6502/emu/log"
)

// MemSize is the size of the whole 16-bit address space.
const MemSize = 0x10000

// Mem is a flat, byte-addressable memory covering the whole address space.
// Code and data share it, there is no caching of any kind: a write is visible
// to the next read, be it an instruction fetch or not.
type Mem struct {
	Name string
	Data [MemSize]uint8
}

func NewMem(name string) *Mem {
	return &Mem{Name: name}
}

func (m *Mem) Read8(addr uint16) uint8 { return m.Data[addr] }
func (m *Mem) Peek8(addr uint16) uint8 { return m.Data[addr] }

func (m *Mem) Write8(addr uint16, val uint8) { m.Data[addr] = val }

// Load copies buf into memory, starting at addr. It returns the number of
// bytes copied, which is less than len(buf) if buf doesn't fit before the end
// of the address space.
func (m *Mem) Load(addr uint16, buf []byte) int {
	n := copy(m.Data[addr:], buf)
	if n < len(buf) {
		log.ModMem.WarnZ("truncated memory load").
			String("mem", m.Name).
			Hex16("addr", addr).
			Int("size", len(buf)).
			Int("loaded", n).
			End()
	}
	return n
}

// Reset zeroes the whole memory.
func (m *Mem) Reset() {
	clear(m.Data[:])
}
