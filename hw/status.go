package hw

import "emu6502/hw/hwio"

// P is the processor status register.
//
// Bit 5 is unused, it has no meaning and no accessor: handlers can't read it.
// It is never set, except in copies of P pushed on the stack when the
// hardware break bit behavior is enabled.
type P uint8

// Flag is a bit position in the processor status register.
type Flag uint

const (
	Carry Flag = iota
	Zero
	InterruptDisable
	Decimal
	Break
	unused
	Overflow
	Negative
)

func (p P) Get(f Flag) bool {
	if f == unused || f > Negative {
		panic("hw: invalid status flag")
	}
	return hwio.GetBit8(uint8(p), uint(f))
}

func (p *P) Set(f Flag, v bool) {
	if f == unused || f > Negative {
		panic("hw: invalid status flag")
	}
	hwio.WriteBit8((*uint8)(p), uint(f), v)
}

func (p P) C() bool { return p.Get(Carry) }
func (p P) Z() bool { return p.Get(Zero) }
func (p P) I() bool { return p.Get(InterruptDisable) }
func (p P) D() bool { return p.Get(Decimal) }
func (p P) B() bool { return p.Get(Break) }
func (p P) V() bool { return p.Get(Overflow) }
func (p P) N() bool { return p.Get(Negative) }

// pushed returns P as the hardware pushes it with PHP or BRK: Break and the
// unused bit are set.
func (p P) pushed() uint8 {
	return uint8(p) | 1<<Break | 1<<unused
}

// load sets all flags from v, the unused bit is ignored.
func (p *P) load(v uint8) {
	*p = P(v &^ (1 << unused))
}

// hwload sets all flags from v except Break and the unused bit which are
// kept, as the hardware does for PLP and RTI.
func (p *P) hwload(v uint8) {
	const mask uint8 = 0b11001111
	*p = P(hwio.CopyBits8(uint8(*p), v, mask))
}

func (p *P) checkNZ(v uint8) {
	p.Set(Negative, v&0x80 != 0)
	p.Set(Zero, v == 0)
}

// checkCV sets the carry and overflow flags after the 8-bit addition x+y
// which gave sum.
func (p *P) checkCV(x, y uint8, sum uint16) {
	// forward carry or unsigned overflow.
	p.Set(Carry, sum > 0xFF)

	// signed overflow, can only happen if the sign of the sum differs
	// from that of both operands.
	v := (uint16(x) ^ sum) & (uint16(y) ^ sum) & 0x80
	p.Set(Overflow, v != 0)
}

func (p P) ibit(f Flag) uint8 {
	return hwio.GetBiti8(uint8(p), uint(f))
}

func (p P) String() string {
	const bits = "nv-bdizcNV-BDIZC"

	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		bit := uint(7 - i)
		set := 0
		if bit != uint(unused) && hwio.GetBit8(uint8(p), bit) {
			set = 1
		}
		s[i] = bits[i+8*set]
	}
	return string(s)
}
