package hw

import (
	"fmt"

	"emu6502/hw/hwio"
)

// fetch8 reads the byte at PC and advances PC.
func (c *CPU) fetch8() uint8 {
	val := c.Bus.Read8(c.PC)
	c.PC++
	return val
}

// fetch16 reads the little-endian word at PC and advances PC past it.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// zpread16 reads a pointer in the zero page. The high byte of a pointer at
// $FF is read from $00.
func (c *CPU) zpread16(ptr uint8) uint16 {
	lo := c.Bus.Read8(uint16(ptr))
	hi := c.Bus.Read8(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// resolveAddr consumes the operand bytes of an instruction using the given
// addressing mode and returns the effective address. For Relative mode, it's
// the branch target.
//
// It panics for modes that have no address: Implicit, Accumulator and
// Immediate.
func (c *CPU) resolveAddr(mode AddrMode) uint16 {
	switch mode {
	case ZeroPage:
		return uint16(c.fetch8())
	case ZeroPageX:
		return uint16(c.fetch8() + c.X)
	case ZeroPageY:
		return uint16(c.fetch8() + c.Y)
	case Relative:
		off := int8(c.fetch8())
		return c.PC + uint16(off)
	case Absolute:
		return c.fetch16()
	case AbsoluteX:
		return c.fetch16() + uint16(c.X)
	case AbsoluteY:
		return c.fetch16() + uint16(c.Y)
	case Indirect:
		ptr := c.fetch16()
		if c.cfg.IndirectJumpBug {
			lo := c.Bus.Read8(ptr)
			hi := c.Bus.Read8(ptr&0xFF00 | uint16(uint8(ptr)+1))
			return uint16(hi)<<8 | uint16(lo)
		}
		return hwio.Read16(c.Bus, ptr)
	case IndexedIndirect:
		return c.zpread16(c.fetch8() + c.X)
	case IndirectIndexed:
		return c.zpread16(c.fetch8()) + uint16(c.Y)
	}

	panic(fmt.Sprintf("hw: %s addressing mode has no address", mode))
}

// resolveValue consumes the operand bytes of an instruction using the given
// addressing mode and returns the operand value.
func (c *CPU) resolveValue(mode AddrMode) uint8 {
	switch mode {
	case Immediate:
		return c.fetch8()
	case Accumulator:
		return c.A
	}
	return c.Bus.Read8(c.resolveAddr(mode))
}

// modify applies f to the operand of a read-modify-write instruction and
// writes the result back where it was read from: A or memory.
func (c *CPU) modify(mode AddrMode, f func(uint8) uint8) {
	if mode == Accumulator {
		c.A = f(c.A)
		return
	}

	addr := c.resolveAddr(mode)
	c.Bus.Write8(addr, f(c.Bus.Read8(addr)))
}
