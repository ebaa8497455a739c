package hw

import "emu6502/hw/snapshot"

// SaveState returns the CPU state, ready to be serialized.
func (c *CPU) SaveState() snapshot.CPU {
	return snapshot.CPU{
		PC:           c.PC,
		SP:           c.SP,
		P:            uint8(c.P),
		A:            c.A,
		X:            c.X,
		Y:            c.Y,
		Instructions: c.Instructions,
	}
}

// LoadState restores the CPU state from a snapshot. A halted CPU can execute
// instructions again after that.
func (c *CPU) LoadState(state snapshot.CPU) {
	c.PC = state.PC
	c.SP = state.SP
	c.P = P(state.P)
	c.A = state.A
	c.X = state.X
	c.Y = state.Y
	c.Instructions = state.Instructions
	c.err = nil
}
