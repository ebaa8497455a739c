package hw

import (
	"io"

	"emu6502/emu/log"
	"emu6502/hw/hwio"
)

const (
	CodeStart = uint16(0xA000) // default initial program counter
	StackBase = uint16(0x0100) // the stack lives in page 1
)

// Locations reserved for vector pointers.
const (
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request and BRK
)

// NoLimit makes Run execute instructions until a fatal error.
const NoLimit = -1

// CPU is a 6502 interpreter. It owns its registers and sees memory through
// Bus, which it's the only one to access while running.
type CPU struct {
	Bus hwio.Bus

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	// Number of instructions executed since the last reset.
	Instructions int64

	cfg Config

	// Non-nil when execution tracing is enabled.
	tracer *tracer

	// Fatal error which halted the CPU.
	err error
}

// NewCPU creates a new CPU at power-up state, connected to bus.
func NewCPU(bus hwio.Bus, cfg Config) *CPU {
	cpu := &CPU{
		Bus: bus,
		cfg: cfg,
	}
	cpu.Reset()
	return cpu
}

// Config returns the CPU configuration.
func (c *CPU) Config() Config {
	return c.cfg
}

// Reset puts the CPU back in its power-up state: general registers and flags
// cleared, stack empty, and PC set to the configured start address, or read
// from the reset vector. Memory is left untouched.
func (c *CPU) Reset() {
	c.A = 0x00
	c.X = 0x00
	c.Y = 0x00
	c.SP = 0xFF
	c.P = 0x00
	c.Instructions = 0
	c.err = nil

	c.PC = c.cfg.StartPC
	if c.cfg.UseResetVector {
		c.PC = hwio.Read16(c.Bus, ResetVector)
	}

	log.ModCPU.DebugZ("reset").
		Hex16("pc", c.PC).
		Bool("vector", c.cfg.UseResetVector).
		End()
}

// Regs returns a copy of the CPU registers.
func (c *CPU) Regs() Registers {
	return Registers{PC: c.PC, SP: c.SP, A: c.A, X: c.X, Y: c.Y, P: c.P}
}

// Halted reports whether the CPU stopped on a fatal error, and returns it.
func (c *CPU) Halted() (bool, error) {
	return c.err != nil, c.err
}

// Run executes limit instructions, or until a fatal error if limit is
// NoLimit. It returns early on the first fatal error. A run stopped by the
// limit can be resumed by calling Run again.
func (c *CPU) Run(limit int64) error {
	if limit < 0 {
		for {
			if err := c.Step(); err != nil {
				return err
			}
		}
	}

	for range limit {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step fetches, decodes and executes one instruction.
func (c *CPU) Step() (err error) {
	if c.err != nil {
		return &haltedError{cause: c.err}
	}

	defer func() {
		if r := recover(); r != nil {
			serr, ok := r.(*StackError)
			if !ok {
				panic(r)
			}
			err = c.halt(serr)
		}
	}()

	c.traceOp()

	pc := c.PC
	opcode := c.fetch8()
	inst, ok := Decode(opcode)
	if !ok {
		return c.halt(&DecodeError{Opcode: opcode, Addr: pc, Regs: c.Regs()})
	}

	ops[inst.Opcode](c, inst.Mode)
	c.Instructions++
	return nil
}

func (c *CPU) halt(err error) error {
	c.err = err
	log.ModCPU.WarnZ("CPU halted").
		Error("err", err).
		Int64("instructions", c.Instructions).
		End()
	return err
}

func (c *CPU) traceOp() {
	if c.tracer != nil {
		c.tracer.write(c.Regs(), c.Instructions)
	}
}

// SetTraceOutput enables the execution trace, written to w, one line per
// instruction. A nil writer disables it.
func (c *CPU) SetTraceOutput(w io.Writer) {
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = &tracer{w: w, d: c}
}

// AddLogContext adds the program counter to every log entry.
//
// Implements log.Context interface.
func (c *CPU) AddLogContext(z *log.EntryZ) {
	z.Hex16("pc", c.PC)
}

/* stack operations */

// reservePush panics with a StackError if n bytes can't be pushed. Instructions
// pushing more than one byte reserve them first, so that a failing
// instruction leaves the stack untouched.
func (c *CPU) reservePush(n uint8) {
	if c.SP < n && c.cfg.StackPolicy == StackFatal {
		panic(&StackError{Op: "push", Regs: c.Regs()})
	}
}

// reservePull panics with a StackError if n bytes can't be pulled.
func (c *CPU) reservePull(n uint8) {
	if 0xFF-c.SP < n && c.cfg.StackPolicy == StackFatal {
		panic(&StackError{Op: "pull", Regs: c.Regs()})
	}
}

func (c *CPU) push8(val uint8) {
	c.reservePush(1)
	c.Bus.Write8(StackBase+uint16(c.SP), val)
	c.SP--
}

// push16 pushes the high byte first, so that pull16 reconstructs val.
func (c *CPU) push16(val uint16) {
	c.reservePush(2)
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xff))
}

func (c *CPU) pull8() uint8 {
	c.reservePull(1)
	c.SP++
	return c.Bus.Read8(StackBase + uint16(c.SP))
}

func (c *CPU) pull16() uint16 {
	c.reservePull(2)
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// pushStatus pushes P, for PHP and BRK.
func (c *CPU) pushStatus() {
	if c.cfg.HardwareBreakBit {
		c.push8(c.P.pushed())
		return
	}
	c.push8(uint8(c.P))
}

// pullStatus pulls P, for PLP and RTI.
func (c *CPU) pullStatus() {
	if c.cfg.HardwareBreakBit {
		c.P.hwload(c.pull8())
		return
	}
	c.P.load(c.pull8())
}
