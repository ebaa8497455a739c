package hw

type opfunc func(cpu *CPU, mode AddrMode)

// ops maps each operation to its handler. Every Opcode has exactly one
// handler, which is checked at init.
var ops = [opcodeCount]opfunc{
	ADC: adc,
	AND: and,
	ASL: asl,
	BCC: branch(Carry, false),
	BCS: branch(Carry, true),
	BEQ: branch(Zero, true),
	BIT: bit,
	BMI: branch(Negative, true),
	BNE: branch(Zero, false),
	BPL: branch(Negative, false),
	BRK: brk,
	BVC: branch(Overflow, false),
	BVS: branch(Overflow, true),
	CLC: flag(Carry, false),
	CLD: flag(Decimal, false),
	CLI: flag(InterruptDisable, false),
	CLV: flag(Overflow, false),
	CMP: compare(func(cpu *CPU) uint8 { return cpu.A }),
	CPX: compare(func(cpu *CPU) uint8 { return cpu.X }),
	CPY: compare(func(cpu *CPU) uint8 { return cpu.Y }),
	DEC: dec,
	DEX: dex,
	DEY: dey,
	EOR: eor,
	INC: inc,
	INX: inx,
	INY: iny,
	JMP: jmp,
	JSR: jsr,
	LDA: lda,
	LDX: ldx,
	LDY: ldy,
	LSR: lsr,
	NOP: nop,
	ORA: ora,
	PHA: pha,
	PHP: php,
	PLA: pla,
	PLP: plp,
	ROL: rol,
	ROR: ror,
	RTI: rti,
	RTS: rts,
	SBC: sbc,
	SEC: flag(Carry, true),
	SED: flag(Decimal, true),
	SEI: flag(InterruptDisable, true),
	STA: sta,
	STX: stx,
	STY: sty,
	TAX: tax,
	TAY: tay,
	TSX: tsx,
	TXA: txa,
	TXS: txs,
	TYA: tya,
}

func init() {
	for op := ADC; op < opcodeCount; op++ {
		if ops[op] == nil {
			panic("hw: no handler for " + op.String())
		}
	}
}

/* load / store */

func lda(cpu *CPU, mode AddrMode) {
	cpu.A = cpu.resolveValue(mode)
	cpu.P.checkNZ(cpu.A)
}

func ldx(cpu *CPU, mode AddrMode) {
	cpu.X = cpu.resolveValue(mode)
	cpu.P.checkNZ(cpu.X)
}

func ldy(cpu *CPU, mode AddrMode) {
	cpu.Y = cpu.resolveValue(mode)
	cpu.P.checkNZ(cpu.Y)
}

func sta(cpu *CPU, mode AddrMode) {
	cpu.Bus.Write8(cpu.resolveAddr(mode), cpu.A)
}

func stx(cpu *CPU, mode AddrMode) {
	cpu.Bus.Write8(cpu.resolveAddr(mode), cpu.X)
}

func sty(cpu *CPU, mode AddrMode) {
	cpu.Bus.Write8(cpu.resolveAddr(mode), cpu.Y)
}

/* arithmetic and logic */

// add is the binary addition of ADC and SBC, the decimal flag is ignored.
func (c *CPU) add(val uint8) {
	sum := uint16(c.A) + uint16(val) + uint16(c.P.ibit(Carry))
	c.P.checkCV(c.A, val, sum)
	c.A = uint8(sum)
	c.P.checkNZ(c.A)
}

func adc(cpu *CPU, mode AddrMode) {
	cpu.add(cpu.resolveValue(mode))
}

// A - M - !C is A + ^M + C in two's complement.
func sbc(cpu *CPU, mode AddrMode) {
	cpu.add(^cpu.resolveValue(mode))
}

func and(cpu *CPU, mode AddrMode) {
	cpu.A &= cpu.resolveValue(mode)
	cpu.P.checkNZ(cpu.A)
}

func ora(cpu *CPU, mode AddrMode) {
	cpu.A |= cpu.resolveValue(mode)
	cpu.P.checkNZ(cpu.A)
}

func eor(cpu *CPU, mode AddrMode) {
	cpu.A ^= cpu.resolveValue(mode)
	cpu.P.checkNZ(cpu.A)
}

func bit(cpu *CPU, mode AddrMode) {
	val := cpu.resolveValue(mode)
	cpu.P.Set(Zero, cpu.A&val == 0)
	cpu.P.Set(Overflow, val&0x40 != 0)
	cpu.P.Set(Negative, val&0x80 != 0)
}

func compare(reg func(*CPU) uint8) opfunc {
	return func(cpu *CPU, mode AddrMode) {
		r := reg(cpu)
		val := cpu.resolveValue(mode)
		cpu.P.Set(Carry, r >= val)
		cpu.P.checkNZ(r - val)
	}
}

/* increments and decrements */

func inc(cpu *CPU, mode AddrMode) {
	cpu.modify(mode, func(val uint8) uint8 {
		val++
		cpu.P.checkNZ(val)
		return val
	})
}

func dec(cpu *CPU, mode AddrMode) {
	cpu.modify(mode, func(val uint8) uint8 {
		val--
		cpu.P.checkNZ(val)
		return val
	})
}

func inx(cpu *CPU, _ AddrMode) {
	cpu.X++
	cpu.P.checkNZ(cpu.X)
}

func iny(cpu *CPU, _ AddrMode) {
	cpu.Y++
	cpu.P.checkNZ(cpu.Y)
}

func dex(cpu *CPU, _ AddrMode) {
	cpu.X--
	cpu.P.checkNZ(cpu.X)
}

func dey(cpu *CPU, _ AddrMode) {
	cpu.Y--
	cpu.P.checkNZ(cpu.Y)
}

/* shifts and rotates */

func asl(cpu *CPU, mode AddrMode) {
	cpu.modify(mode, func(val uint8) uint8 {
		cpu.P.Set(Carry, val&0x80 != 0)
		val <<= 1
		cpu.P.checkNZ(val)
		return val
	})
}

func lsr(cpu *CPU, mode AddrMode) {
	cpu.modify(mode, func(val uint8) uint8 {
		cpu.P.Set(Carry, val&0x01 != 0)
		val >>= 1
		cpu.P.checkNZ(val)
		return val
	})
}

func rol(cpu *CPU, mode AddrMode) {
	cpu.modify(mode, func(val uint8) uint8 {
		carry := cpu.P.ibit(Carry)
		cpu.P.Set(Carry, val&0x80 != 0)
		val = val<<1 | carry
		cpu.P.checkNZ(val)
		return val
	})
}

func ror(cpu *CPU, mode AddrMode) {
	cpu.modify(mode, func(val uint8) uint8 {
		carry := cpu.P.ibit(Carry)
		cpu.P.Set(Carry, val&0x01 != 0)
		val = val>>1 | carry<<7
		cpu.P.checkNZ(val)
		return val
	})
}

/* control flow */

func branch(f Flag, want bool) opfunc {
	return func(cpu *CPU, mode AddrMode) {
		target := cpu.resolveAddr(mode)
		if cpu.P.Get(f) == want {
			cpu.PC = target
		}
	}
}

func jmp(cpu *CPU, mode AddrMode) {
	cpu.PC = cpu.resolveAddr(mode)
}

// jsr pushes the address of the last byte of the instruction, that is the
// return address minus one. The high byte of the target is fetched after the
// push, as the hardware does.
func jsr(cpu *CPU, _ AddrMode) {
	cpu.reservePush(2)
	lo := cpu.fetch8()
	cpu.push16(cpu.PC)
	hi := cpu.fetch8()
	cpu.PC = uint16(hi)<<8 | uint16(lo)
}

func rts(cpu *CPU, _ AddrMode) {
	cpu.PC = cpu.pull16() + 1
}

func rti(cpu *CPU, _ AddrMode) {
	cpu.reservePull(3)
	cpu.pullStatus()
	cpu.PC = cpu.pull16()
}

// brk skips the padding byte following the opcode, saves PC and P, then
// jumps through the IRQ vector.
func brk(cpu *CPU, _ AddrMode) {
	cpu.reservePush(3)
	cpu.PC++
	cpu.push16(cpu.PC)
	cpu.pushStatus()
	cpu.P.Set(InterruptDisable, true)
	lo := cpu.Bus.Read8(IRQVector)
	hi := cpu.Bus.Read8(IRQVector + 1)
	cpu.PC = uint16(hi)<<8 | uint16(lo)
}

/* stack */

func pha(cpu *CPU, _ AddrMode) {
	cpu.push8(cpu.A)
}

func php(cpu *CPU, _ AddrMode) {
	cpu.pushStatus()
}

func pla(cpu *CPU, _ AddrMode) {
	cpu.A = cpu.pull8()
	cpu.P.checkNZ(cpu.A)
}

func plp(cpu *CPU, _ AddrMode) {
	cpu.pullStatus()
}

/* transfers */

func tax(cpu *CPU, _ AddrMode) {
	cpu.X = cpu.A
	cpu.P.checkNZ(cpu.X)
}

func tay(cpu *CPU, _ AddrMode) {
	cpu.Y = cpu.A
	cpu.P.checkNZ(cpu.Y)
}

func txa(cpu *CPU, _ AddrMode) {
	cpu.A = cpu.X
	cpu.P.checkNZ(cpu.A)
}

func tya(cpu *CPU, _ AddrMode) {
	cpu.A = cpu.Y
	cpu.P.checkNZ(cpu.A)
}

func tsx(cpu *CPU, _ AddrMode) {
	cpu.X = cpu.SP
	cpu.P.checkNZ(cpu.X)
}

// txs is the only transfer leaving flags untouched.
func txs(cpu *CPU, _ AddrMode) {
	cpu.SP = cpu.X
}

/* flags */

func flag(f Flag, v bool) opfunc {
	return func(cpu *CPU, _ AddrMode) {
		cpu.P.Set(f, v)
	}
}

func nop(*CPU, AddrMode) {}
