package hw

import (
	"fmt"
	"strings"

	"emu6502/hw/hwio"
)

// DisasmOp is a disassembled instruction.
type DisasmOp struct {
	Opcode string
	Oper   string
	Buf    []byte // instruction bytes
	PC     uint16
}

func (d DisasmOp) String() string {
	return strings.TrimRight(string(d.Bytes()), " ")
}

func hexEncode(dst []byte, v byte) {
	const hextable = "0123456789ABCDEF"
	dst[0] = hextable[v>>4]
	dst[1] = hextable[v&0x0f]
}

// Bytes returns the string representation of a DisasmOp, padded to a fixed
// width. This is optimized version, suitable for the execution tracer.
func (d DisasmOp) Bytes() []byte {
	const totalLen = 48
	buf := make([]byte, totalLen)

	hexEncode(buf[0:], byte(d.PC>>8))
	hexEncode(buf[2:], byte(d.PC))
	buf[4] = ' '
	buf[5] = ' '

	off := 6
	for i := range d.Buf {
		hexEncode(buf[off:], d.Buf[i])
		buf[off+2] = ' '
		off += 3
	}

	for ; off < 16; off++ {
		buf[off] = ' '
	}

	off += copy(buf[off:], d.Opcode)
	buf[off] = ' '
	off++

	buf = append(buf[:off], d.Oper...)
	off += len(d.Oper)
	if len(buf) > totalLen {
		buf = append(buf, ' ')
	} else {
		buf = buf[:totalLen]
		for i := off; i < totalLen; i++ {
			buf[i] = ' '
		}
	}

	return buf
}

// Disasm disassembles the instruction at pc. It has no side effects on the
// CPU nor on the bus.
func (c *CPU) Disasm(pc uint16) DisasmOp {
	return disasm(c.Bus, pc)
}

// Disassemble disassembles all instructions starting in the [from, to] range.
func Disassemble(bus hwio.Bus, from, to uint16) []DisasmOp {
	var dis []DisasmOp
	for pc := uint32(from); pc <= uint32(to); {
		op := disasm(bus, uint16(pc))
		dis = append(dis, op)
		pc += uint32(len(op.Buf))
	}
	return dis
}

func disasm(bus hwio.Bus, pc uint16) DisasmOp {
	opcode := bus.Peek8(pc)
	inst, ok := Decode(opcode)
	if !ok {
		return DisasmOp{
			Opcode: ".db",
			Oper:   fmt.Sprintf("$%02X", opcode),
			Buf:    []byte{opcode},
			PC:     pc,
		}
	}

	buf := make([]byte, inst.Mode.Size())
	for i := range buf {
		buf[i] = bus.Peek8(pc + uint16(i))
	}

	return DisasmOp{
		Opcode: inst.Opcode.String(),
		Oper:   formatOperand(inst.Mode, pc, buf),
		Buf:    buf,
		PC:     pc,
	}
}

func formatOperand(mode AddrMode, pc uint16, buf []byte) string {
	var oper8 uint8
	var oper16 uint16
	switch len(buf) {
	case 2:
		oper8 = buf[1]
	case 3:
		oper16 = uint16(buf[2])<<8 | uint16(buf[1])
	}

	switch mode {
	case Accumulator:
		return "A"
	case Immediate:
		return fmt.Sprintf("#$%02X", oper8)
	case ZeroPage:
		return fmt.Sprintf("$%02X", oper8)
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X", oper8)
	case ZeroPageY:
		return fmt.Sprintf("$%02X,Y", oper8)
	case Relative:
		return fmt.Sprintf("$%04X", pc+2+uint16(int8(oper8)))
	case Absolute:
		return fmt.Sprintf("$%04X", oper16)
	case AbsoluteX:
		return fmt.Sprintf("$%04X,X", oper16)
	case AbsoluteY:
		return fmt.Sprintf("$%04X,Y", oper16)
	case Indirect:
		return fmt.Sprintf("($%04X)", oper16)
	case IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", oper8)
	case IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", oper8)
	}
	return ""
}
