package hw

import (
	"fmt"
	"io"
)

type disasmer interface {
	Disasm(pc uint16) DisasmOp
}

type tracer struct {
	d disasmer
	w io.Writer
}

// write the execution trace line for the instruction about to be executed
// at regs.PC. n is the number of instructions executed so far.
func (t *tracer) write(regs Registers, n int64) {
	const totalLen = 80
	buf := make([]byte, totalLen)

	dis := t.d.Disasm(regs.PC)
	buf = append(buf[:0], dis.Bytes()...)
	off := min(totalLen, len(buf))
	buf = buf[:max(totalLen, len(buf))]

	for off < 49 {
		buf[off] = ' '
		off++
	}

	for _, reg := range [...]struct {
		name byte
		val  uint8
	}{
		{'A', regs.A},
		{'X', regs.X},
		{'Y', regs.Y},
		{'P', uint8(regs.P)},
		{'S', regs.SP},
	} {
		buf[off] = reg.name
		buf[off+1] = ':'
		hexEncode(buf[off+2:], reg.val)
		buf[off+4] = ' '
		off += 5
	}

	buf = fmt.Appendf(buf[:off], "N:%d\n", n)
	t.w.Write(buf)
}
