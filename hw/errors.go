package hw

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrHalted is returned by Step and Run once the CPU stopped on a fatal
// error. The CPU stays halted until Reset or LoadState.
var ErrHalted = errors.New("cpu halted")

// haltedError is ErrHalted along with the fatal error which halted the CPU.
type haltedError struct {
	cause error
}

func (e *haltedError) Error() string        { return ErrHalted.Error() + ": " + e.cause.Error() }
func (e *haltedError) Unwrap() error        { return e.cause }
func (e *haltedError) Is(target error) bool { return target == ErrHalted }

// Registers is a copy of the CPU registers at a given point.
type Registers struct {
	PC          uint16
	SP, A, X, Y uint8
	P           P
}

func (r Registers) String() string {
	return fmt.Sprintf("PC:%04X SP:%02X A:%02X X:%02X Y:%02X P:%02X(%s)",
		r.PC, r.SP, r.A, r.X, r.Y, uint8(r.P), r.P)
}

// DecodeError is returned when the CPU fetched a byte that doesn't encode any
// legal instruction.
type DecodeError struct {
	Opcode uint8
	Addr   uint16 // opcode address
	Regs   Registers
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid opcode $%02X at $%04X [%s]", e.Opcode, e.Addr, e.Regs)
}

// StackError is returned when an instruction pushes more bytes than the
// stack has room for (a push with SP at 0x00), or pulls more than it holds (a
// pull with SP at 0xFF). The stack is left untouched. It never happens with
// the StackWrap policy.
type StackError struct {
	Op   string // "push" or "pull"
	Regs Registers
}

func (e *StackError) Error() string {
	what := "underflow"
	if e.Op == "push" {
		what = "overflow"
	}
	return fmt.Sprintf("stack %s on %s [%s]", what, e.Op, e.Regs)
}
