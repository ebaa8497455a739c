package hw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadImmediate(t *testing.T) {
	t.Run("LDA #$11", func(t *testing.T) {
		cpu := loadCPUWith(t, DefaultConfig(), `a000: a9 11`)
		runAndCheckState(t, cpu, 1,
			"A", uint8(0x11),
			"PC", uint16(0xA002),
			"P", uint8(0x00),
		)
	})
	t.Run("LDA #$00", func(t *testing.T) {
		cpu := loadCPUWith(t, DefaultConfig(), `a000: a9 00`)
		runAndCheckState(t, cpu, 1,
			"A", uint8(0x00),
			"Pz", uint8(1),
			"Pn", uint8(0),
		)
	})
	t.Run("LDA #$80", func(t *testing.T) {
		cpu := loadCPUWith(t, DefaultConfig(), `a000: a9 80`)
		runAndCheckState(t, cpu, 1,
			"A", uint8(0x80),
			"Pz", uint8(0),
			"Pn", uint8(1),
		)
	})
}

func TestLoadsAndShift(t *testing.T) {
	dump := `a000: a9 11 a2 20 a0 40 4a`
	cpu := loadCPUWith(t, DefaultConfig(), dump)
	runAndCheckState(t, cpu, 4,
		"A", uint8(0x08),
		"X", uint8(0x20),
		"Y", uint8(0x40),
		"Pc", uint8(1),
		"Pzn", uint8(0),
		"PC", uint16(0xA007),
	)
}

func TestJSRRTS(t *testing.T) {
	// a000  LDA #$01
	// a002  JSR $A008
	// a005  JMP $A00B
	// a008  LDX #$02
	// a00a  RTS
	// a00b  LDY #$03
	dump := `a000: a9 01 20 08 a0 4c 0b a0 a2 02 60 a0 03`
	cpu := loadCPUWith(t, DefaultConfig(), dump)

	var trace bytes.Buffer
	cpu.SetTraceOutput(&trace)

	runAndCheckState(t, cpu, 6,
		"A", uint8(0x01),
		"X", uint8(0x02),
		"Y", uint8(0x03),
		"SP", uint8(0xFF),
		"PC", uint16(0xA00D),
		"mem", `01fe: 04 a0`,
	)

	var got []string
	for _, line := range strings.Split(strings.TrimSpace(trace.String()), "\n") {
		got = append(got, line[16:19])
	}
	want := []string{"LDA", "JSR", "LDX", "RTS", "JMP", "LDY"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("executed instructions mismatch (-want +got):\n%s", diff)
	}
}

func TestADC(t *testing.T) {
	cpu := loadCPUWith(t, DefaultConfig(), `a000: a9 00 69 00`)
	for a := range 256 {
		for b := range 256 {
			cpu.Bus.Write8(0xA001, uint8(a))
			cpu.Bus.Write8(0xA003, uint8(b))
			cpu.Reset()
			if err := cpu.Run(2); err != nil {
				t.Fatal(err)
			}

			sum := uint8(a + b)
			if cpu.A != sum {
				t.Fatalf("%02X+%02X: got A=%02X, want %02X", a, b, cpu.A, sum)
			}
			if want := a+b >= 256; cpu.P.C() != want {
				t.Fatalf("%02X+%02X: got C=%t, want %t", a, b, cpu.P.C(), want)
			}
			if want := (uint8(a)^sum)&(uint8(b)^sum)&0x80 != 0; cpu.P.V() != want {
				t.Fatalf("%02X+%02X: got V=%t, want %t", a, b, cpu.P.V(), want)
			}
			if want := sum == 0; cpu.P.Z() != want {
				t.Fatalf("%02X+%02X: got Z=%t, want %t", a, b, cpu.P.Z(), want)
			}
			if want := sum&0x80 != 0; cpu.P.N() != want {
				t.Fatalf("%02X+%02X: got N=%t, want %t", a, b, cpu.P.N(), want)
			}
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		dump   string
		n      int64
		states []any
	}{
		{
			name:   "ADC with carry in",
			dump:   `a000: 38 a9 ff 69 00`,
			n:      3,
			states: []any{"A", uint8(0x00), "Pcz", uint8(1), "Pvn", uint8(0)},
		},
		{
			name:   "ADC signed overflow",
			dump:   `a000: a9 7f 69 01`,
			n:      2,
			states: []any{"A", uint8(0x80), "Pvn", uint8(1), "Pcz", uint8(0)},
		},
		{
			name:   "ADC ignores decimal mode",
			dump:   `a000: f8 a9 09 69 01`,
			n:      3,
			states: []any{"A", uint8(0x0A), "Pd", uint8(1)},
		},
		{
			name:   "SBC no borrow",
			dump:   `a000: 38 a9 50 e9 10`,
			n:      3,
			states: []any{"A", uint8(0x40), "Pc", uint8(1), "Pvzn", uint8(0)},
		},
		{
			name:   "SBC borrow",
			dump:   `a000: 38 a9 50 e9 f0`,
			n:      3,
			states: []any{"A", uint8(0x60), "Pcvzn", uint8(0)},
		},
		{
			name:   "SBC signed overflow",
			dump:   `a000: 38 a9 50 e9 b0`,
			n:      3,
			states: []any{"A", uint8(0xA0), "Pvn", uint8(1), "Pcz", uint8(0)},
		},
		{
			name:   "SBC carry clear subtracts one more",
			dump:   `a000: a9 05 e9 03`,
			n:      2,
			states: []any{"A", uint8(0x01), "Pc", uint8(1)},
		},
		{
			name:   "AND",
			dump:   `a000: a9 f0 29 0f`,
			n:      2,
			states: []any{"A", uint8(0x00), "Pz", uint8(1)},
		},
		{
			name:   "ORA",
			dump:   `a000: a9 f0 09 0f`,
			n:      2,
			states: []any{"A", uint8(0xFF), "Pn", uint8(1), "Pz", uint8(0)},
		},
		{
			name:   "EOR",
			dump:   `a000: a9 ff 49 0f`,
			n:      2,
			states: []any{"A", uint8(0xF0), "Pn", uint8(1)},
		},
		{
			name:   "BIT",
			dump:   "a000: a9 01 2c 00 02\n0200: c0",
			n:      2,
			states: []any{"A", uint8(0x01), "Pznv", uint8(1)},
		},
		{
			name:   "CMP equal",
			dump:   `a000: a9 10 c9 10`,
			n:      2,
			states: []any{"Pzc", uint8(1), "Pn", uint8(0)},
		},
		{
			name:   "CMP less",
			dump:   `a000: a9 10 c9 20`,
			n:      2,
			states: []any{"Pn", uint8(1), "Pzc", uint8(0)},
		},
		{
			name:   "CPX greater",
			dump:   `a000: a2 30 e0 20`,
			n:      2,
			states: []any{"Pc", uint8(1), "Pzn", uint8(0)},
		},
		{
			name:   "CPY zero page",
			dump:   "a000: a0 30 c4 10\n0010: 30",
			n:      2,
			states: []any{"Pzc", uint8(1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := loadCPUWith(t, DefaultConfig(), tt.dump)
			runAndCheckState(t, cpu, tt.n, tt.states...)
		})
	}
}

func TestReadModifyWrite(t *testing.T) {
	tests := []struct {
		name   string
		dump   string
		n      int64
		states []any
	}{
		{
			name:   "ASL A",
			dump:   `a000: a9 81 0a`,
			n:      2,
			states: []any{"A", uint8(0x02), "Pc", uint8(1), "Pn", uint8(0)},
		},
		{
			name:   "LSR zero page",
			dump:   "a000: 46 10\n0010: 01",
			n:      1,
			states: []any{"mem", "0010: 00", "Pcz", uint8(1)},
		},
		{
			name:   "ROL memory leaves A alone",
			dump:   "a000: 38 26 10\n0010: 80",
			n:      2,
			states: []any{"A", uint8(0x00), "mem", "0010: 01", "Pc", uint8(1)},
		},
		{
			name:   "ROR A",
			dump:   `a000: 38 a9 02 6a`,
			n:      3,
			states: []any{"A", uint8(0x81), "Pn", uint8(1), "Pc", uint8(0)},
		},
		{
			name:   "INC absolute wraps",
			dump:   "a000: ee 00 02\n0200: ff",
			n:      1,
			states: []any{"mem", "0200: 00", "Pz", uint8(1)},
		},
		{
			name:   "DEC zero page,X",
			dump:   "a000: a2 01 d6 10\n0011: 00",
			n:      2,
			states: []any{"mem", "0011: ff", "Pn", uint8(1)},
		},
		{
			name:   "INX DEY",
			dump:   `a000: e8 88`,
			n:      2,
			states: []any{"X", uint8(0x01), "Y", uint8(0xFF), "Pn", uint8(1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := loadCPUWith(t, DefaultConfig(), tt.dump)
			runAndCheckState(t, cpu, tt.n, tt.states...)
		})
	}
}

func TestAddressingModes(t *testing.T) {
	tests := []struct {
		name   string
		cfg    func(*Config)
		dump   string
		n      int64
		states []any
	}{
		{
			name:   "zero page,X wraps in page 0",
			dump:   "a000: a2 01 b5 ff\n0000: 42",
			n:      2,
			states: []any{"A", uint8(0x42)},
		},
		{
			name:   "zero page,Y wraps in page 0",
			dump:   "a000: a0 02 b6 fe\n0000: 37",
			n:      2,
			states: []any{"X", uint8(0x37)},
		},
		{
			name:   "absolute",
			dump:   "a000: ad 34 12\n1234: 99",
			n:      1,
			states: []any{"A", uint8(0x99), "Pn", uint8(1)},
		},
		{
			name:   "absolute,X wraps around address space",
			dump:   "a000: a2 01 bd ff ff\n0000: 11",
			n:      2,
			states: []any{"A", uint8(0x11)},
		},
		{
			name:   "absolute,Y",
			dump:   "a000: a0 10 b9 00 20\n2010: 22",
			n:      2,
			states: []any{"A", uint8(0x22)},
		},
		{
			name:   "(indirect,X)",
			dump:   "a000: a2 04 a1 20\n0024: 00 30\n3000: 5a",
			n:      2,
			states: []any{"A", uint8(0x5A)},
		},
		{
			name:   "(indirect,X) pointer wraps in page 0",
			dump:   "a000: a2 00 a1 ff\n0000: 40\n00ff: 10\n4010: 77",
			n:      2,
			states: []any{"A", uint8(0x77)},
		},
		{
			name:   "(indirect),Y",
			dump:   "a000: a0 10 b1 40\n0040: 00 50\n5010: 66",
			n:      2,
			states: []any{"A", uint8(0x66)},
		},
		{
			name:   "store zero page,X",
			dump:   `a000: a9 aa a2 05 95 10`,
			n:      3,
			states: []any{"mem", "0015: aa"},
		},
		{
			name:   "store (indirect),Y",
			dump:   "a000: a9 bb a0 01 91 40\n0040: 00 02",
			n:      3,
			states: []any{"mem", "0201: bb"},
		},
		{
			name:   "JMP absolute",
			dump:   `a000: 4c 34 12`,
			n:      1,
			states: []any{"PC", uint16(0x1234)},
		},
		{
			name:   "JMP indirect",
			dump:   "a000: 6c 00 30\n3000: 00 40",
			n:      1,
			states: []any{"PC", uint16(0x4000)},
		},
		{
			name:   "JMP indirect across page",
			dump:   "a000: 6c ff 30\n3000: 56\n30ff: 34 12",
			n:      1,
			states: []any{"PC", uint16(0x1234)},
		},
		{
			name:   "JMP indirect page wrap bug",
			cfg:    func(cfg *Config) { cfg.IndirectJumpBug = true },
			dump:   "a000: 6c ff 30\n3000: 56\n30ff: 34 12",
			n:      1,
			states: []any{"PC", uint16(0x5634)},
		},
		{
			name:   "branch forward",
			dump:   `a000: 90 02`,
			n:      1,
			states: []any{"PC", uint16(0xA004)},
		},
		{
			name:   "branch not taken",
			dump:   `a000: b0 02`,
			n:      1,
			states: []any{"PC", uint16(0xA002)},
		},
		{
			name: "branch backward",
			// a000  LDX #$03
			// a002  DEX
			// a003  BNE $A002
			dump:   `a000: a2 03 ca d0 fd`,
			n:      7,
			states: []any{"X", uint8(0x00), "Pz", uint8(1), "PC", uint16(0xA005)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}
			cpu := loadCPUWith(t, cfg, tt.dump)
			runAndCheckState(t, cpu, tt.n, tt.states...)
		})
	}
}

func TestSelfModifyingCode(t *testing.T) {
	// a000  LDA #$E8
	// a002  STA $A005
	// a005  NOP (overwritten with INX)
	dump := `a000: a9 e8 8d 05 a0 ea`
	cpu := loadCPUWith(t, DefaultConfig(), dump)
	runAndCheckState(t, cpu, 3,
		"X", uint8(0x01),
		"mem", `a005: e8`,
	)
}

func TestStack(t *testing.T) {
	t.Run("LIFO", func(t *testing.T) {
		// LDA #1; PHA; LDA #2; PHA; PLA; TAX; PLA; TAY
		dump := `a000: a9 01 48 a9 02 48 68 aa 68 a8`
		cpu := loadCPUWith(t, DefaultConfig(), dump)
		runAndCheckState(t, cpu, 8,
			"X", uint8(0x02),
			"Y", uint8(0x01),
			"SP", uint8(0xFF),
			"mem", `01fe: 02 01`,
		)
	})
	t.Run("PHP/PLP", func(t *testing.T) {
		// SEC; PHP; CLC; PLP
		dump := `a000: 38 08 18 28`
		cpu := loadCPUWith(t, DefaultConfig(), dump)
		runAndCheckState(t, cpu, 4,
			"P", uint8(0x01),
			"SP", uint8(0xFF),
			"mem", `01ff: 01`,
		)
	})
	t.Run("PLP loads Break", func(t *testing.T) {
		// LDA #$FF; PHA; PLP
		cpu := loadCPUWith(t, DefaultConfig(), `a000: a9 ff 48 28`)
		runAndCheckState(t, cpu, 3,
			"P", uint8(0xDF),
			"Pb", uint8(1),
			"SP", uint8(0xFF),
		)
	})
	t.Run("PHP pushes P as is", func(t *testing.T) {
		// PHP; PLA
		cpu := loadCPUWith(t, DefaultConfig(), `a000: 08 68`)
		runAndCheckState(t, cpu, 2,
			"A", uint8(0x00),
			"Pz", uint8(1),
		)
	})
	t.Run("hardware break bit", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.HardwareBreakBit = true

		// SEC; PHP; CLC; PLP
		cpu := loadCPUWith(t, cfg, `a000: 38 08 18 28`)
		runAndCheckState(t, cpu, 4,
			"P", uint8(0x01),
			"mem", `01ff: 31`,
		)

		// LDA #$FF; PHA; PLP
		cpu = loadCPUWith(t, cfg, `a000: a9 ff 48 28`)
		runAndCheckState(t, cpu, 3,
			"P", uint8(0xCF),
			"Pb", uint8(0),
		)

		// PHP; PLA
		cpu = loadCPUWith(t, cfg, `a000: 08 68`)
		runAndCheckState(t, cpu, 2, "A", uint8(0x30))
	})
	t.Run("TSX/TXS", func(t *testing.T) {
		// LDX #$80; TXS; PHA; TSX
		dump := `a000: a2 80 9a 48 ba`
		cpu := loadCPUWith(t, DefaultConfig(), dump)
		runAndCheckState(t, cpu, 4,
			"X", uint8(0x7F),
			"SP", uint8(0x7F),
			"Pn", uint8(0),
		)
	})
}

func TestStackExhaustion(t *testing.T) {
	t.Run("pull empty stack", func(t *testing.T) {
		cpu := loadCPUWith(t, DefaultConfig(), `a000: 68`)
		err := cpu.Run(NoLimit)

		var serr *StackError
		if !errors.As(err, &serr) {
			t.Fatalf("got error %v, want a StackError", err)
		}
		if serr.Op != "pull" {
			t.Errorf("got Op = %q, want pull", serr.Op)
		}
		if serr.Regs.SP != 0xFF || cpu.SP != 0xFF {
			t.Errorf("SP changed: regs=%02X cpu=%02X", serr.Regs.SP, cpu.SP)
		}
		if cpu.Instructions != 0 {
			t.Errorf("got %d instructions, want 0", cpu.Instructions)
		}
	})

	t.Run("push full stack", func(t *testing.T) {
		// LDX #0; TXS; PHA
		cpu := loadCPUWith(t, DefaultConfig(), `a000: a2 00 9a 48`)
		err := cpu.Run(NoLimit)

		var serr *StackError
		if !errors.As(err, &serr) {
			t.Fatalf("got error %v, want a StackError", err)
		}
		if serr.Op != "push" {
			t.Errorf("got Op = %q, want push", serr.Op)
		}
		if !strings.Contains(err.Error(), "stack overflow") {
			t.Errorf("error message %q doesn't mention overflow", err)
		}
		if cpu.Instructions != 2 {
			t.Errorf("got %d instructions, want 2", cpu.Instructions)
		}
		wantMem8(t, cpu, 0x0100, 0x00)
	})

	t.Run("multi-byte instructions", func(t *testing.T) {
		tests := []struct {
			name  string
			dump  string
			op    string
			sp    uint8
			pc    uint16
			stack string // must be left untouched
		}{
			{
				name:  "JSR with 1 free byte",
				dump:  `a000: a2 01 9a 20 00 a0`, // LDX #1; TXS; JSR $A000
				op:    "push",
				sp:    0x01,
				pc:    0xA004,
				stack: `0100: 00 00`,
			},
			{
				name:  "BRK with 2 free bytes",
				dump:  `a000: a2 02 9a 00 ea`, // LDX #2; TXS; BRK
				op:    "push",
				sp:    0x02,
				pc:    0xA004,
				stack: `0100: 00 00 00`,
			},
			{
				name: "RTS with 1 byte",
				dump: `a000: a2 fe 9a 60
01ff: 5a`, // LDX #$FE; TXS; RTS
				op:   "pull",
				sp:   0xFE,
				pc:   0xA004,
			},
			{
				name: "RTI with 2 bytes",
				dump: `a000: a2 fd 9a 40`, // LDX #$FD; TXS; RTI
				op:   "pull",
				sp:   0xFD,
				pc:   0xA004,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cpu := loadCPUWith(t, DefaultConfig(), tt.dump)
				err := cpu.Run(NoLimit)

				var serr *StackError
				if !errors.As(err, &serr) {
					t.Fatalf("got error %v, want a StackError", err)
				}
				if serr.Op != tt.op {
					t.Errorf("got Op = %q, want %s", serr.Op, tt.op)
				}
				if cpu.SP != tt.sp || serr.Regs.SP != tt.sp {
					t.Errorf("SP = %02X (regs %02X), want %02X", cpu.SP, serr.Regs.SP, tt.sp)
				}
				if serr.Regs.PC != tt.pc {
					t.Errorf("PC = %04X, want %04X", serr.Regs.PC, tt.pc)
				}
				if cpu.P.I() {
					t.Errorf("interrupt disable flag set by a failed instruction")
				}
				for _, line := range loadDump(t, tt.stack) {
					wantMem(t, cpu, line)
				}
			})
		}
	})

	t.Run("wrap policy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.StackPolicy = StackWrap

		// LDA #$AB; LDX #0; TXS; PHA
		cpu := loadCPUWith(t, cfg, `a000: a9 ab a2 00 9a 48`)
		runAndCheckState(t, cpu, 4,
			"SP", uint8(0xFF),
			"mem", `0100: ab`,
		)

		cpu = loadCPUWith(t, cfg, "a000: 68\n0100: 5c")
		runAndCheckState(t, cpu, 1,
			"A", uint8(0x5C),
			"SP", uint8(0x00),
		)
	})
}

func TestDecodeError(t *testing.T) {
	cpu := loadCPUWith(t, DefaultConfig(), `a000: a9 05 02`)
	err := cpu.Run(NoLimit)

	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("got error %v, want a DecodeError", err)
	}
	want := &DecodeError{
		Opcode: 0x02,
		Addr:   0xA002,
		Regs:   Registers{PC: 0xA003, SP: 0xFF, A: 0x05},
	}
	if diff := cmp.Diff(want, derr); diff != "" {
		t.Errorf("decode error mismatch (-want +got):\n%s", diff)
	}
	if cpu.Instructions != 1 {
		t.Errorf("got %d instructions, want 1", cpu.Instructions)
	}

	halted, herr := cpu.Halted()
	if !halted || herr != err {
		t.Fatalf("Halted() = %t, %v; want true, %v", halted, herr, err)
	}

	// Halted CPU stays halted.
	err = cpu.Step()
	if !errors.Is(err, ErrHalted) {
		t.Errorf("got %v, want ErrHalted", err)
	}
	if want := "cpu halted: invalid opcode $02 at $A002"; !strings.HasPrefix(err.Error(), want) {
		t.Errorf("got error %q, want prefix %q", err, want)
	}
	if !errors.As(err, &derr) {
		t.Errorf("got %v, want it to wrap the DecodeError", err)
	}
	if cpu.PC != 0xA003 {
		t.Errorf("halted CPU moved PC to %04X", cpu.PC)
	}

	cpu.Reset()
	if halted, _ := cpu.Halted(); halted {
		t.Errorf("CPU still halted after Reset")
	}
}

func TestRunLimit(t *testing.T) {
	cpu := loadCPUWith(t, DefaultConfig(), `a000: e8 e8 e8 e8`)
	if err := cpu.Run(2); err != nil {
		t.Fatal(err)
	}
	if cpu.X != 2 || cpu.PC != 0xA002 {
		t.Fatalf("after 2 instructions: X=%d PC=%04X", cpu.X, cpu.PC)
	}

	// Resume
	if err := cpu.Run(2); err != nil {
		t.Fatal(err)
	}
	if cpu.X != 4 || cpu.Instructions != 4 {
		t.Fatalf("after 4 instructions: X=%d N=%d", cpu.X, cpu.Instructions)
	}

	if err := cpu.Run(0); err != nil {
		t.Fatal(err)
	}
	if cpu.Instructions != 4 {
		t.Errorf("Run(0) executed instructions")
	}
}

func TestBRKRTI(t *testing.T) {
	// a000  BRK (+ padding byte)
	// a002  LDA #$07
	// b000  RTI
	dump := `
a000: 00 ea a9 07
b000: 40
fffe: 00 b0`

	cpu := loadCPUWith(t, DefaultConfig(), dump)
	runAndCheckState(t, cpu, 1,
		"PC", uint16(0xB000),
		"SP", uint8(0xFC),
		"Pi", uint8(1),
		"mem", `01fd: 00 02 a0`,
	)
	runAndCheckState(t, cpu, 2,
		"A", uint8(0x07),
		"PC", uint16(0xA004),
		"SP", uint8(0xFF),
		"P", uint8(0x00),
	)

	cfg := DefaultConfig()
	cfg.HardwareBreakBit = true
	cpu = loadCPUWith(t, cfg, dump)
	runAndCheckState(t, cpu, 1,
		"PC", uint16(0xB000),
		"mem", `01fd: 30 02 a0`,
	)
	runAndCheckState(t, cpu, 2,
		"A", uint8(0x07),
		"P", uint8(0x00),
	)
}

func TestFlagOps(t *testing.T) {
	// SEC; SED; SEI; CLC; CLD; CLI
	cpu := loadCPUWith(t, DefaultConfig(), `a000: 38 f8 78 18 d8 58`)
	runAndCheckState(t, cpu, 3, "Pcdi", uint8(1))
	runAndCheckState(t, cpu, 3, "P", uint8(0x00))

	// LDA #$7F; ADC #$01; CLV
	cpu = loadCPUWith(t, DefaultConfig(), `a000: a9 7f 69 01 b8`)
	runAndCheckState(t, cpu, 2, "Pv", uint8(1))
	runAndCheckState(t, cpu, 1, "Pv", uint8(0))
}

func TestResetVector(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseResetVector = true

	cpu := loadCPUWith(t, cfg, "fffc: 00 c0\nc000: a9 42")
	if cpu.PC != 0xC000 {
		t.Fatalf("got PC=%04X, want C000", cpu.PC)
	}
	runAndCheckState(t, cpu, 1, "A", uint8(0x42))

	cfg = DefaultConfig()
	cfg.StartPC = 0x0600
	cpu = loadCPUWith(t, cfg, "fffc: 00 c0")
	if cpu.PC != 0x0600 {
		t.Fatalf("got PC=%04X, want 0600", cpu.PC)
	}
}

func TestSaveLoadState(t *testing.T) {
	cpu := loadCPUWith(t, DefaultConfig(), `a000: a9 01 48 e8 02`)
	if err := cpu.Run(2); err != nil {
		t.Fatal(err)
	}
	saved := cpu.SaveState()

	if err := cpu.Run(NoLimit); err == nil {
		t.Fatal("expected a decode error")
	}

	cpu.LoadState(saved)
	if halted, _ := cpu.Halted(); halted {
		t.Fatalf("CPU still halted after LoadState")
	}
	runAndCheckState(t, cpu, 1,
		"X", uint8(0x01),
		"SP", uint8(0xFE),
		"PC", uint16(0xA004),
	)
	if cpu.Instructions != 3 {
		t.Errorf("got %d instructions, want 3", cpu.Instructions)
	}
}

func TestRegistersString(t *testing.T) {
	regs := Registers{PC: 0xA002, SP: 0xFD, A: 0x01, X: 0x02, Y: 0x03, P: 0x81}
	const want = "PC:A002 SP:FD A:01 X:02 Y:03 P:81(Nv-bdizC)"
	if got := regs.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
