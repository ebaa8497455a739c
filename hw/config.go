package hw

import "fmt"

// StackPolicy defines what happens when the stack pointer goes past the
// bounds of the stack page.
type StackPolicy uint8

const (
	// StackFatal halts the CPU with a StackError.
	StackFatal StackPolicy = iota
	// StackWrap silently wraps SP around, like the hardware does.
	StackWrap
)

func (sp StackPolicy) String() string {
	switch sp {
	case StackFatal:
		return "fatal"
	case StackWrap:
		return "wrap"
	}
	return fmt.Sprintf("StackPolicy(%d)", uint8(sp))
}

func (sp StackPolicy) MarshalText() ([]byte, error) {
	if sp > StackWrap {
		return nil, fmt.Errorf("invalid stack policy %d", uint8(sp))
	}
	return []byte(sp.String()), nil
}

func (sp *StackPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "fatal", "":
		*sp = StackFatal
	case "wrap":
		*sp = StackWrap
	default:
		return fmt.Errorf("unknown stack policy %q (want fatal or wrap)", text)
	}
	return nil
}

type Config struct {
	// Initial program counter, unless UseResetVector is set.
	StartPC uint16 `toml:"start_pc"`
	// Load the initial program counter from the reset vector ($FFFC-$FFFD).
	UseResetVector bool        `toml:"use_reset_vector"`
	StackPolicy    StackPolicy `toml:"stack_policy"`
	// Reproduce the JMP ($xxFF) hardware bug: the high byte of the target is
	// read from $xx00 rather than from the next page.
	IndirectJumpBug bool `toml:"indirect_jump_bug"`
	// Reproduce the hardware handling of the Break flag: PHP and BRK push P
	// with Break and bit 5 set, PLP and RTI leave Break unchanged. When
	// false, P is pushed as is and PLP/RTI restore every flag.
	HardwareBreakBit bool `toml:"hardware_break_bit"`
}

func DefaultConfig() Config {
	return Config{
		StartPC:     CodeStart,
		StackPolicy: StackFatal,
	}
}
