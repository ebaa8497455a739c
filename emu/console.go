package emu

import (
	"bufio"
	"io"

	"golang.org/x/term"

	"emu6502/emu/log"
	"emu6502/hw/hwio"
)

// Console is a write-only output port: each byte written to it is printed as
// a character.
type Console struct {
	w         *bufio.Writer
	autoFlush bool
	last      uint8 // last written byte, for Peek8.
}

// NewConsole returns a console printing to w. Output is flushed after each
// character when w is a terminal, and buffered otherwise.
func NewConsole(w io.Writer) *Console {
	c := &Console{w: bufio.NewWriter(w)}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		c.autoFlush = term.IsTerminal(int(f.Fd()))
	}
	return c
}

// Device returns the device to map at the console port address.
func (c *Console) Device() *hwio.Device {
	return &hwio.Device{
		Name:    "console",
		Size:    1,
		Flags:   hwio.WriteOnlyFlag,
		PeekCb:  func(uint16) uint8 { return c.last },
		WriteCb: c.write,
	}
}

func (c *Console) write(addr uint16, val uint8) {
	c.last = val
	if err := c.w.WriteByte(val); err != nil {
		log.ModHwIo.WarnZ("console write failed").Hex16("addr", addr).Error("err", err).End()
		return
	}
	if c.autoFlush {
		c.Flush()
	}
}

// Flush writes any buffered output.
func (c *Console) Flush() error {
	return c.w.Flush()
}
