package hwio

import "emu6502/emu/log"

type RWFlags uint8

const (
	ReadOnlyFlag RWFlags = 1 << iota
	WriteOnlyFlag
)

// Device is a Bus implementation that allows manual management of a range of
// addresses through callbacks. Addresses passed to callbacks are absolute.
type Device struct {
	Name  string // name of the device (for debugging)
	Size  int    // number of addresses covered by the device
	Flags RWFlags

	ReadCb  func(addr uint16) uint8
	PeekCb  func(addr uint16) uint8
	WriteCb func(addr uint16, val uint8)
}

func (d *Device) Read8(addr uint16) uint8 {
	switch {
	case d.Flags&WriteOnlyFlag != 0:
		log.ModHwIo.ErrorZ("invalid Read8 from writeonly device").
			String("name", d.Name).
			Hex16("addr", addr).
			End()
		return 0
	case d.ReadCb == nil:
		return 0
	}
	return d.ReadCb(addr)
}

func (d *Device) Peek8(addr uint16) uint8 {
	if d.PeekCb != nil {
		return d.PeekCb(addr)
	}
	return 0
}

func (d *Device) Write8(addr uint16, val uint8) {
	switch {
	case d.Flags&ReadOnlyFlag != 0:
		log.ModHwIo.ErrorZ("invalid Write8 to readonly device").
			String("name", d.Name).
			Hex16("addr", addr).
			Hex8("val", val).
			End()
		return
	case d.WriteCb == nil:
		return
	}
	d.WriteCb(addr, val)
}
