package hwio

import (
	"fmt"

	"emu6502/emu/log"
)

type mapping struct {
	start, end uint16 // inclusive
	dev        *Device
}

// Table is a Bus routing accesses either to a mapped device or, when no
// device covers the address, to the backing memory.
type Table struct {
	Name string
	Mem  *Mem

	// devices mapped on each 256-bytes page.
	pages [0x100][]mapping
}

// NewTable returns a table backed by mem. If mem is nil a new zeroed memory
// is created.
func NewTable(name string, mem *Mem) *Table {
	if mem == nil {
		mem = NewMem(name)
	}
	return &Table{Name: name, Mem: mem}
}

// MapDevice maps dev at addr, covering dev.Size addresses. Mapping over an
// already mapped device panics.
func (t *Table) MapDevice(addr uint16, dev *Device) {
	if dev.Size <= 0 || int(addr)+dev.Size > MemSize {
		panic(fmt.Sprintf("hwio: invalid device %q size %d at $%04X", dev.Name, dev.Size, addr))
	}

	m := mapping{start: addr, end: addr + uint16(dev.Size-1), dev: dev}
	for page := int(m.start >> 8); page <= int(m.end>>8); page++ {
		for _, other := range t.pages[page] {
			if m.start <= other.end && other.start <= m.end {
				panic(fmt.Sprintf("hwio: device %q at $%04X overlaps %q", dev.Name, addr, other.dev.Name))
			}
		}
		t.pages[page] = append(t.pages[page], m)
	}

	log.ModHwIo.DebugZ("mapped device").
		String("table", t.Name).
		String("name", dev.Name).
		Hex16("start", m.start).
		Hex16("end", m.end).
		End()
}

// Unmap removes all devices.
func (t *Table) Unmap() {
	t.pages = [0x100][]mapping{}
}

func (t *Table) lookup(addr uint16) *Device {
	for _, m := range t.pages[addr>>8] {
		if addr >= m.start && addr <= m.end {
			return m.dev
		}
	}
	return nil
}

func (t *Table) Read8(addr uint16) uint8 {
	if dev := t.lookup(addr); dev != nil {
		return dev.Read8(addr)
	}
	return t.Mem.Read8(addr)
}

func (t *Table) Peek8(addr uint16) uint8 {
	if dev := t.lookup(addr); dev != nil {
		return dev.Peek8(addr)
	}
	return t.Mem.Peek8(addr)
}

func (t *Table) Write8(addr uint16, val uint8) {
	if dev := t.lookup(addr); dev != nil {
		dev.Write8(addr, val)
		return
	}
	t.Mem.Write8(addr, val)
}
