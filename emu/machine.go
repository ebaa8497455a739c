package emu

import (
	"io"
	"os"

	"github.com/go-faster/errors"

	"emu6502/emu/log"
	"emu6502/hw"
	"emu6502/hw/hwio"
	"emu6502/hw/snapshot"
	"emu6502/image"
)

// Machine is a 6502 CPU connected to 64KB of RAM, with an optional console
// output port mapped over it.
type Machine struct {
	Mem     *hwio.Mem
	Bus     *hwio.Table
	CPU     *hw.CPU
	Console *Console // nil if disabled

	cfg Config
}

// NewMachine powers up a machine. Console output goes to out, or is
// discarded if out is nil.
func NewMachine(cfg Config, out io.Writer) *Machine {
	if out == nil {
		out = io.Discard
	}

	mem := hwio.NewMem("ram")
	bus := hwio.NewTable("cpu", mem)

	m := &Machine{
		Mem: mem,
		Bus: bus,
		cfg: cfg,
	}

	if cfg.Console.Enabled {
		m.Console = NewConsole(out)
		bus.MapDevice(cfg.Console.Port, m.Console.Device())
	}

	m.CPU = hw.NewCPU(bus, cfg.CPU)

	// CPU execution trace setup.
	if cfg.TraceOut != nil {
		m.CPU.SetTraceOutput(cfg.TraceOut)
	}

	return m
}

// Load copies the image segments into memory, then resets the CPU, since
// the reset vector may have been overwritten.
func (m *Machine) Load(img *image.Image) {
	for _, seg := range img.Segments {
		m.Mem.Load(seg.Addr, seg.Data)
		log.ModEmu.DebugZ("segment loaded").
			Hex16("addr", seg.Addr).
			Int("size", len(seg.Data)).
			End()
	}
	m.CPU.Reset()
}

// Run executes limit instructions, or until a fatal error if limit is
// hw.NoLimit.
func (m *Machine) Run(limit int64) error {
	log.AddContext(m.CPU)
	defer log.RemoveContext(m.CPU)
	defer m.flush()

	log.ModEmu.InfoZ("run").Hex16("pc", m.CPU.PC).Int64("limit", limit).End()
	err := m.CPU.Run(limit)
	log.ModEmu.InfoZ("run ended").Int64("instructions", m.CPU.Instructions).End()
	return err
}

func (m *Machine) flush() {
	if m.Console == nil {
		return
	}
	if err := m.Console.Flush(); err != nil {
		log.ModEmu.WarnZ("failed to flush console").Error("err", err).End()
	}
}

// Reset resets the CPU, memory is left untouched.
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// State returns a snapshot of the machine.
func (m *Machine) State() *snapshot.State {
	return &snapshot.State{
		Version: snapshot.Version,
		CPU:     m.CPU.SaveState(),
		RAM:     m.Mem.Data,
	}
}

// SetState restores the machine from a snapshot.
func (m *Machine) SetState(state *snapshot.State) {
	m.Mem.Data = state.RAM
	m.CPU.LoadState(state.CPU)
}

// SaveSnapshot saves the machine state into the file at path.
func (m *Machine) SaveSnapshot(path string) error {
	buf, err := m.State().MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return errors.Wrap(err, "save snapshot")
	}

	log.ModEmu.InfoZ("snapshot saved").String("path", path).Int("size", len(buf)).End()
	return nil
}

// LoadSnapshot restores the machine state from the file at path.
func (m *Machine) LoadSnapshot(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "load snapshot")
	}

	var state snapshot.State
	if err := state.UnmarshalJSON(buf); err != nil {
		return errors.Wrapf(err, "decode snapshot %s", path)
	}
	m.SetState(&state)

	log.ModEmu.InfoZ("snapshot loaded").String("path", path).Hex16("pc", state.CPU.PC).End()
	return nil
}
