package main

import (
	"fmt"
	"os"

	"emu6502/emu"
	"emu6502/hw"
	"emu6502/hw/hwio"
	"emu6502/image"
)

// applyFlags overrides the configuration with the command line flags that
// have been set.
func (r *Run) applyFlags(cfg *emu.Config) {
	if r.Start != nil {
		cfg.CPU.StartPC = uint16(*r.Start)
		cfg.CPU.UseResetVector = false
	}
	if r.ResetVector {
		cfg.CPU.UseResetVector = true
	}
	if r.StackWrap {
		cfg.CPU.StackPolicy = hw.StackWrap
	}
	if r.LoadAddr != nil {
		cfg.Image.LoadAddr = uint16(*r.LoadAddr)
	}
	if r.NoConsole {
		cfg.Console.Enabled = false
	}
	if r.Trace != nil {
		cfg.TraceOut = r.Trace
	}
}

// runMain runs the program image and returns the process exit code.
func runMain(args Run) int {
	cfg := emu.LoadConfigOrDefault(args.ConfigPath)
	args.applyFlags(&cfg)
	if cfg.TraceOut != nil {
		defer cfg.TraceOut.Close()
	}

	img, err := image.Read(args.ImagePath, cfg.Image.LoadAddr)
	checkf(err, "failed to read image %s", args.ImagePath)

	m := emu.NewMachine(cfg, os.Stdout)
	m.Load(img)

	if args.LoadState != "" {
		checkf(m.LoadSnapshot(args.LoadState), "failed to resume from %s", args.LoadState)
	}

	runErr := m.Run(args.Limit)

	if args.SaveState != "" {
		checkf(m.SaveSnapshot(args.SaveState), "failed to save state to %s", args.SaveState)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "\nemulation halted after %d instructions: %s\n", m.CPU.Instructions, runErr)
		return 1
	}

	fmt.Fprintf(os.Stderr, "\nstopped after %d instructions\n%s\n", m.CPU.Instructions, m.CPU.Regs())
	return 0
}

func disasmMain(args Disasm) {
	cfg := emu.LoadConfigOrDefault(args.ConfigPath)
	if args.LoadAddr != nil {
		cfg.Image.LoadAddr = uint16(*args.LoadAddr)
	}

	img, err := image.Read(args.ImagePath, cfg.Image.LoadAddr)
	checkf(err, "failed to read image %s", args.ImagePath)

	mem := hwio.NewMem("ram")
	for _, seg := range img.Segments {
		mem.Load(seg.Addr, seg.Data)
	}

	// Without an explicit range, disassemble each segment in turn.
	ranges := [][2]uint16{}
	if args.From != nil || args.To != nil {
		from, to := img.Segments[0].Addr, img.Segments[len(img.Segments)-1].End()
		if args.From != nil {
			from = uint16(*args.From)
		}
		if args.To != nil {
			to = uint16(*args.To)
		}
		if from > to {
			fatalf("invalid range $%04X-$%04X", from, to)
		}
		ranges = append(ranges, [2]uint16{from, to})
	} else {
		for _, seg := range img.Segments {
			ranges = append(ranges, [2]uint16{seg.Addr, seg.End()})
		}
	}

	for i, r := range ranges {
		if i > 0 {
			fmt.Println()
		}
		for _, op := range hw.Disassemble(mem, r[0], r[1]) {
			fmt.Println(op)
		}
	}
}

func infosMain(args Infos) {
	cfg := emu.LoadConfigOrDefault(args.ConfigPath)
	if args.LoadAddr != nil {
		cfg.Image.LoadAddr = uint16(*args.LoadAddr)
	}

	img, err := image.Read(args.ImagePath, cfg.Image.LoadAddr)
	checkf(err, "failed to read image %s", args.ImagePath)
	img.Infos(os.Stdout)
}

func configMain(args Config) {
	path := args.ConfigPath
	if path == "" {
		path = emu.DefaultConfigPath()
	}

	cfg := emu.LoadConfigOrDefault(path)
	checkf(emu.EncodeConfig(os.Stdout, cfg), "failed to encode configuration")

	if args.Save {
		checkf(emu.SaveConfig(path, cfg), "failed to save configuration")
		fmt.Fprintf(os.Stderr, "configuration saved to %s\n", path)
	}
}
