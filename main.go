package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	cfg := parseArgs(os.Args[1:])

	switch cfg.mode {
	case runMode:
		os.Exit(runMain(cfg.Run))
	case disasmMode:
		disasmMain(cfg.Disasm)
	case infosMode:
		infosMain(cfg.Infos)
	case configMode:
		configMain(cfg.Config)
	case versionMode:
		fmt.Println("emu6502", version())
	}
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}
