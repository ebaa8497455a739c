package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"emu6502/emu/log"
)

type mode byte

const (
	runMode    mode = iota // Run a program image
	disasmMode             // Disassemble a program image
	infosMode              // Show program image infos
	configMode             // Show effective configuration
	versionMode            // Show emu6502 version
)

type (
	CLI struct {
		Run     Run     `cmd:"" help:"Run a program image."`
		Disasm  Disasm  `cmd:"" help:"Disassemble a program image."`
		Infos   Infos   `cmd:"" help:"Show program image infos."`
		Config  Config  `cmd:"" help:"Show the effective configuration, in TOML."`
		Version Version `cmd:"" help:"Show emu6502 version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Run struct {
		ImagePath string `arg:"" name:"/path/to/image" help:"${image_help}" required:"true" type:"existingfile"`

		Limit       int64    `name:"limit" help:"Stop after N instructions (-1 for no limit)." default:"-1" placeholder:"N"`
		Start       *address `name:"start" help:"Initial program counter." placeholder:"ADDR"`
		LoadAddr    *address `name:"load-addr" help:"Load address of raw binary images." placeholder:"ADDR"`
		Trace       *outfile `name:"trace" help:"Write CPU execution trace." placeholder:"FILE|stdout|stderr"`
		ConfigPath  string   `name:"config" help:"${config_help}" type:"path"`
		SaveState   string   `name:"save-state" help:"Save machine state to file when the run ends." type:"path" placeholder:"FILE"`
		LoadState   string   `name:"load-state" help:"Resume from a machine state file." type:"existingfile" placeholder:"FILE"`
		StackWrap   bool     `name:"stack-wrap" help:"Wrap the stack pointer around instead of halting on stack overflow/underflow."`
		ResetVector bool     `name:"reset-vector" help:"Read the initial program counter from the reset vector ($FFFC)."`
		NoConsole   bool     `name:"no-console" help:"Disable the console output port."`
	}

	Disasm struct {
		ImagePath  string   `arg:"" name:"/path/to/image" help:"${image_help}" required:"true" type:"existingfile"`
		From       *address `name:"from" help:"First address to disassemble. (default: image start)" placeholder:"ADDR"`
		To         *address `name:"to" help:"Last address to disassemble. (default: image end)" placeholder:"ADDR"`
		LoadAddr   *address `name:"load-addr" help:"Load address of raw binary images." placeholder:"ADDR"`
		ConfigPath string   `name:"config" help:"${config_help}" type:"path"`
	}

	Infos struct {
		ImagePath  string   `arg:"" name:"/path/to/image" help:"${image_help}" required:"true" type:"existingfile"`
		LoadAddr   *address `name:"load-addr" help:"Load address of raw binary images." placeholder:"ADDR"`
		ConfigPath string   `name:"config" help:"${config_help}" type:"path"`
	}

	Config struct {
		ConfigPath string `name:"config" help:"${config_help}" type:"path"`
		Save       bool   `name:"save" help:"Write the effective configuration to the configuration file."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"image_help":  "Program image: hex dump (.hex, .txt) or raw binary.",
	"config_help": "Configuration file. (default: user config directory)",
	"log_help":    "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("emu6502"),
		kong.Description("6502 CPU emulator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	cmd, _, _ := strings.Cut(ctx.Command(), " ")
	switch cmd {
	case "disasm":
		cfg.mode = disasmMode
	case "infos":
		cfg.mode = infosMode
	case "config":
		cfg.mode = configMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			*lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if *lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		*lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(*lm))
	return nil
}

// address is a 16-bit address, in hexadecimal, with an optional $ or 0x
// prefix.
type address uint16

func parseAddress(s string) (address, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	v, err := strconv.ParseUint(hex, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}
	return address(v), nil
}

// Decode decodes an hexadecimal address.
//
// Implements kong.MapperValue interface.
func (a *address) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	s, ok := tok.Value.(string)
	if !ok {
		return fmt.Errorf("expected an address, got %v", tok.Value)
	}
	v, err := parseAddress(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
