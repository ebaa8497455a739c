package emu

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"emu6502/emu/log"
	"emu6502/hw"
)

type Config struct {
	CPU     hw.Config     `toml:"cpu"`
	Console ConsoleConfig `toml:"console"`
	Image   ImageConfig   `toml:"image"`

	TraceOut io.WriteCloser `toml:"-"`
}

type ConsoleConfig struct {
	Enabled bool   `toml:"enabled"`
	Port    uint16 `toml:"port"` // address of the console output port
}

type ImageConfig struct {
	LoadAddr uint16 `toml:"load_addr"` // where raw binaries are loaded
}

// DefaultConsolePort is the address of the console output port.
const DefaultConsolePort = 0x000F

func DefaultConfig() Config {
	return Config{
		CPU: hw.DefaultConfig(),
		Console: ConsoleConfig{
			Enabled: true,
			Port:    DefaultConsolePort,
		},
		Image: ImageConfig{
			LoadAddr: hw.CodeStart,
		},
	}
}

// ConfigDir is the directory holding emu6502 configuration files.
var ConfigDir = sync.OnceValue(func() string {
	return configdir.LocalConfig("emu6502")
})

const cfgFilename = "config.toml"

// DefaultConfigPath returns the path of the configuration file used when
// none is specified.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), cfgFilename)
}

// LoadConfigOrDefault loads the configuration file at path, or the default
// configuration file if path is empty. Settings missing from the file keep
// their default value. If the file doesn't exist or is invalid, the default
// configuration is returned.
func LoadConfigOrDefault(path string) Config {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.ModEmu.DebugZ("no config file, using defaults").String("path", path).End()
		return DefaultConfig()
	case err != nil:
		log.ModEmu.WarnZ("invalid config file, using defaults").
			String("path", path).
			Error("err", err).
			End()
		return DefaultConfig()
	}

	for _, key := range md.Undecoded() {
		log.ModEmu.WarnZ("unknown config key").
			String("path", path).
			String("key", key.String()).
			End()
	}
	return cfg
}

// EncodeConfig writes cfg in TOML format.
func EncodeConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// SaveConfig writes cfg into the file at path, creating its directory if
// needed.
func SaveConfig(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := EncodeConfig(&buf, cfg); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
