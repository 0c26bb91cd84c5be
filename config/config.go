package config

import (
	"fmt"
	"os"
	"time"

	"github.com/indigo-web/utils/strcomp"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	EnvPublicPath = "PUBLIC_PATH"
	EnvAddr       = "LITE_ADDR"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type (
	NET struct {
		// Addr is the address the server listens on.
		Addr string `json:"addr"`
		// ReadBufferSize is the size of the buffer a request is read into. A request is read
		// just once, so everything beyond the buffer is never seen by the parser.
		ReadBufferSize int `json:"read_buffer_size"`
		// ReadTimeout limits how long can a client stay silent after connecting. In a config
		// file it's a duration string like "90s".
		ReadTimeout Duration `json:"read_timeout"`
		// WriteBufferSize is the initial capacity of the buffer responses are rendered into.
		WriteBufferSize int `json:"write_buffer_size"`
	}

	Static struct {
		// Root is the directory files are served from.
		Root string `json:"root"`
	}

	Log struct {
		// Level is one of zap levels: debug, info, warn, error.
		Level string `json:"level"`
		// Format is either console or json.
		Format string `json:"format"`
	}
)

// Config holds settings of the server shell. The request codec itself has no settings.
//
// Prefer modifying defaults (returned via Default()) over initializing the config manually.
type Config struct {
	NET    NET    `json:"net"`
	Static Static `json:"static"`
	Log    Log    `json:"log"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			Addr:            "127.0.0.1:4000",
			ReadBufferSize:  1024,
			ReadTimeout:     Duration(90 * time.Second),
			WriteBufferSize: 1024,
		},
		Static: Static{
			Root: "public",
		},
		Log: Log{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// Fill takes some config and fills it with default values everywhere where it
// is not filled
func Fill(original Config) *Config {
	def := Default()

	original.NET.Addr = customOrDefault(original.NET.Addr, def.NET.Addr)
	original.NET.ReadBufferSize = customOrDefault(original.NET.ReadBufferSize, def.NET.ReadBufferSize)
	original.NET.ReadTimeout = customOrDefault(original.NET.ReadTimeout, def.NET.ReadTimeout)
	original.NET.WriteBufferSize = customOrDefault(original.NET.WriteBufferSize, def.NET.WriteBufferSize)
	original.Static.Root = customOrDefault(original.Static.Root, def.Static.Root)
	original.Log.Level = customOrDefault(original.Log.Level, def.Log.Level)
	original.Log.Format = customOrDefault(original.Log.Format, def.Log.Format)

	return &original
}

// Load reads a JSON config file. Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return Fill(cfg), nil
}

// FromEnv overrides the config with values from environment, if set.
func FromEnv(cfg *Config) *Config {
	if root, ok := os.LookupEnv(EnvPublicPath); ok && len(root) > 0 {
		cfg.Static.Root = root
	}

	if addr, ok := os.LookupEnv(EnvAddr); ok && len(addr) > 0 {
		cfg.NET.Addr = addr
	}

	return cfg
}

// Build constructs a logger as described by the config.
func (l Log) Build() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}

	var zcfg zap.Config
	switch {
	case strcomp.EqualFold(l.Format, FormatJSON):
		zcfg = zap.NewProductionConfig()
	case strcomp.EqualFold(l.Format, FormatConsole):
		zcfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("config: unknown log format: %q", l.Format)
	}

	zcfg.Level = level

	return zcfg.Build()
}

func customOrDefault[T comparable](custom, defaultVal T) T {
	var zero T
	if custom == zero {
		return defaultVal
	}

	return custom
}
