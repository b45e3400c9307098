// Package config reads dbml.toml, the optional per-project CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"dbml/internal/trace"
)

// FileName is the configuration file looked up from the working directory upwards.
const FileName = "dbml.toml"

// ErrInvalidValue marks a key whose value is outside the accepted set.
var ErrInvalidValue = errors.New("invalid value")

var (
	diagFormats = []string{"pretty", "short", "json", "msgpack"}
	colorModes  = []string{"auto", "on", "off"}
)

type Config struct {
	Diagnostics Diagnostics `toml:"diagnostics"`
	Output      Output      `toml:"output"`
	Trace       Trace       `toml:"trace"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type Diagnostics struct {
	Max              int    `toml:"max"`
	WarningsAsErrors bool   `toml:"warnings_as_errors"`
	Format           string `toml:"format"`
}

type Output struct {
	Color string `toml:"color"`
}

type Trace struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// Default returns the values used when no dbml.toml exists.
func Default() Config {
	return Config{
		Diagnostics: Diagnostics{Max: 100, Format: "pretty"},
		Output:      Output{Color: "auto"},
		Trace:       Trace{Level: "off", Output: "-"},
	}
}

// Find walks up from startDir to locate dbml.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path on top of Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest dbml.toml above startDir,
// otherwise the defaults.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every enumerated value.
func (c Config) Validate() error {
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("diagnostics.max = %d: %w", c.Diagnostics.Max, ErrInvalidValue)
	}
	if !slices.Contains(diagFormats, c.Diagnostics.Format) {
		return fmt.Errorf("diagnostics.format = %q (expected: %s): %w",
			c.Diagnostics.Format, strings.Join(diagFormats, "|"), ErrInvalidValue)
	}
	if !slices.Contains(colorModes, c.Output.Color) {
		return fmt.Errorf("output.color = %q (expected: %s): %w",
			c.Output.Color, strings.Join(colorModes, "|"), ErrInvalidValue)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("trace.level: %w: %w", err, ErrInvalidValue)
	}
	return nil
}
