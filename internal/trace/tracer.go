package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Tracer receives events. Implementations must be safe for concurrent Emit.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool // Level() > LevelOff
}

const defaultRingSize = 4096

type nopTracer struct{}

func (nopTracer) Emit(*Event)   {}
func (nopTracer) Flush() error  { return nil }
func (nopTracer) Close() error  { return nil }
func (nopTracer) Level() Level  { return LevelOff }
func (nopTracer) Enabled() bool { return false }

// Nop discards everything; FromContext returns it when no tracer is attached.
var Nop Tracer = nopTracer{}

// StorageMode selects where events go.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // пишем сразу
	ModeRing                          // держим последние N в памяти
	ModeBoth                          // Tee
)

var modeNames = [...]string{
	ModeStream: "stream",
	ModeRing:   "ring",
	ModeBoth:   "both",
}

func (m StorageMode) String() string {
	if m == 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode accepts stream, ring or both in any case.
func ParseMode(s string) (StorageMode, error) {
	for m, name := range modeNames {
		if m != 0 && strings.EqualFold(s, name) {
			return StorageMode(m), nil
		}
	}
	return ModeRing, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
}

// Config describes a tracer. Output wins over OutputPath; an empty path or
// "-" means stderr. RingSize defaults to 4096.
type Config struct {
	Level      Level
	Mode       StorageMode
	Format     Format
	Output     io.Writer
	OutputPath string
	RingSize   int
}

// New builds the tracer cfg asks for. LevelOff always yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	size := cfg.RingSize
	if size <= 0 {
		size = defaultRingSize
	}
	if cfg.Mode == ModeRing {
		return NewRingTracer(size, cfg.Level), nil
	}
	if cfg.Mode != ModeStream && cfg.Mode != ModeBoth {
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	}

	w, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	stream := NewStreamTracer(w, cfg.Level, resolveFormat(cfg))
	if cfg.Mode == ModeStream {
		return stream, nil
	}
	return &Tee{Stream: stream, Ring: NewRingTracer(size, cfg.Level)}, nil
}

// resolveFormat picks NDJSON for .json/.ndjson paths when the format is auto.
func resolveFormat(cfg Config) Format {
	if cfg.Format != FormatAuto {
		return cfg.Format
	}
	switch filepath.Ext(cfg.OutputPath) {
	case ".json", ".ndjson":
		return FormatNDJSON
	}
	return FormatText
}

func isStdStream(w io.Writer) bool {
	return w == os.Stderr || w == os.Stdout
}

func openOutput(cfg Config) (io.Writer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return os.Stderr, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}
