package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dbml/internal/config"
	"dbml/internal/observ"
	"dbml/internal/trace"
)

// settings хранит итоговые значения, флаги поверх dbml.toml поверх умолчаний.
type settings struct {
	color            bool
	quiet            bool
	timings          bool
	maxDiagnostics   int
	warningsAsErrors bool
	diagFormat       string
	traceOutput      string
	traceLevel       string
	traceMode        string
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Resolve(configPath, "")
	if err != nil {
		return settings{}, fmt.Errorf("config: %w", err)
	}

	s := settings{
		maxDiagnostics:   cfg.Diagnostics.Max,
		warningsAsErrors: cfg.Diagnostics.WarningsAsErrors,
		diagFormat:       cfg.Diagnostics.Format,
		traceOutput:      cfg.Trace.Output,
		traceLevel:       cfg.Trace.Level,
		traceMode:        "stream",
	}
	colorMode := cfg.Output.Color

	if flags.Changed("color") {
		if colorMode, err = flags.GetString("color"); err != nil {
			return settings{}, err
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return settings{}, err
		}
	}
	if flags.Changed("trace") {
		if s.traceOutput, err = flags.GetString("trace"); err != nil {
			return settings{}, err
		}
	}
	if flags.Changed("trace-level") {
		if s.traceLevel, err = flags.GetString("trace-level"); err != nil {
			return settings{}, err
		}
	}
	if s.traceMode, err = flags.GetString("trace-mode"); err != nil {
		return settings{}, err
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return settings{}, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return settings{}, err
	}

	switch colorMode {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto":
		s.color = isTerminal(cmd.ErrOrStderr())
	default:
		return settings{}, fmt.Errorf("invalid --color %q (expected: auto|on|off)", colorMode)
	}
	return s, nil
}

// setupTracing создаёт трассировщик и кладёт его в контекст команды.
// Возвращает функцию очистки; ей передаётся, завершилась ли команда ошибкой.
func setupTracing(cmd *cobra.Command, s settings) (func(failed bool), error) {
	level, err := trace.ParseLevel(s.traceLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(bool) {}, nil
	}

	mode, err := trace.ParseMode(s.traceMode)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}
	cfg := trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: s.traceOutput,
	}
	if s.traceOutput == "-" {
		cfg.Output = cmd.ErrOrStderr()
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	return func(failed bool) {
		var ring *trace.RingTracer
		switch t := tracer.(type) {
		case *trace.RingTracer:
			ring = t
		case *trace.Tee:
			// поток уже в файле; последние события нужны на stderr только при ошибке
			if failed && cfg.Output == nil {
				ring = t.Ring
			}
		}
		if ring != nil {
			if err := ring.Dump(cmd.ErrOrStderr(), trace.FormatText); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

func newTimer(s settings) *observ.Timer {
	if !s.timings {
		return nil
	}
	return observ.NewTimer()
}

func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	if timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}
