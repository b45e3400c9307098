// Package prof collects pprof profiles and runtime traces for a single CLI run.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Config задаёт пути; пустой путь отключает соответствующий профиль.
type Config struct {
	CPU     string
	Heap    string
	Runtime string
}

// Enabled reports whether any profile was requested.
func (c Config) Enabled() bool {
	return c.CPU != "" || c.Heap != "" || c.Runtime != ""
}

// Session owns the open profile files until Stop.
type Session struct {
	heap    string
	cpu     *os.File
	rt      *os.File
	stopped bool
}

// Start opens every requested profile. On error nothing is left running.
func Start(cfg Config) (*Session, error) {
	s := &Session{heap: cfg.Heap}
	if cfg.CPU != "" {
		f, err := os.Create(cfg.CPU)
		if err != nil {
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		s.cpu = f
	}
	if cfg.Runtime != "" {
		f, err := os.Create(cfg.Runtime)
		if err == nil {
			if err = trace.Start(f); err != nil {
				_ = f.Close()
			}
		}
		if err != nil {
			s.heap = ""
			_ = s.Stop()
			return nil, fmt.Errorf("runtime trace: %w", err)
		}
		s.rt = f
	}
	return s, nil
}

// Stop ends the CPU profile and the runtime trace, then writes the heap
// profile. Повторный вызов ничего не делает; nil-сессия тоже допустима.
func (s *Session) Stop() error {
	if s == nil || s.stopped {
		return nil
	}
	s.stopped = true

	var errs []error
	if s.rt != nil {
		trace.Stop()
		errs = append(errs, s.rt.Close())
	}
	if s.cpu != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpu.Close())
	}
	if s.heap != "" {
		errs = append(errs, writeHeap(s.heap))
	}
	return errors.Join(errs...)
}

func writeHeap(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	return nil
}
