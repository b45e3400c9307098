package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dbml/internal/prof"
)

// profiling живёт от PersistentPreRunE до выхода из main.
var profiling *prof.Session

func startProfiling(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.Heap, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.Runtime, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	profiling, err = prof.Start(cfg)
	return err
}

func stopProfiling() {
	if err := profiling.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write profiles: %v\n", err)
	}
	profiling = nil
}
