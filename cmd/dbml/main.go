package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dbml/internal/version"
)

// errFailed: ошибки уже напечатаны, нужен только код выхода 1.
var errFailed = errors.New("failed")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "dbml",
		Short:             "DBML schema toolchain",
		Long:              `dbml tokenizes, parses and checks database schema descriptions`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: startProfiling,
	}

	// Глобальные флаги
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	flags.String("config", "", "path to dbml.toml (default: search upwards from the working directory)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	flags.String("cpu-profile", "", "write CPU profile to file")
	flags.String("mem-profile", "", "write heap profile to file on exit")
	flags.String("runtime-trace", "", "write Go runtime trace to file")

	rootCmd.AddCommand(newTokenizeCmd(), newParseCmd(), newDiagCmd(), newVersionCmd())
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	stopProfiling()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
