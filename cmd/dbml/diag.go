package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dbml/internal/diag"
	"dbml/internal/diagfmt"
	"dbml/internal/driver"
	"dbml/internal/observ"
	"dbml/internal/trace"
)

func newDiagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] file.dbml...",
		Short: "Check DBML files and report diagnostics",
		Long:  `Diag parses every file and prints its diagnostics; exits with 1 when any error is found`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDiag,
	}
	cmd.Flags().String("format", "", "output format (pretty|short|json|msgpack); default from dbml.toml")
	cmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	return cmd
}

func runDiag(cmd *cobra.Command, args []string) (retErr error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	format := s.diagFormat
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = f
	}
	if cmd.Flags().Changed("warnings-as-errors") {
		if s.warningsAsErrors, err = cmd.Flags().GetBool("warnings-as-errors"); err != nil {
			return err
		}
	}

	cleanup, err := setupTracing(cmd, s)
	if err != nil {
		return err
	}
	defer func() { cleanup(retErr != nil) }()

	tracer := trace.FromContext(cmd.Context())
	span := trace.Begin(tracer, trace.ScopeDriver, "diag", 0)
	defer span.End("")
	timer := newTimer(s)

	var all []diag.Diagnostic
	for _, path := range args {
		fileSpan := trace.Begin(tracer, trace.ScopeFile, path, span.ID())
		tree, err := driver.LoadWith(path, driver.Options{Tracer: tracer, Timer: timer, ParentSpan: fileSpan.ID()})
		if err != nil {
			fileSpan.End(err.Error())
			return err
		}
		fileSpan.End("")
		all = append(all, tree.Diagnostics()...)
	}

	if err := writeDiagnostics(cmd.OutOrStdout(), all, format, s, timer); err != nil {
		return err
	}
	if !s.quiet && format == "pretty" && len(all) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), diagfmt.Summary(all))
	}
	if format == "pretty" || format == "short" {
		printTimings(cmd, timer)
	}

	failed := diag.Count(all, diag.SevError) > 0 ||
		(s.warningsAsErrors && diag.Count(all, diag.SevWarning) > 0)
	if failed {
		return errFailed
	}
	return nil
}

// writeDiagnostics печатает диагностики; в json/msgpack таймер уходит в поле timings.
func writeDiagnostics(w io.Writer, items []diag.Diagnostic, format string, s settings, timer *observ.Timer) error {
	jsonOpts := diagfmt.JSONOpts{IncludePositions: true, Max: s.maxDiagnostics}
	if timer != nil {
		report := timer.Report()
		jsonOpts.Timings = &report
	}
	switch format {
	case "pretty":
		return diagfmt.Pretty(w, items, diagfmt.PrettyOpts{Color: s.color, Context: 2, Max: s.maxDiagnostics})
	case "short":
		if len(items) > s.maxDiagnostics && s.maxDiagnostics > 0 {
			items = items[:s.maxDiagnostics]
		}
		if len(items) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, diag.FormatShort(items))
		return err
	case "json":
		return diagfmt.JSON(w, items, jsonOpts)
	case "msgpack":
		return diagfmt.Msgpack(w, items, jsonOpts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
