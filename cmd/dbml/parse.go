package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dbml/internal/diagfmt"
	"dbml/internal/driver"
	"dbml/internal/trace"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.dbml",
		Short: "Parse a DBML file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json)")
	cmd.Flags().Bool("trivia", false, "show trivia in the tree output")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) (retErr error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	showTrivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, s)
	if err != nil {
		return err
	}
	defer func() { cleanup(retErr != nil) }()

	tracer := trace.FromContext(cmd.Context())
	span := trace.Begin(tracer, trace.ScopeDriver, "parse", 0)
	timer := newTimer(s)

	tree, err := driver.LoadWith(args[0], driver.Options{Tracer: tracer, Timer: timer, ParentSpan: span.ID()})
	if err != nil {
		span.End(err.Error())
		return fmt.Errorf("parsing failed: %w", err)
	}
	span.End("")

	if diags := tree.Diagnostics(); len(diags) > 0 && !s.quiet {
		opts := diagfmt.PrettyOpts{Color: s.color, Context: 2, Max: s.maxDiagnostics}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), diags, opts); err != nil {
			return err
		}
	}

	switch format {
	case "tree":
		err = diagfmt.FormatTreePretty(cmd.OutOrStdout(), tree.Root(), diagfmt.TreeOpts{Color: s.color, Trivia: showTrivia})
	case "json":
		err = diagfmt.FormatTreeJSON(cmd.OutOrStdout(), tree.Root())
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	printTimings(cmd, timer)
	return err
}
