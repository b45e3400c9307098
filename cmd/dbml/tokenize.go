package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dbml/internal/diagfmt"
	"dbml/internal/driver"
	"dbml/internal/trace"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.dbml",
		Short: "Tokenize a DBML file",
		Long:  `Tokenize breaks down a DBML file into its tokens with their trivia`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) (retErr error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
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

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeDriver, "tokenize", 0)
	opts := driver.OptionsFrom(trace.WithSpan(cmd.Context(), span))
	opts.Timer = newTimer(s)

	result, err := driver.Tokenize(args[0], opts)
	if err != nil {
		span.End(err.Error())
		return fmt.Errorf("tokenization failed: %w", err)
	}
	span.End("")

	// Выводим диагностику в stderr, если есть
	if len(result.Diagnostics) > 0 && !s.quiet {
		opts := diagfmt.PrettyOpts{Color: s.color, Context: 2, Max: s.maxDiagnostics}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), result.Diagnostics, opts); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.Text)
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(out, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	printTimings(cmd, opts.Timer)
	return err
}
