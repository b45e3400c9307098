package driver

import (
	"fmt"

	"dbml/internal/diag"
	"dbml/internal/lexer"
	"dbml/internal/source"
	"dbml/internal/syntax"
	"dbml/internal/trace"
)

type TokenizeResult struct {
	Text        *source.Text
	Tokens      []*syntax.Token
	Diagnostics []diag.Diagnostic
}

// Tokenize загружает файл и возвращает все токены до EOF включительно.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	idx := opts.Timer.Begin("load")
	text, err := source.Load(path)
	opts.Timer.End(idx, "")
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", path, err)
	}

	bag := diag.NewBag()
	span := trace.Begin(opts.Tracer, trace.ScopePass, "lex", opts.ParentSpan)
	idx = opts.Timer.Begin("lex")
	tokens := lexer.LexAll(lexer.New(text, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}))
	detail := fmt.Sprintf("%d tokens", len(tokens))
	opts.Timer.End(idx, detail)
	span.End(detail)

	return &TokenizeResult{
		Text:        text,
		Tokens:      tokens,
		Diagnostics: bag.Snapshot(),
	}, nil
}
