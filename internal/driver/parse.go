package driver

import (
	"context"
	"fmt"
	"strconv"

	"dbml/internal/diag"
	"dbml/internal/lexer"
	"dbml/internal/observ"
	"dbml/internal/parser"
	"dbml/internal/source"
	"dbml/internal/syntax"
	"dbml/internal/trace"
)

// Options управляют одним разбором. Нулевое значение: без трассировки и таймингов.
type Options struct {
	Tracer trace.Tracer
	Timer  *observ.Timer
	// ParentSpan: span вызывающего (0 если корень).
	ParentSpan uint64
}

// Parse разбирает текст целиком. Дерево возвращается всегда, ошибки лежат в его диагностиках.
func Parse(text string) *syntax.Tree {
	return ParseSource(source.From(text, ""), Options{})
}

// OptionsFrom берёт трассировщик и родительский span из ctx.
func OptionsFrom(ctx context.Context) Options {
	return Options{Tracer: trace.FromContext(ctx), ParentSpan: trace.SpanID(ctx)}
}

// ParseContext как Parse, но берёт трассировщик из ctx. Контекст не отменяет разбор.
func ParseContext(ctx context.Context, text, name string) *syntax.Tree {
	return ParseSource(source.From(text, name), OptionsFrom(ctx))
}

// Load читает файл один раз и разбирает его. Ошибки ввода-вывода возвращаются как error.
func Load(path string) (*syntax.Tree, error) {
	return LoadWith(path, Options{})
}

// LoadWith is Load with explicit options.
func LoadWith(path string, opts Options) (*syntax.Tree, error) {
	idx := opts.Timer.Begin("load")
	text, err := source.Load(path)
	opts.Timer.End(idx, "")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ParseSource(text, opts), nil
}

// ParseSource это общий путь, лексинг целиком, затем разбор.
func ParseSource(text *source.Text, opts Options) *syntax.Tree {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}

	return syntax.NewTree(text, func(owner *syntax.Tree) (*syntax.CompUnit, []diag.Diagnostic) {
		bag := diag.NewBag()
		reporter := diag.BagReporter{Bag: bag}

		lexSpan := trace.Begin(tracer, trace.ScopePass, "lex", opts.ParentSpan)
		idx := opts.Timer.Begin("lex")
		tokens := lexer.LexAll(lexer.New(owner.Text(), lexer.Options{Reporter: reporter}))
		opts.Timer.End(idx, strconv.Itoa(len(tokens))+" tokens")
		lexSpan.WithExtra("tokens", strconv.Itoa(len(tokens))).End("")

		parseSpan := trace.Begin(tracer, trace.ScopePass, "parse", opts.ParentSpan)
		idx = opts.Timer.Begin("parse")
		p := parser.New(owner.Text(), tokens, parser.Options{
			Reporter:   reporter,
			Tracer:     tracer,
			ParentSpan: parseSpan.ID(),
		})
		root := p.ParseCompilationUnit()
		opts.Timer.End(idx, strconv.Itoa(len(root.Members))+" members")
		parseSpan.WithExtra("diagnostics", strconv.Itoa(bag.Len())).End("")

		return root, bag.Snapshot()
	})
}

// ParseTokens запускает только лексер и отдаёт токены без дерева. BadToken-ы свёрнуты в trivia.
// Без includeEndOfFile последний EndOfFileToken отбрасывается.
func ParseTokens(text string, includeEndOfFile bool) ([]*syntax.Token, []diag.Diagnostic) {
	bag := diag.NewBag()
	src := source.From(text, "")
	tokens := lexer.LexAll(lexer.New(src, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}))
	if !includeEndOfFile {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens, bag.Snapshot()
}
