package parser

import (
	"dbml/internal/diag"
	"dbml/internal/source"
	"dbml/internal/syntax"
	"dbml/internal/trace"
)

type Options struct {
	Reporter diag.Reporter // может быть nil
	Tracer   trace.Tracer  // nil: без трассировки
	// ParentSpan связывает события парсера со span-ом драйвера.
	ParentSpan uint64
}

// Parser: состояние парсера на один документ.
type Parser struct {
	text   *source.Text
	tokens []*syntax.Token // весь поток сразу, последний: EndOfFileToken
	pos    int
	opts   Options

	// имена в области документа
	tables map[string]struct{}
	enums  map[string]struct{}
}

// New creates a parser over an eagerly lexed token stream (see lexer.LexAll).
// The stream must end with EndOfFileToken and contain no BadToken.
func New(text *source.Text, tokens []*syntax.Token, opts Options) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind() != syntax.EndOfFileToken {
		tokens = append(tokens, syntax.NewToken(syntax.EndOfFileToken, text.Len(), "", nil, nil, nil))
	}
	return &Parser{
		text:   text,
		tokens: tokens,
		opts:   opts,
		tables: make(map[string]struct{}),
		enums:  make(map[string]struct{}),
	}
}

// ParseCompilationUnit крутит основной цикл верхнего уровня: parseMember до EOF.
// Если член ничего не съел, текущий токен пропускается в trivia.
func (p *Parser) ParseCompilationUnit() *syntax.CompUnit {
	var members []syntax.Member
	for !p.at(syntax.EndOfFileToken) {
		start := p.pos
		m := p.parseMember()
		if p.pos == start {
			p.skip()
			continue
		}
		p.traceMember(m)
		members = append(members, m)
	}
	eof := p.matchToken(syntax.EndOfFileToken)
	return syntax.NewCompUnit(members, eof)
}

// parseMember выбирает по первому токену нужный распознаватель top-level конструкции.
func (p *Parser) parseMember() syntax.Member {
	switch p.current().Kind() {
	case syntax.ProjectKeyword:
		return p.parseProject()
	case syntax.TableKeyword:
		return p.parseTable()
	case syntax.EnumKeyword:
		return p.parseEnum()
	case syntax.RefKeyword:
		return p.parseRef()
	default:
		return syntax.NewGlobalStmt(p.parseStatement(ctxGlobal))
	}
}

func (p *Parser) traceMember(m syntax.Member) {
	t := p.opts.Tracer
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(trace.ScopeNode) {
		return
	}
	trace.Point(t, trace.ScopeNode, m.Kind().String(), p.opts.ParentSpan, m.Span().String())
}
