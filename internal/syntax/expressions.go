package syntax

import "dbml/internal/source"

// LiteralExpr wraps a number, string or boolean token.
type LiteralExpr struct {
	nodeBase
	Token *Token
}

func NewLiteralExpr(tok *Token) *LiteralExpr {
	return &LiteralExpr{Token: tok}
}

func (*LiteralExpr) Kind() Kind          { return LiteralExpression }
func (n *LiteralExpr) Span() source.Span { return n.Token.Span() }
func (n *LiteralExpr) Children() []Node  { return []Node{n.Token} }
func (*LiteralExpr) expressionNode()     {}

// Value returns the literal value (decimal.Decimal, string or bool), nil on error.
func (n *LiteralExpr) Value() any { return n.Token.Value }

// NameExpr is a bare name: identifier, keyword or quoted string.
type NameExpr struct {
	nodeBase
	Identifier *Token
}

func NewNameExpr(tok *Token) *NameExpr {
	return &NameExpr{Identifier: tok}
}

func (*NameExpr) Kind() Kind          { return NameExpression }
func (n *NameExpr) Span() source.Span { return n.Identifier.Span() }
func (n *NameExpr) Children() []Node  { return []Node{n.Identifier} }
func (*NameExpr) expressionNode()     {}

// Name returns the denoted name.
func (n *NameExpr) Name() string { return n.Identifier.ValueText() }

// CallExpr is name(arg, ...), e.g. now() inside a backtick default.
type CallExpr struct {
	nodeBase
	Name             *Token
	OpenParenthesis  *Token
	Arguments        *SeparatedList[Expression]
	CloseParenthesis *Token
}

func NewCallExpr(name, open *Token, args *SeparatedList[Expression], closeTok *Token) *CallExpr {
	return &CallExpr{Name: name, OpenParenthesis: open, Arguments: args, CloseParenthesis: closeTok}
}

func (*CallExpr) Kind() Kind          { return CallExpression }
func (n *CallExpr) Span() source.Span { return spanOf(n) }
func (*CallExpr) expressionNode()     {}

func (n *CallExpr) Children() []Node {
	out := tokens(nil, n.Name, n.OpenParenthesis)
	out = append(out, n.Arguments.NodesAndSeparators()...)
	return tokens(out, n.CloseParenthesis)
}

// ParenExpr is '(' Expression ')'.
type ParenExpr struct {
	nodeBase
	OpenParenthesis  *Token
	Expression       Expression
	CloseParenthesis *Token
}

func NewParenExpr(open *Token, expr Expression, closeTok *Token) *ParenExpr {
	return &ParenExpr{OpenParenthesis: open, Expression: expr, CloseParenthesis: closeTok}
}

func (*ParenExpr) Kind() Kind          { return ParenthesizedExpression }
func (n *ParenExpr) Span() source.Span { return spanOf(n) }
func (*ParenExpr) expressionNode()     {}

func (n *ParenExpr) Children() []Node {
	return []Node{n.OpenParenthesis, n.Expression, n.CloseParenthesis}
}

// BacktickExpr is '`' Expression '`', an expression evaluated by the database.
type BacktickExpr struct {
	nodeBase
	OpenBacktick  *Token
	Expression    Expression
	CloseBacktick *Token
}

func NewBacktickExpr(open *Token, expr Expression, closeTok *Token) *BacktickExpr {
	return &BacktickExpr{OpenBacktick: open, Expression: expr, CloseBacktick: closeTok}
}

func (*BacktickExpr) Kind() Kind          { return BacktickExpression }
func (n *BacktickExpr) Span() source.Span { return spanOf(n) }
func (*BacktickExpr) expressionNode()     {}

func (n *BacktickExpr) Children() []Node {
	return []Node{n.OpenBacktick, n.Expression, n.CloseBacktick}
}

// NullExpr is the null keyword in value position.
type NullExpr struct {
	nodeBase
	NullKeyword *Token
}

func NewNullExpr(tok *Token) *NullExpr { return &NullExpr{NullKeyword: tok} }

func (*NullExpr) Kind() Kind          { return NullExpression }
func (n *NullExpr) Span() source.Span { return n.NullKeyword.Span() }
func (n *NullExpr) Children() []Node  { return []Node{n.NullKeyword} }
func (*NullExpr) expressionNode()     {}
