package syntax

import "dbml/internal/source"

// BlockStmt is '{' Statement* '}'.
type BlockStmt struct {
	nodeBase
	OpenBrace  *Token
	Statements []Statement
	CloseBrace *Token
}

func NewBlockStmt(open *Token, stmts []Statement, closeTok *Token) *BlockStmt {
	return &BlockStmt{OpenBrace: open, Statements: stmts, CloseBrace: closeTok}
}

func (*BlockStmt) Kind() Kind          { return BlockStatement }
func (n *BlockStmt) Span() source.Span { return spanOf(n) }
func (*BlockStmt) statementNode()      {}

func (n *BlockStmt) Children() []Node {
	out := make([]Node, 0, len(n.Statements)+2)
	out = append(out, n.OpenBrace)
	for _, s := range n.Statements {
		out = append(out, s)
	}
	return append(out, n.CloseBrace)
}

// ExprStmt is a bare expression in statement position.
type ExprStmt struct {
	nodeBase
	Expression Expression
}

func NewExprStmt(expr Expression) *ExprStmt {
	return &ExprStmt{Expression: expr}
}

func (*ExprStmt) Kind() Kind          { return ExpressionStatement }
func (n *ExprStmt) Span() source.Span { return n.Expression.Span() }
func (n *ExprStmt) Children() []Node  { return []Node{n.Expression} }
func (*ExprStmt) statementNode()      {}

// ColumnDecl is Name ColumnType SettingList? inside a table.
type ColumnDecl struct {
	nodeBase
	Name     *Token
	Type     *ColumnType
	Settings *SettingList // optional
}

func NewColumnDecl(name *Token, typ *ColumnType, settings *SettingList) *ColumnDecl {
	return &ColumnDecl{Name: name, Type: typ, Settings: settings}
}

func (*ColumnDecl) Kind() Kind          { return ColumnDeclarationStatement }
func (n *ColumnDecl) Span() source.Span { return spanOf(n) }
func (*ColumnDecl) statementNode()      {}

func (n *ColumnDecl) Children() []Node {
	out := []Node{n.Name, n.Type}
	if n.Settings != nil {
		out = append(out, n.Settings)
	}
	return out
}

// ColumnName returns the declared column name.
func (n *ColumnDecl) ColumnName() string { return n.Name.ValueText() }

// EnumEntryDecl is Name SettingList? inside an enum.
type EnumEntryDecl struct {
	nodeBase
	Name     *Token
	Settings *SettingList // optional
}

func NewEnumEntryDecl(name *Token, settings *SettingList) *EnumEntryDecl {
	return &EnumEntryDecl{Name: name, Settings: settings}
}

func (*EnumEntryDecl) Kind() Kind          { return EnumEntryDeclarationStatement }
func (n *EnumEntryDecl) Span() source.Span { return spanOf(n) }
func (*EnumEntryDecl) statementNode()      {}

func (n *EnumEntryDecl) Children() []Node {
	out := []Node{n.Name}
	if n.Settings != nil {
		out = append(out, n.Settings)
	}
	return out
}

// EntryName returns the declared entry name.
func (n *EnumEntryDecl) EntryName() string { return n.Name.ValueText() }

// IndexesDecl is 'indexes' '{' IndexDecl* '}'.
// Indexes is a separated list without separators.
type IndexesDecl struct {
	nodeBase
	IndexesKeyword *Token
	OpenBrace      *Token
	Indexes        *SeparatedList[IndexDeclaration]
	CloseBrace     *Token
}

func NewIndexesDecl(kw, open *Token, indexes *SeparatedList[IndexDeclaration], closeTok *Token) *IndexesDecl {
	return &IndexesDecl{IndexesKeyword: kw, OpenBrace: open, Indexes: indexes, CloseBrace: closeTok}
}

func (*IndexesDecl) Kind() Kind          { return IndexesDeclarationStatement }
func (n *IndexesDecl) Span() source.Span { return spanOf(n) }
func (*IndexesDecl) statementNode()      {}

func (n *IndexesDecl) Children() []Node {
	out := []Node{n.IndexesKeyword, n.OpenBrace}
	out = append(out, n.Indexes.NodesAndSeparators()...)
	return append(out, n.CloseBrace)
}

// SingleFieldIndexDecl indexes one column or backtick expression.
type SingleFieldIndexDecl struct {
	nodeBase
	Field    Expression // *NameExpr or *BacktickExpr
	Settings *SettingList
}

func NewSingleFieldIndexDecl(field Expression, settings *SettingList) *SingleFieldIndexDecl {
	return &SingleFieldIndexDecl{Field: field, Settings: settings}
}

func (*SingleFieldIndexDecl) Kind() Kind {
	return SingleFieldIndexDeclarationStatement
}
func (n *SingleFieldIndexDecl) Span() source.Span   { return spanOf(n) }
func (*SingleFieldIndexDecl) statementNode()        {}
func (*SingleFieldIndexDecl) indexDeclarationNode() {}

func (n *SingleFieldIndexDecl) Children() []Node {
	out := []Node{n.Field}
	if n.Settings != nil {
		out = append(out, n.Settings)
	}
	return out
}

// CompositeIndexDecl is '(' Expr (',' Expr)* ')' SettingList?.
type CompositeIndexDecl struct {
	nodeBase
	OpenParenthesis  *Token
	Fields           *SeparatedList[Expression]
	CloseParenthesis *Token
	Settings         *SettingList
}

func NewCompositeIndexDecl(open *Token, fields *SeparatedList[Expression], closeTok *Token, settings *SettingList) *CompositeIndexDecl {
	return &CompositeIndexDecl{OpenParenthesis: open, Fields: fields, CloseParenthesis: closeTok, Settings: settings}
}

func (*CompositeIndexDecl) Kind() Kind {
	return CompositeIndexDeclarationStatement
}
func (n *CompositeIndexDecl) Span() source.Span   { return spanOf(n) }
func (*CompositeIndexDecl) statementNode()        {}
func (*CompositeIndexDecl) indexDeclarationNode() {}

func (n *CompositeIndexDecl) Children() []Node {
	out := []Node{n.OpenParenthesis}
	out = append(out, n.Fields.NodesAndSeparators()...)
	out = append(out, n.CloseParenthesis)
	if n.Settings != nil {
		out = append(out, n.Settings)
	}
	return out
}

// NoteDecl is Note ':' String or Note '{' String '}'.
// Exactly one of Colon or the brace pair is present.
type NoteDecl struct {
	nodeBase
	NoteKeyword *Token
	Colon       *Token
	OpenBrace   *Token
	Note        Expression
	CloseBrace  *Token
}

func NewNoteDecl(kw, colon, open *Token, note Expression, closeTok *Token) *NoteDecl {
	return &NoteDecl{NoteKeyword: kw, Colon: colon, OpenBrace: open, Note: note, CloseBrace: closeTok}
}

func (*NoteDecl) Kind() Kind          { return NoteDeclarationStatement }
func (n *NoteDecl) Span() source.Span { return spanOf(n) }
func (*NoteDecl) statementNode()      {}

// SettingName lets a note act as a Project setting.
func (n *NoteDecl) SettingName() string { return keywordName(n.NoteKeyword) }

func (n *NoteDecl) Children() []Node {
	out := tokens(nil, n.NoteKeyword, n.Colon, n.OpenBrace)
	out = append(out, n.Note)
	return tokens(out, n.CloseBrace)
}

// Text returns the note string, or "" when the value did not parse.
func (n *NoteDecl) Text() string {
	return literalString(n.Note)
}

func literalString(e Expression) string {
	if lit, ok := e.(*LiteralExpr); ok {
		if s, ok := lit.Value().(string); ok {
			return s
		}
	}
	return ""
}
