package syntax

import (
	"strings"

	"dbml/internal/source"
)

// QualifiedName is Name ('.' Name)? naming a table or an enum.
// Its kind is TableIdentifierClause or EnumIdentifierClause.
type QualifiedName struct {
	nodeBase
	kind   Kind
	Schema *Token // optional
	Dot    *Token // present iff Schema is
	Name   *Token
}

func NewTableIdentifierClause(schema, dot, name *Token) *QualifiedName {
	return &QualifiedName{kind: TableIdentifierClause, Schema: schema, Dot: dot, Name: name}
}

func NewEnumIdentifierClause(schema, dot, name *Token) *QualifiedName {
	return &QualifiedName{kind: EnumIdentifierClause, Schema: schema, Dot: dot, Name: name}
}

func (n *QualifiedName) Kind() Kind         { return n.kind }
func (n *QualifiedName) Span() source.Span  { return spanOf(n) }
func (n *QualifiedName) Children() []Node   { return tokens(nil, n.Schema, n.Dot, n.Name) }
func (n *QualifiedName) SchemaName() string { return n.Schema.ValueText() }
func (n *QualifiedName) ObjectName() string { return n.Name.ValueText() }

// QualifiedName returns "schema.name" or "name".
func (n *QualifiedName) QualifiedName() string {
	if n.Schema == nil {
		return n.ObjectName()
	}
	return n.SchemaName() + "." + n.ObjectName()
}

// AliasClause is 'as' Name.
type AliasClause struct {
	nodeBase
	AsKeyword *Token
	Name      *Token
}

func NewAliasClause(as, name *Token) *AliasClause {
	return &AliasClause{AsKeyword: as, Name: name}
}

func (*AliasClause) Kind() Kind          { return TableAliasClause }
func (n *AliasClause) Span() source.Span { return spanOf(n) }
func (n *AliasClause) Children() []Node  { return []Node{n.AsKeyword, n.Name} }

// ColumnRef is Name ('.' Name){0,2}: column, table.column or schema.table.column.
type ColumnRef struct {
	nodeBase
	Names *SeparatedList[*Token]
}

func NewColumnRef(names *SeparatedList[*Token]) *ColumnRef {
	return &ColumnRef{Names: names}
}

func (*ColumnRef) Kind() Kind          { return ColumnIdentifierClause }
func (n *ColumnRef) Span() source.Span { return spanOf(n) }
func (n *ColumnRef) Children() []Node  { return n.Names.NodesAndSeparators() }

func (n *ColumnRef) part(fromEnd int) string {
	i := n.Names.Len() - 1 - fromEnd
	if i < 0 {
		return ""
	}
	return n.Names.At(i).ValueText()
}

// ColumnName is the last name.
func (n *ColumnRef) ColumnName() string { return n.part(0) }

// TableName is the name before the column, if any.
func (n *ColumnRef) TableName() string { return n.part(1) }

// SchemaName is the leading name of a three-part identifier, if any.
func (n *ColumnRef) SchemaName() string { return n.part(2) }

// ColumnType is Name ('.' Name)? Arguments?.
type ColumnType struct {
	nodeBase
	Schema    *Token // optional
	Dot       *Token
	Name      *Token
	Arguments *TypeArgs // optional
}

func NewColumnType(schema, dot, name *Token, args *TypeArgs) *ColumnType {
	return &ColumnType{Schema: schema, Dot: dot, Name: name, Arguments: args}
}

func (*ColumnType) Kind() Kind          { return ColumnTypeClause }
func (n *ColumnType) Span() source.Span { return spanOf(n) }

func (n *ColumnType) Children() []Node {
	out := tokens(nil, n.Schema, n.Dot, n.Name)
	if n.Arguments != nil {
		out = append(out, n.Arguments)
	}
	return out
}

// TypeName returns the type name without arguments.
func (n *ColumnType) TypeName() string {
	if n.Schema == nil {
		return n.Name.ValueText()
	}
	return n.Schema.ValueText() + "." + n.Name.ValueText()
}

// TypeArgs is '(' (Number|Name) (',' (Number|Name))* ')'.
type TypeArgs struct {
	nodeBase
	OpenParenthesis  *Token
	Arguments        *SeparatedList[Expression]
	CloseParenthesis *Token
}

func NewTypeArgs(open *Token, args *SeparatedList[Expression], closeTok *Token) *TypeArgs {
	return &TypeArgs{OpenParenthesis: open, Arguments: args, CloseParenthesis: closeTok}
}

func (*TypeArgs) Kind() Kind          { return ColumnTypeArgumentsClause }
func (n *TypeArgs) Span() source.Span { return spanOf(n) }

func (n *TypeArgs) Children() []Node {
	out := []Node{n.OpenParenthesis}
	out = append(out, n.Arguments.NodesAndSeparators()...)
	return append(out, n.CloseParenthesis)
}

// RefConstraint is ColumnId RelOp ColumnId SettingList?.
type RefConstraint struct {
	nodeBase
	From     *ColumnRef
	Operator *Token // < > - <>
	To       *ColumnRef
	Settings *SettingList // optional
}

func NewRefConstraint(from *ColumnRef, op *Token, to *ColumnRef, settings *SettingList) *RefConstraint {
	return &RefConstraint{From: from, Operator: op, To: to, Settings: settings}
}

func (*RefConstraint) Kind() Kind          { return RelationshipConstraintClause }
func (n *RefConstraint) Span() source.Span { return spanOf(n) }

func (n *RefConstraint) Children() []Node {
	out := []Node{n.From, n.Operator, n.To}
	if n.Settings != nil {
		out = append(out, n.Settings)
	}
	return out
}

// SettingList is '[' Setting (',' Setting)* ']'. The kind names the
// context: column, table, index, enum entry or relationship.
type SettingList struct {
	nodeBase
	kind         Kind
	OpenBracket  *Token
	Settings     *SeparatedList[Setting]
	CloseBracket *Token
}

// NewSettingList panics if kind is not a setting list kind.
func NewSettingList(kind Kind, open *Token, settings *SeparatedList[Setting], closeTok *Token) *SettingList {
	switch kind {
	case ColumnSettingListClause, TableSettingListClause, IndexSettingListClause,
		EnumEntrySettingListClause, RelationshipSettingListClause:
	default:
		panic("syntax: not a setting list kind: " + kind.String())
	}
	return &SettingList{kind: kind, OpenBracket: open, Settings: settings, CloseBracket: closeTok}
}

func (n *SettingList) Kind() Kind        { return n.kind }
func (n *SettingList) Span() source.Span { return spanOf(n) }

func (n *SettingList) Children() []Node {
	out := []Node{n.OpenBracket}
	out = append(out, n.Settings.NodesAndSeparators()...)
	return append(out, n.CloseBracket)
}

// Find returns the first setting of the given kind, or nil.
func (n *SettingList) Find(kind Kind) Setting {
	if n == nil {
		return nil
	}
	for _, s := range n.Settings.Nodes() {
		if s.Kind() == kind {
			return s
		}
	}
	return nil
}

// keywordName normalizes keyword spellings (Note/note) for setting names.
func keywordName(t *Token) string {
	if t.Kind().IsKeyword() {
		return strings.ToLower(t.Text)
	}
	return t.ValueText()
}
