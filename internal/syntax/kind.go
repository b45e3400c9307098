package syntax

// Kind is the closed tag of every token, trivia and node.
type Kind uint16

const (
	// BadToken is produced by the lexer for an unusable character; it never reaches the tree.
	BadToken Kind = iota
	// EndOfFileToken terminates every token stream.
	EndOfFileToken

	// Trivia
	WhitespaceTrivia
	LineBreakTrivia
	SingleLineCommentTrivia
	MultiLineCommentTrivia
	SkippedTokensTrivia

	// Punctuation
	DotToken              // .
	MinusToken            // -
	PlusToken             // +
	SlashToken            // /
	StarToken             // *
	CommaToken            // ,
	ColonToken            // :
	OpenParenthesisToken  // (
	CloseParenthesisToken // )
	OpenBraceToken        // {
	CloseBraceToken       // }
	OpenBracketToken      // [
	CloseBracketToken     // ]
	BacktickToken         // `
	LessToken             // <
	LessGreaterToken      // <>
	GreaterToken          // >

	// Literals and names
	NumberToken
	QuotationMarksStringToken       // "..."
	SingleQuotationMarksStringToken // '...'
	MultiLineStringToken            // '''...'''
	IdentifierToken

	// Keywords
	ProjectKeyword
	TableKeyword
	EnumKeyword
	RefKeyword
	IndexesKeyword
	NoteKeyword
	AsKeyword
	PkKeyword
	PrimaryKeyword
	KeyKeyword
	NullKeyword
	NotKeyword
	UniqueKeyword
	IncrementKeyword
	DefaultKeyword
	TrueKeyword
	FalseKeyword
	NameKeyword
	TypeKeyword
	DatabaseTypeKeyword
	DeleteKeyword
	UpdateKeyword

	// Members
	CompilationUnit
	GlobalStatement
	ProjectDeclaration
	TableDeclaration
	EnumDeclaration
	ShortFormRelationshipDeclaration
	LongFormRelationshipDeclaration

	// Statements
	BlockStatement
	ExpressionStatement
	ColumnDeclarationStatement
	EnumEntryDeclarationStatement
	IndexesDeclarationStatement
	SingleFieldIndexDeclarationStatement
	CompositeIndexDeclarationStatement
	NoteDeclarationStatement

	// Expressions
	LiteralExpression
	NameExpression
	CallExpression
	ParenthesizedExpression
	BacktickExpression
	NullExpression

	// Clauses
	TableIdentifierClause
	EnumIdentifierClause
	TableAliasClause
	ColumnIdentifierClause
	ColumnTypeClause
	ColumnTypeArgumentsClause
	RelationshipConstraintClause
	ColumnSettingListClause
	TableSettingListClause
	IndexSettingListClause
	EnumEntrySettingListClause
	RelationshipSettingListClause

	// Column settings
	PrimaryKeyColumnSettingClause
	NullColumnSettingClause
	NotNullColumnSettingClause
	UniqueColumnSettingClause
	IncrementColumnSettingClause
	DefaultColumnSettingClause
	NoteColumnSettingClause
	RelationshipColumnSettingClause
	UnknownColumnSettingClause

	// Table settings
	NoteTableSettingClause
	UnknownTableSettingClause

	// Index settings
	PrimaryKeyIndexSettingClause
	UniqueIndexSettingClause
	NameIndexSettingClause
	TypeIndexSettingClause
	NoteIndexSettingClause
	UnknownIndexSettingClause

	// Enum entry settings
	NoteEnumEntrySettingClause
	UnknownEnumEntrySettingClause

	// Relationship settings
	ActionRelationshipSettingClause
	UnknownRelationshipSettingClause

	// Project settings
	DatabaseProviderProjectSettingClause
	UnknownProjectSettingClause

	kindCount
)

type kindClass uint8

const (
	classSpecial kindClass = iota + 1
	classTrivia
	classPunct
	classLiteral
	className
	classKeyword
	classNode
)

type kindInfo struct {
	name  string
	class kindClass
	text  string // fixed spelling, if any
}

// kindInfos is the single source of truth for classification and names.
// Every Kind must have an entry; TestKindTableComplete enforces it.
var kindInfos = [kindCount]kindInfo{
	BadToken:       {"BadToken", classSpecial, ""},
	EndOfFileToken: {"EndOfFileToken", classSpecial, ""},

	WhitespaceTrivia:        {"WhitespaceTrivia", classTrivia, ""},
	LineBreakTrivia:         {"LineBreakTrivia", classTrivia, ""},
	SingleLineCommentTrivia: {"SingleLineCommentTrivia", classTrivia, ""},
	MultiLineCommentTrivia:  {"MultiLineCommentTrivia", classTrivia, ""},
	SkippedTokensTrivia:     {"SkippedTokensTrivia", classTrivia, ""},

	DotToken:              {"DotToken", classPunct, "."},
	MinusToken:            {"MinusToken", classPunct, "-"},
	PlusToken:             {"PlusToken", classPunct, "+"},
	SlashToken:            {"SlashToken", classPunct, "/"},
	StarToken:             {"StarToken", classPunct, "*"},
	CommaToken:            {"CommaToken", classPunct, ","},
	ColonToken:            {"ColonToken", classPunct, ":"},
	OpenParenthesisToken:  {"OpenParenthesisToken", classPunct, "("},
	CloseParenthesisToken: {"CloseParenthesisToken", classPunct, ")"},
	OpenBraceToken:        {"OpenBraceToken", classPunct, "{"},
	CloseBraceToken:       {"CloseBraceToken", classPunct, "}"},
	OpenBracketToken:      {"OpenBracketToken", classPunct, "["},
	CloseBracketToken:     {"CloseBracketToken", classPunct, "]"},
	BacktickToken:         {"BacktickToken", classPunct, "`"},
	LessToken:             {"LessToken", classPunct, "<"},
	LessGreaterToken:      {"LessGreaterToken", classPunct, "<>"},
	GreaterToken:          {"GreaterToken", classPunct, ">"},

	NumberToken:                     {"NumberToken", classLiteral, ""},
	QuotationMarksStringToken:       {"QuotationMarksStringToken", classLiteral, ""},
	SingleQuotationMarksStringToken: {"SingleQuotationMarksStringToken", classLiteral, ""},
	MultiLineStringToken:            {"MultiLineStringToken", classLiteral, ""},
	IdentifierToken:                 {"IdentifierToken", className, ""},

	ProjectKeyword:      {"ProjectKeyword", classKeyword, "Project"},
	TableKeyword:        {"TableKeyword", classKeyword, "Table"},
	EnumKeyword:         {"EnumKeyword", classKeyword, "enum"},
	RefKeyword:          {"RefKeyword", classKeyword, "ref"},
	IndexesKeyword:      {"IndexesKeyword", classKeyword, "indexes"},
	NoteKeyword:         {"NoteKeyword", classKeyword, "Note"},
	AsKeyword:           {"AsKeyword", classKeyword, "as"},
	PkKeyword:           {"PkKeyword", classKeyword, "pk"},
	PrimaryKeyword:      {"PrimaryKeyword", classKeyword, "primary"},
	KeyKeyword:          {"KeyKeyword", classKeyword, "key"},
	NullKeyword:         {"NullKeyword", classKeyword, "null"},
	NotKeyword:          {"NotKeyword", classKeyword, "not"},
	UniqueKeyword:       {"UniqueKeyword", classKeyword, "unique"},
	IncrementKeyword:    {"IncrementKeyword", classKeyword, "increment"},
	DefaultKeyword:      {"DefaultKeyword", classKeyword, "default"},
	TrueKeyword:         {"TrueKeyword", classKeyword, "true"},
	FalseKeyword:        {"FalseKeyword", classKeyword, "false"},
	NameKeyword:         {"NameKeyword", classKeyword, "name"},
	TypeKeyword:         {"TypeKeyword", classKeyword, "type"},
	DatabaseTypeKeyword: {"DatabaseTypeKeyword", classKeyword, "database_type"},
	DeleteKeyword:       {"DeleteKeyword", classKeyword, "delete"},
	UpdateKeyword:       {"UpdateKeyword", classKeyword, "update"},

	CompilationUnit:                  {"CompilationUnit", classNode, ""},
	GlobalStatement:                  {"GlobalStatement", classNode, ""},
	ProjectDeclaration:               {"ProjectDeclaration", classNode, ""},
	TableDeclaration:                 {"TableDeclaration", classNode, ""},
	EnumDeclaration:                  {"EnumDeclaration", classNode, ""},
	ShortFormRelationshipDeclaration: {"ShortFormRelationshipDeclaration", classNode, ""},
	LongFormRelationshipDeclaration:  {"LongFormRelationshipDeclaration", classNode, ""},

	BlockStatement:                       {"BlockStatement", classNode, ""},
	ExpressionStatement:                  {"ExpressionStatement", classNode, ""},
	ColumnDeclarationStatement:           {"ColumnDeclarationStatement", classNode, ""},
	EnumEntryDeclarationStatement:        {"EnumEntryDeclarationStatement", classNode, ""},
	IndexesDeclarationStatement:          {"IndexesDeclarationStatement", classNode, ""},
	SingleFieldIndexDeclarationStatement: {"SingleFieldIndexDeclarationStatement", classNode, ""},
	CompositeIndexDeclarationStatement:   {"CompositeIndexDeclarationStatement", classNode, ""},
	NoteDeclarationStatement:             {"NoteDeclarationStatement", classNode, ""},

	LiteralExpression:       {"LiteralExpression", classNode, ""},
	NameExpression:          {"NameExpression", classNode, ""},
	CallExpression:          {"CallExpression", classNode, ""},
	ParenthesizedExpression: {"ParenthesizedExpression", classNode, ""},
	BacktickExpression:      {"BacktickExpression", classNode, ""},
	NullExpression:          {"NullExpression", classNode, ""},

	TableIdentifierClause:         {"TableIdentifierClause", classNode, ""},
	EnumIdentifierClause:          {"EnumIdentifierClause", classNode, ""},
	TableAliasClause:              {"TableAliasClause", classNode, ""},
	ColumnIdentifierClause:        {"ColumnIdentifierClause", classNode, ""},
	ColumnTypeClause:              {"ColumnTypeClause", classNode, ""},
	ColumnTypeArgumentsClause:     {"ColumnTypeArgumentsClause", classNode, ""},
	RelationshipConstraintClause:  {"RelationshipConstraintClause", classNode, ""},
	ColumnSettingListClause:       {"ColumnSettingListClause", classNode, ""},
	TableSettingListClause:        {"TableSettingListClause", classNode, ""},
	IndexSettingListClause:        {"IndexSettingListClause", classNode, ""},
	EnumEntrySettingListClause:    {"EnumEntrySettingListClause", classNode, ""},
	RelationshipSettingListClause: {"RelationshipSettingListClause", classNode, ""},

	PrimaryKeyColumnSettingClause:   {"PrimaryKeyColumnSettingClause", classNode, ""},
	NullColumnSettingClause:         {"NullColumnSettingClause", classNode, ""},
	NotNullColumnSettingClause:      {"NotNullColumnSettingClause", classNode, ""},
	UniqueColumnSettingClause:       {"UniqueColumnSettingClause", classNode, ""},
	IncrementColumnSettingClause:    {"IncrementColumnSettingClause", classNode, ""},
	DefaultColumnSettingClause:      {"DefaultColumnSettingClause", classNode, ""},
	NoteColumnSettingClause:         {"NoteColumnSettingClause", classNode, ""},
	RelationshipColumnSettingClause: {"RelationshipColumnSettingClause", classNode, ""},
	UnknownColumnSettingClause:      {"UnknownColumnSettingClause", classNode, ""},

	NoteTableSettingClause:    {"NoteTableSettingClause", classNode, ""},
	UnknownTableSettingClause: {"UnknownTableSettingClause", classNode, ""},

	PrimaryKeyIndexSettingClause: {"PrimaryKeyIndexSettingClause", classNode, ""},
	UniqueIndexSettingClause:     {"UniqueIndexSettingClause", classNode, ""},
	NameIndexSettingClause:       {"NameIndexSettingClause", classNode, ""},
	TypeIndexSettingClause:       {"TypeIndexSettingClause", classNode, ""},
	NoteIndexSettingClause:       {"NoteIndexSettingClause", classNode, ""},
	UnknownIndexSettingClause:    {"UnknownIndexSettingClause", classNode, ""},

	NoteEnumEntrySettingClause:    {"NoteEnumEntrySettingClause", classNode, ""},
	UnknownEnumEntrySettingClause: {"UnknownEnumEntrySettingClause", classNode, ""},

	ActionRelationshipSettingClause:  {"ActionRelationshipSettingClause", classNode, ""},
	UnknownRelationshipSettingClause: {"UnknownRelationshipSettingClause", classNode, ""},

	DatabaseProviderProjectSettingClause: {"DatabaseProviderProjectSettingClause", classNode, ""},
	UnknownProjectSettingClause:          {"UnknownProjectSettingClause", classNode, ""},
}

func (k Kind) info() kindInfo {
	if k >= kindCount {
		return kindInfo{}
	}
	return kindInfos[k]
}

func (k Kind) String() string {
	if name := k.info().name; name != "" {
		return name
	}
	return "Kind(?)"
}

// IsToken reports whether k is produced by the lexer as a token (not trivia).
func (k Kind) IsToken() bool {
	switch k.info().class {
	case classSpecial, classPunct, classLiteral, className, classKeyword:
		return true
	}
	return false
}

// IsTrivia reports whether k is a trivia kind.
func (k Kind) IsTrivia() bool { return k.info().class == classTrivia }

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool { return k.info().class == classKeyword }

// IsPunctuation reports whether k is a fixed punctuation token.
func (k Kind) IsPunctuation() bool { return k.info().class == classPunct }

// IsLiteral reports whether k is a number or string literal token.
func (k Kind) IsLiteral() bool { return k.info().class == classLiteral }

// IsString reports whether k is one of the three string literal forms.
func (k Kind) IsString() bool {
	switch k {
	case QuotationMarksStringToken, SingleQuotationMarksStringToken, MultiLineStringToken:
		return true
	}
	return false
}

// IsNode reports whether k tags a composite node.
func (k Kind) IsNode() bool { return k.info().class == classNode }

// IsName reports whether a token of kind k may be used where a name is expected:
// identifiers, keywords (contextual) and double-quoted strings.
func (k Kind) IsName() bool {
	c := k.info().class
	return c == className || c == classKeyword || k == QuotationMarksStringToken
}

// FixedText returns the canonical spelling of punctuation and keywords, or "".
func (k Kind) FixedText() string { return k.info().text }
