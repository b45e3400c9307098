package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dbml/internal/diag"
	"dbml/internal/observ"
	"dbml/internal/syntax"
	"dbml/internal/trace"
)

const sample = `// shop schema
Project shop {
  database_type: 'PostgreSQL'
  Note: 'demo'
}

Table public.users as U [note: 'people'] {
  id int [pk, increment]
  name varchar(255) [not null, unique, default: 'anon']
  created_at timestamp [default: ` + "`now()`" + `]
  country_code int [ref: > countries.code]

  indexes {
    (id, name) [pk]
    created_at [type: btree, name: 'by_created']
  }
  Note: '''
    Users of the shop.
  '''
}

enum status {
  active [note: 'live']
  "gone away"
}

Ref fk_orders: orders.user_id > users.id [delete: cascade]
Ref {
  a.b - c.d
}
`

func messages(diags []diag.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		sample,
		"Table T {\r\n  a int\r\n}\r\n",
		"!@#$%^&*",
		"Table",
		"Table T { x y [ frobnicate ] ",
		"'''unterminated",
		"\"unterminated\nnext line",
		"/* never closed",
		"((((((((((",
		"Ref: a.b > ",
		"enum { [ ] ] } }",
		"\t\v\f  // only trivia\n",
	}
	for _, in := range inputs {
		tree := Parse(in)
		require.Equal(t, in, tree.FullText(), "input %q", in)
		require.Equal(t, in, syntax.FullText(tree.Root()))
	}
}

func TestParseSampleIsClean(t *testing.T) {
	tree := Parse(sample)
	require.Empty(t, tree.Diagnostics(), "%v", messages(tree.Diagnostics()))
	require.False(t, tree.HasErrors())

	root := tree.Root()
	require.Len(t, root.Tables(), 1)
	require.Len(t, root.Enums(), 1)

	users := root.Tables()[0]
	require.Equal(t, "public.users", users.Identifier.QualifiedName())
	cols := users.Columns()
	require.Len(t, cols, 4)
	require.Equal(t, "name", cols[1].ColumnName())
	require.Equal(t, "varchar", cols[1].Type.TypeName())

	status := root.Enums()[0]
	entries := status.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "gone away", entries[1].EntryName())
}

func TestParseTerminates(t *testing.T) {
	inputs := []string{
		strings.Repeat("!", 1000),
		strings.Repeat("{", 500),
		strings.Repeat("}", 500),
		strings.Repeat("[", 500),
		strings.Repeat("(", 500) + strings.Repeat(")", 10),
		strings.Repeat("Table ", 200),
		strings.Repeat("Ref ", 200),
		strings.Repeat("indexes {", 100),
		"Table T { a int [default: ",
		"Project p { database_type: ",
		"\"",
		"'",
		"`",
	}
	for _, in := range inputs {
		tree := Parse(in)
		require.NotNil(t, tree.Root())
		require.NotNil(t, tree.Root().EndOfFile)
		require.Equal(t, in, tree.FullText())
	}
}

func TestUnknownColumnSetting(t *testing.T) {
	tree := Parse("Table T { x y [ frobnicate ] }\nTable U { z int }")

	diags := tree.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, diag.SevWarning, diags[0].Severity)
	require.Equal(t, "Unknown column setting 'frobnicate'.", diags[0].Message)

	tables := tree.Root().Tables()
	require.Len(t, tables, 2)
	col := tables[0].Columns()[0]
	require.Equal(t, syntax.ColumnDeclarationStatement, col.Kind())
	require.NotNil(t, col.Settings)
	require.Equal(t, 1, col.Settings.Settings.Len())
	require.Equal(t, syntax.UnknownColumnSettingClause, col.Settings.Settings.At(0).Kind())
	require.Equal(t, "z", tables[1].Columns()[0].ColumnName())
}

func TestDuplicateColumn(t *testing.T) {
	tree := Parse("Table T {\n  id int\n  id varchar\n}")
	diags := tree.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, "Column 'id' already declared.", diags[0].Message)
	require.Equal(t, 2, diags[0].Location.StartLine())
}

func TestDuplicateTable(t *testing.T) {
	text := "Table A { x int }\nTable B { x int }\nTable A { y int }"
	tree := Parse(text)
	diags := tree.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, "Duplicate table name 'A'.", diags[0].Message)
	require.Equal(t, strings.LastIndex(text, "A"), diags[0].Location.Span.Start)
	require.Equal(t, 1, diags[0].Location.Span.Length)
}

func TestIndexTypeValidation(t *testing.T) {
	tree := Parse("Table T { col int\n indexes { col [ type: xyz ] } }")
	diags := tree.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, diag.SevWarning, diags[0].Severity)
	require.Equal(t, "Unknown index setting type 'xyz'. Allowed index types: btree, gin, gist, hash.", diags[0].Message)
}

func TestParseTokensBadCharacter(t *testing.T) {
	tokens, diags := ParseTokens("!", true)
	require.Len(t, tokens, 1)
	require.Equal(t, syntax.EndOfFileToken, tokens[0].Kind())
	require.Equal(t, "!", tokens[0].FullText())

	require.Len(t, diags, 1)
	require.Equal(t, diag.SevError, diags[0].Severity)
	require.Equal(t, "Bad character input: '!'.", diags[0].Message)
	require.Equal(t, 0, diags[0].Location.Span.Start)
	require.Equal(t, 1, diags[0].Location.Span.Length)

	tokens, _ = ParseTokens("!", false)
	require.Empty(t, tokens)
}

func TestParseTokensNumberAndString(t *testing.T) {
	tokens, diags := ParseTokens(`1__0__0_0___.__21_22_1____ "error: ""message"" is ""my message""."`, false)
	require.Empty(t, diags)
	require.Len(t, tokens, 2)

	require.Equal(t, syntax.NumberToken, tokens[0].Kind())
	num, ok := tokens[0].Value.(decimal.Decimal)
	require.True(t, ok)
	require.True(t, num.Equal(decimal.RequireFromString("1000.21221")), num.String())

	require.Equal(t, syntax.QuotationMarksStringToken, tokens[1].Kind())
	require.Equal(t, `error: "message" is "my message".`, tokens[1].Value)
}

func TestParentsAndLocation(t *testing.T) {
	tree := Parse("Table T {\n  a int\n}")
	col := tree.Root().Tables()[0].Columns()[0]

	block := tree.Parent(col)
	require.IsType(t, &syntax.BlockStmt{}, block)
	table := tree.Parent(block)
	require.IsType(t, &syntax.TableDecl{}, table)
	require.Equal(t, tree.Root(), tree.Parent(table))
	require.Nil(t, tree.Parent(tree.Root()))

	loc := tree.Location(col)
	require.Equal(t, 1, loc.StartLine())
	require.Equal(t, 2, loc.StartCharacter())
	require.Equal(t, "a int", tree.TextOf(col))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.dbml")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFTable T { a int }"), 0o600))

	tree, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, tree.Diagnostics())
	require.Equal(t, "Table T { a int }", tree.Text().String())

	_, err = Load(filepath.Join(dir, "missing.dbml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.dbml")
	require.NoError(t, os.WriteFile(path, []byte("enum e { a }"), 0o600))

	res, err := Tokenize(path, Options{})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	kinds := make([]syntax.Kind, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind())
	}
	require.Equal(t, []syntax.Kind{
		syntax.EnumKeyword,
		syntax.IdentifierToken,
		syntax.OpenBraceToken,
		syntax.IdentifierToken,
		syntax.CloseBraceToken,
		syntax.EndOfFileToken,
	}, kinds)
}

func TestParseSourceTracesAndTimes(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelPhase)
	timer := observ.NewTimer()
	ctx := trace.WithTracer(context.Background(), ring)
	root := trace.Begin(ring, trace.ScopeDriver, "test", 0)
	ctx = trace.WithSpan(ctx, root)

	tree := ParseContext(ctx, "Table T { a int }", "t.dbml")
	require.Equal(t, "t.dbml", tree.Text().Name())

	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanEnd && ev.Scope == trace.ScopePass {
			names = append(names, ev.Name)
			require.Equal(t, root.ID(), ev.ParentID)
		}
	}
	require.Equal(t, []string{"lex", "parse"}, names)

	ParseSource(tree.Text(), Options{Timer: timer})
	report := timer.Report()
	require.Len(t, report.Phases, 2)
	require.Equal(t, "lex", report.Phases[0].Name)
	require.Equal(t, "parse", report.Phases[1].Name)
}
