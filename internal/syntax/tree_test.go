package syntax_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"dbml/internal/driver"
	"dbml/internal/syntax"
)

const schema = `Table core.users as U [note: 'people'] {
  id int [pk] // key
  name "varchar"(255)
}

enum status { active
  /* gone */ archived }
`

func TestTreeParents(t *testing.T) {
	tree := driver.Parse(schema)
	root := tree.Root()
	require.Nil(t, tree.Parent(root))

	tables := root.Tables()
	require.Len(t, tables, 1)
	table := tables[0]
	require.Same(t, tree, table.Tree())
	require.Equal(t, root, tree.Parent(table))
	require.Equal(t, "core.users", table.Identifier.QualifiedName())

	cols := table.Columns()
	require.Len(t, cols, 2)
	require.Equal(t, "name", cols[1].ColumnName())
	require.Equal(t, "varchar", cols[1].Type.TypeName())

	anc := tree.Ancestors(cols[0].Name)
	require.GreaterOrEqual(t, len(anc), 3)
	require.Equal(t, syntax.ColumnDeclarationStatement, anc[0].Kind())
	require.Equal(t, syntax.CompilationUnit, anc[len(anc)-1].Kind())

	foreign := syntax.NewToken(syntax.IdentifierToken, 0, "x", nil, nil, nil)
	require.Nil(t, tree.Parent(foreign))
}

func TestTreeParentConcurrent(t *testing.T) {
	tree := driver.Parse(schema)
	toks := syntax.Tokens(tree.Root())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tok := range toks {
				if tree.Parent(tok) == nil {
					t.Errorf("token %v has no parent", tok)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestTreeText(t *testing.T) {
	tree := driver.Parse(schema)
	require.Equal(t, schema, tree.FullText())

	var buf bytes.Buffer
	require.NoError(t, syntax.WriteFullText(&buf, tree.Root()))
	require.Equal(t, schema, buf.String())

	enum := tree.Root().Enums()[0]
	require.Equal(t, "enum status { active\n  /* gone */ archived }", tree.TextOf(enum))
	require.Equal(t, enum.Span(), tree.Location(enum).Span)

	full := syntax.FullSpan(enum)
	// пустая строка перед enum: leading trivia его первого токена
	require.Equal(t, enum.Span().Start-1, full.Start)
	require.Equal(t, len(schema), full.End())

	entries := enum.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "  /* gone */ archived ", syntax.FullText(entries[1]))
}

func TestTokensInSourceOrder(t *testing.T) {
	tree := driver.Parse(schema)
	toks := syntax.Tokens(tree.Root())
	require.NotEmpty(t, toks)
	require.Equal(t, syntax.EndOfFileToken, toks[len(toks)-1].Kind())
	for i := 1; i < len(toks); i++ {
		require.LessOrEqual(t, toks[i-1].Span().End(), toks[i].Start, "tokens %v and %v", toks[i-1], toks[i])
	}
	require.Same(t, toks[0], syntax.FirstToken(tree.Root()))
	require.Same(t, toks[len(toks)-1], syntax.LastToken(tree.Root()))
}

func TestTreeString(t *testing.T) {
	tree := driver.Parse("enum e { a }")
	want := `CompilationUnit 0..12
  EnumDeclaration 0..12
    EnumKeyword 0..4 "enum"
    EnumIdentifierClause 5..6
      IdentifierToken 5..6 "e"
    BlockStatement 7..12
      OpenBraceToken 7..8 "{"
      EnumEntryDeclarationStatement 9..10
        IdentifierToken 9..10 "a"
      CloseBraceToken 11..12 "}"
  EndOfFileToken 12..12 ""
`
	require.Equal(t, want, tree.String())
}
