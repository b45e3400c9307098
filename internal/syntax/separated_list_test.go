package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func names(texts ...string) []*Token {
	out := make([]*Token, len(texts))
	for i, s := range texts {
		out[i] = NewToken(IdentifierToken, i*2, s, nil, nil, nil)
	}
	return out
}

func TestSeparatedList(t *testing.T) {
	items := names("a", "b", "c")
	seps := []*Token{
		NewToken(DotToken, 1, ".", nil, nil, nil),
		NewToken(DotToken, 3, ".", nil, nil, nil),
	}
	l := NewSeparatedList(items, seps)

	require.Equal(t, 3, l.Len())
	require.Same(t, items[1], l.At(1))
	require.Same(t, seps[0], l.SeparatorAt(0))
	require.Nil(t, l.SeparatorAt(2))
	require.Nil(t, l.SeparatorAt(-1))

	all := l.NodesAndSeparators()
	require.Len(t, all, 5)
	for i, want := range []string{"a", ".", "b", ".", "c"} {
		require.Equal(t, want, all[i].(*Token).Text)
	}

	// копии не должны делить память со списком
	nodes := l.Nodes()
	nodes[0] = nil
	require.NotNil(t, l.At(0))
}

func TestSeparatedListWithoutSeparators(t *testing.T) {
	l := NewSeparatedList(names("a", "b"), nil)
	require.Equal(t, 2, l.Len())
	require.Empty(t, l.Separators())
	require.Len(t, l.NodesAndSeparators(), 2)

	empty := NewSeparatedList[*Token](nil, nil)
	require.Zero(t, empty.Len())
	require.Empty(t, empty.NodesAndSeparators())

	var nilList *SeparatedList[*Token]
	require.Zero(t, nilList.Len())
	require.Nil(t, nilList.Nodes())
	require.Nil(t, nilList.SeparatorAt(0))
}

func TestSeparatedListPanics(t *testing.T) {
	sep := NewToken(CommaToken, 1, ",", nil, nil, nil)
	require.Panics(t, func() { NewSeparatedList(names("a"), []*Token{sep}) })
	require.Panics(t, func() { NewSeparatedList(names("a", "b", "c"), []*Token{sep, sep, sep}) })
	require.NotPanics(t, func() { NewSeparatedList(names("a", "b"), []*Token{sep}) })
}

func TestNewSettingListPanicsOnWrongKind(t *testing.T) {
	open := NewToken(OpenBracketToken, 0, "[", nil, nil, nil)
	closeTok := NewToken(CloseBracketToken, 1, "]", nil, nil, nil)
	require.Panics(t, func() {
		NewSettingList(TableDeclaration, open, NewSeparatedList[Setting](nil, nil), closeTok)
	})
}
