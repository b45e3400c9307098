package syntax

import (
	"slices"
	"testing"
)

func TestKindTableComplete(t *testing.T) {
	seen := map[string]Kind{}
	for k := Kind(0); k < kindCount; k++ {
		info := k.info()
		if info.name == "" || info.class == 0 {
			t.Fatalf("kind %d has no table entry", k)
		}
		if prev, dup := seen[info.name]; dup {
			t.Fatalf("kinds %d and %d share name %q", prev, k, info.name)
		}
		seen[info.name] = k
	}
	if got := kindCount.String(); got != "Kind(?)" {
		t.Fatalf("out of range kind String() = %q", got)
	}
}

func TestKindClasses(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		n := 0
		for _, is := range []bool{k.IsTrivia(), k.IsToken(), k.IsNode()} {
			if is {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%s belongs to %d of trivia/token/node", k, n)
		}
		if (k.IsPunctuation() || k.IsKeyword()) && k.FixedText() == "" {
			t.Errorf("%s has no fixed text", k)
		}
	}
}

func TestIsName(t *testing.T) {
	names := []Kind{IdentifierToken, QuotationMarksStringToken, NoteKeyword, TableKeyword, DatabaseTypeKeyword}
	for _, k := range names {
		if !k.IsName() {
			t.Errorf("%s.IsName() = false", k)
		}
	}
	others := []Kind{SingleQuotationMarksStringToken, MultiLineStringToken, NumberToken, DotToken, EndOfFileToken, TableDeclaration}
	for _, k := range others {
		if k.IsName() {
			t.Errorf("%s.IsName() = true", k)
		}
	}
}

func TestKeywords(t *testing.T) {
	for _, spelling := range []string{"Project", "project", "Table", "table", "enum", "Enum", "Ref", "ref", "indexes", "Indexes", "Note", "note"} {
		if _, ok := LookupKeyword(spelling); !ok {
			t.Errorf("%q is not a keyword", spelling)
		}
	}
	for _, spelling := range []string{"NOTE", "TABLE", "Pk", "PK", "Null", "varchar"} {
		if k, ok := LookupKeyword(spelling); ok {
			t.Errorf("%q is keyword %s", spelling, k)
		}
	}
	for spelling, k := range keywords {
		if !k.IsKeyword() {
			t.Errorf("%q maps to non-keyword %s", spelling, k)
		}
	}

	got := KeywordSpellings(NoteKeyword)
	slices.Sort(got)
	if !slices.Equal(got, []string{"Note", "note"}) {
		t.Errorf("KeywordSpellings(Note) = %v", got)
	}
	for k := Kind(0); k < kindCount; k++ {
		if k.IsKeyword() && !slices.Contains(KeywordSpellings(k), k.FixedText()) {
			t.Errorf("fixed text %q of %s is not an accepted spelling", k.FixedText(), k)
		}
	}
}
