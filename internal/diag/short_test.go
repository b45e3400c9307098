package diag

import (
	"testing"

	"dbml/internal/source"
)

func TestFormatShort(t *testing.T) {
	text := source.From("a\nb\n", "testdata/sample.dbml")

	items := []Diagnostic{
		NewError(SynUnexpectedToken, source.Location{Text: text, Span: source.Span{Start: 0, Length: 1}}, "first line\nsecond"),
		NewWarning(SemDuplicateColumn, source.Location{Text: text, Span: source.Span{Start: 2, Length: 1}}, "another"),
	}

	expected := "error SYN2001 testdata/sample.dbml:1:1 first line second\n" +
		"warning SEM3002 testdata/sample.dbml:2:1 another"

	if got := FormatShort(items); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestBag_KeepsDiscoveryOrder(t *testing.T) {
	text := source.From("abcdef", "x")
	bag := NewBag()
	reporter := BagReporter{Bag: bag}
	reporter.Report(SemDuplicateSetting, SevWarning, source.Location{Text: text, Span: source.Span{Start: 4, Length: 1}}, "late")
	reporter.Report(LexBadCharacter, SevError, source.Location{Text: text, Span: source.Span{Start: 1, Length: 1}}, "early")

	if got := Messages(bag.Items()); got[0] != "late" || got[1] != "early" {
		t.Fatalf("bag reordered diagnostics: %v", got)
	}
	if got := Messages(bag.Sorted()); got[0] != "early" || got[1] != "late" {
		t.Fatalf("Sorted() = %v, want [early late]", got)
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("expected both errors and warnings")
	}
	if Count(bag.Items(), SevWarning) != 1 {
		t.Fatalf("expected one warning")
	}
}

func TestCode_ID(t *testing.T) {
	cases := map[Code]string{
		LexBadCharacter:     "LEX1001",
		SynUnexpectedToken:  "SYN2001",
		SemUnknownIndexType: "SEM3020",
		UnknownCode:         "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}
