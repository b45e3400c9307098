package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"dbml/internal/diag"
	"dbml/internal/source"
	"dbml/internal/syntax"
)

type tok struct {
	Kind syntax.Kind
	Text string
}

type triv struct {
	Kind syntax.Kind
	Text string
}

type report struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func lexAll(t *testing.T, input string) ([]*syntax.Token, []report) {
	t.Helper()
	bag := diag.NewBag()
	tokens := LexAll(New(source.From(input, ""), Options{Reporter: diag.BagReporter{Bag: bag}}))
	var reports []report
	for _, d := range bag.Items() {
		reports = append(reports, report{d.Code, d.Location.Span, d.Message})
	}
	return tokens, reports
}

func kinds(tokens []*syntax.Token) []tok {
	out := make([]tok, len(tokens))
	for i, t := range tokens {
		out[i] = tok{t.Kind(), t.Text}
	}
	return out
}

func trivia(list []syntax.Trivia) []triv {
	var out []triv
	for _, tr := range list {
		out = append(out, triv{tr.Kind, tr.Text})
	}
	return out
}

func TestPunctuation(t *testing.T) {
	tokens, reports := lexAll(t, "<>< >-.,:(){}[]`+*/")
	want := []tok{
		{syntax.LessGreaterToken, "<>"},
		{syntax.LessToken, "<"},
		{syntax.GreaterToken, ">"},
		{syntax.MinusToken, "-"},
		{syntax.DotToken, "."},
		{syntax.CommaToken, ","},
		{syntax.ColonToken, ":"},
		{syntax.OpenParenthesisToken, "("},
		{syntax.CloseParenthesisToken, ")"},
		{syntax.OpenBraceToken, "{"},
		{syntax.CloseBraceToken, "}"},
		{syntax.OpenBracketToken, "["},
		{syntax.CloseBracketToken, "]"},
		{syntax.BacktickToken, "`"},
		{syntax.PlusToken, "+"},
		{syntax.StarToken, "*"},
		{syntax.SlashToken, "/"},
		{syntax.EndOfFileToken, ""},
	}
	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if len(reports) != 0 {
		t.Errorf("unexpected reports: %v", reports)
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	tokens, _ := lexAll(t, "Note note NOTE Table table TABLE true _x имя x1")
	want := []tok{
		{syntax.NoteKeyword, "Note"},
		{syntax.NoteKeyword, "note"},
		{syntax.IdentifierToken, "NOTE"},
		{syntax.TableKeyword, "Table"},
		{syntax.TableKeyword, "table"},
		{syntax.IdentifierToken, "TABLE"},
		{syntax.TrueKeyword, "true"},
		{syntax.IdentifierToken, "_x"},
		{syntax.IdentifierToken, "имя"},
		{syntax.IdentifierToken, "x1"},
		{syntax.EndOfFileToken, ""},
	}
	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if tokens[6].Value != true {
		t.Errorf("true keyword value = %v", tokens[6].Value)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1__0__0_0___.__21_22_1____", "1000.21221"},
		{"0", "0"},
		{"007", "7"},
		{"12.", "12"},
		{"1_000_", "1000"},
		{"79228162514264337593543950335", "79228162514264337593543950335"},
		{"1.00000000000000000000000000001", "1"},
	}
	for _, tt := range tests {
		tokens, reports := lexAll(t, tt.input)
		if len(reports) != 0 {
			t.Errorf("%q: unexpected reports %v", tt.input, reports)
			continue
		}
		if tokens[0].Kind() != syntax.NumberToken || tokens[0].Text != tt.input {
			t.Errorf("%q: got %v", tt.input, tokens[0])
			continue
		}
		got, ok := tokens[0].Value.(decimal.Decimal)
		if !ok || !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("%q: value %v, want %s", tt.input, tokens[0].Value, tt.want)
		}
	}
}

func TestNumberTooLarge(t *testing.T) {
	input := "79228162514264337593543950336"
	tokens, reports := lexAll(t, input)
	if tokens[0].Kind() != syntax.NumberToken || tokens[0].Text != input || tokens[0].Value != nil {
		t.Fatalf("unexpected token %v value %v", tokens[0], tokens[0].Value)
	}
	want := []report{{diag.LexNumberTooLarge, source.Span{Start: 0, Length: len(input)}, "Number '" + input + "' is too large."}}
	if diff := cmp.Diff(want, reports); diff != "" {
		t.Errorf("reports mismatch (-want +got):\n%s", diff)
	}
}

func TestQuotedStrings(t *testing.T) {
	tests := []struct {
		input string
		kind  syntax.Kind
		value string
	}{
		{`"error: ""message"" is ""my message""."`, syntax.QuotationMarksStringToken, `error: "message" is "my message".`},
		{`'it''s'`, syntax.SingleQuotationMarksStringToken, `it's`},
		{`''`, syntax.SingleQuotationMarksStringToken, ``},
		{`"юникод"`, syntax.QuotationMarksStringToken, `юникод`},
		{`'no \n escapes'`, syntax.SingleQuotationMarksStringToken, `no \n escapes`},
	}
	for _, tt := range tests {
		tokens, reports := lexAll(t, tt.input)
		if len(reports) != 0 {
			t.Errorf("%s: unexpected reports %v", tt.input, reports)
		}
		if len(tokens) != 2 || tokens[0].Kind() != tt.kind || tokens[0].Text != tt.input {
			t.Errorf("%s: got %v", tt.input, kinds(tokens))
			continue
		}
		if tokens[0].Value != tt.value {
			t.Errorf("%s: value %q, want %q", tt.input, tokens[0].Value, tt.value)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens, reports := lexAll(t, "a \"abc\nb")
	want := []tok{
		{syntax.IdentifierToken, "a"},
		{syntax.QuotationMarksStringToken, `"abc`},
		{syntax.IdentifierToken, "b"},
		{syntax.EndOfFileToken, ""},
	}
	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	wantReports := []report{{diag.LexUnterminatedString, source.Span{Start: 2, Length: 1}, "Unterminated string literal."}}
	if diff := cmp.Diff(wantReports, reports); diff != "" {
		t.Errorf("reports mismatch (-want +got):\n%s", diff)
	}
	if tokens[1].Value != "abc" {
		t.Errorf("value %q", tokens[1].Value)
	}
}

func TestMultiLineString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
	}{
		{"indent", "'''\n  a\n    b\n\n  '''", "a\n  b"},
		{"inline", "'''one line'''", "one line"},
		{"escapes", `'''a\'b\\c\td\n'''`, "a'b\\c\td\n"},
		{"continuation", "'''a \\\nb'''", "a b"},
		{"crlf", "'''\r\n  x\r\n  y\r\n'''", "x\r\ny"},
		{"quotes inside", "'''it's ''fine'''", "it's ''fine"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, reports := lexAll(t, tt.input)
			if len(reports) != 0 {
				t.Fatalf("unexpected reports %v", reports)
			}
			if tokens[0].Kind() != syntax.MultiLineStringToken || tokens[0].Text != tt.input {
				t.Fatalf("got %v", kinds(tokens))
			}
			if tokens[0].Value != tt.value {
				t.Errorf("value %q, want %q", tokens[0].Value, tt.value)
			}
		})
	}
}

func TestMultiLineStringErrors(t *testing.T) {
	_, reports := lexAll(t, `'''a\qb'''`)
	want := []report{{diag.LexUnrecognizedEscape, source.Span{Start: 4, Length: 2}, `Unrecognized escape sequence '\q'.`}}
	if diff := cmp.Diff(want, reports); diff != "" {
		t.Errorf("escape reports mismatch (-want +got):\n%s", diff)
	}

	tokens, reports := lexAll(t, "x '''abc")
	want = []report{{diag.LexUnterminatedMultiLineString, source.Span{Start: 2, Length: 3}, "Unterminated multi-line string literal."}}
	if diff := cmp.Diff(want, reports); diff != "" {
		t.Errorf("unterminated reports mismatch (-want +got):\n%s", diff)
	}
	if tokens[1].Text != "'''abc" || tokens[1].Value != "abc" {
		t.Errorf("unexpected token %v value %q", tokens[1], tokens[1].Value)
	}
}

func TestTrivia(t *testing.T) {
	tokens, reports := lexAll(t, "a // c\n  b /* x */\r\n\r\n")
	if len(reports) != 0 {
		t.Fatalf("unexpected reports %v", reports)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %v", kinds(tokens))
	}

	want := [][2][]triv{
		{nil, {{syntax.WhitespaceTrivia, " "}, {syntax.SingleLineCommentTrivia, "// c"}, {syntax.LineBreakTrivia, "\n"}}},
		{{{syntax.WhitespaceTrivia, "  "}}, {{syntax.WhitespaceTrivia, " "}, {syntax.MultiLineCommentTrivia, "/* x */"}, {syntax.LineBreakTrivia, "\r\n"}}},
		{{{syntax.LineBreakTrivia, "\r\n"}}, nil},
	}
	for i, tk := range tokens {
		got := [2][]triv{trivia(tk.Leading), trivia(tk.Trailing)}
		if diff := cmp.Diff(want[i], got); diff != "" {
			t.Errorf("token %d trivia mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestUnterminatedComment(t *testing.T) {
	tokens, reports := lexAll(t, "a /* x")
	want := []report{{diag.LexUnterminatedComment, source.Span{Start: 2, Length: 2}, "Unterminated multi-line comment."}}
	if diff := cmp.Diff(want, reports); diff != "" {
		t.Errorf("reports mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]triv{{syntax.WhitespaceTrivia, " "}, {syntax.MultiLineCommentTrivia, "/* x"}}, trivia(tokens[0].Trailing)); diff != "" {
		t.Errorf("trivia mismatch (-want +got):\n%s", diff)
	}
}

func TestBadCharacters(t *testing.T) {
	tokens, reports := lexAll(t, "a ! b")
	if diff := cmp.Diff([]tok{{syntax.IdentifierToken, "a"}, {syntax.IdentifierToken, "b"}, {syntax.EndOfFileToken, ""}}, kinds(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]triv{{syntax.SkippedTokensTrivia, "!"}, {syntax.WhitespaceTrivia, " "}}, trivia(tokens[1].Leading)); diff != "" {
		t.Errorf("skipped trivia mismatch (-want +got):\n%s", diff)
	}
	want := []report{{diag.LexBadCharacter, source.Span{Start: 2, Length: 1}, "Bad character input: '!'."}}
	if diff := cmp.Diff(want, reports); diff != "" {
		t.Errorf("reports mismatch (-want +got):\n%s", diff)
	}

	tokens, reports = lexAll(t, "!")
	if len(tokens) != 1 || tokens[0].Kind() != syntax.EndOfFileToken || tokens[0].FullText() != "!" {
		t.Errorf("got %v", kinds(tokens))
	}
	if len(reports) != 1 || reports[0].Span != (source.Span{Start: 0, Length: 1}) {
		t.Errorf("reports %v", reports)
	}
}

func TestLexPastEnd(t *testing.T) {
	lx := New(source.From("a b", ""), Options{})
	if got := lx.Lex(); got.Text != "a" {
		t.Fatalf("Lex() = %v", got)
	}
	if got := lx.Lex(); got.Text != "b" {
		t.Fatalf("Lex() = %v", got)
	}
	for range 3 {
		if got := lx.Lex(); got.Kind() != syntax.EndOfFileToken {
			t.Fatalf("Lex() past end = %v", got)
		}
	}
}
