package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"dbml/internal/driver"
	"dbml/internal/source"
)

func TestFormatTokensPretty(t *testing.T) {
	text := "Table T // c\n{ 1_0 }"
	tokens, _ := driver.ParseTokens(text, true)

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, source.From(text, "")); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 tokens, got:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], `IdentifierToken`) || !strings.Contains(lines[1], `(trailing: WhitespaceTrivia, SingleLineCommentTrivia, LineBreakTrivia)`) {
		t.Errorf("unexpected line %q", lines[1])
	}
	if !strings.Contains(lines[3], `"1_0" at 2:3-2:6 = "10"`) {
		t.Errorf("unexpected number line %q", lines[3])
	}
}

func TestFormatTokensJSONAndMsgpack(t *testing.T) {
	tokens, _ := driver.ParseTokens("a '''x'''", true)

	want := []TokenOutput{
		{Kind: "IdentifierToken", Text: "a", Span: SpanOutput{Start: 0, End: 1}, Trailing: []string{"WhitespaceTrivia"}},
		{Kind: "MultiLineStringToken", Text: "'''x'''", Value: "x", Span: SpanOutput{Start: 2, End: 9}},
		{Kind: "EndOfFileToken", Span: SpanOutput{Start: 9, End: 9}},
	}

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var fromJSON []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, fromJSON); diff != "" {
		t.Errorf("json tokens mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := FormatTokensMsgpack(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var fromMsgpack []TokenOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &fromMsgpack); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, fromMsgpack); diff != "" {
		t.Errorf("msgpack tokens mismatch (-want +got):\n%s", diff)
	}
}
