package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"dbml/internal/diag"
	"dbml/internal/driver"
	"dbml/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	text := source.From("Table T {\n  a \"unterminated\n}", "/tmp/schema/test.dbml")
	d := diag.NewError(diag.LexUnterminatedString, source.Location{Text: text, Span: source.Span{Start: 14, Length: 1}}, "Unterminated string literal.")

	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: true, PathMode: PathModeBasename}
	if err := JSON(&buf, []diag.Diagnostic{d}, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || output.Errors != 1 || output.Warnings != 0 {
		t.Fatalf("unexpected counters: %+v", output)
	}

	got := output.Diagnostics[0]
	if got.Severity != "ERROR" {
		t.Errorf("Expected severity=ERROR, got %s", got.Severity)
	}
	if got.Code != "LEX1002" {
		t.Errorf("Expected code=LEX1002, got %s", got.Code)
	}
	want := LocationJSON{File: "test.dbml", StartByte: 14, EndByte: 15, StartLine: 2, StartCol: 5, EndLine: 2, EndCol: 6}
	if got.Location != want {
		t.Errorf("location = %+v, want %+v", got.Location, want)
	}
}

// TestJSONMax обрезает вывод, но счётчики считает по всем
func TestJSONMax(t *testing.T) {
	tree := driver.Parse("!@$")
	if n := len(tree.Diagnostics()); n != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", n)
	}

	out, err := BuildDiagnosticsOutput(tree.Diagnostics(), JSONOpts{Max: 2})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 || out.Errors != 3 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Errorf("positions must be omitted without IncludePositions")
	}
}

func TestMsgpackMatchesJSON(t *testing.T) {
	tree := driver.Parse("Table T { x y [ frobnicate ] }")
	opts := JSONOpts{IncludePositions: true}

	want, err := BuildDiagnosticsOutput(tree.Diagnostics(), opts)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Msgpack(&buf, tree.Diagnostics(), opts); err != nil {
		t.Fatal(err)
	}
	var got DiagnosticsOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Count != want.Count || got.Warnings != 1 || got.Diagnostics[0] != want.Diagnostics[0] {
		t.Fatalf("msgpack round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}
