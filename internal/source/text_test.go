package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFrom_Lines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []Line
	}{
		{
			name:  "empty text has one empty line",
			text:  "",
			lines: []Line{{Start: 0, Length: 0, LengthIncludingBreak: 0}},
		},
		{
			name:  "no trailing break",
			text:  "ab",
			lines: []Line{{Start: 0, Length: 2, LengthIncludingBreak: 2}},
		},
		{
			name: "lf",
			text: "a\nbc",
			lines: []Line{
				{Start: 0, Length: 1, LengthIncludingBreak: 2},
				{Start: 2, Length: 2, LengthIncludingBreak: 2},
			},
		},
		{
			name: "crlf counts as one break",
			text: "a\r\nb",
			lines: []Line{
				{Start: 0, Length: 1, LengthIncludingBreak: 3},
				{Start: 3, Length: 1, LengthIncludingBreak: 1},
			},
		},
		{
			name: "lone cr and trailing break",
			text: "a\rb\n",
			lines: []Line{
				{Start: 0, Length: 1, LengthIncludingBreak: 2},
				{Start: 2, Length: 1, LengthIncludingBreak: 2},
				{Start: 4, Length: 0, LengthIncludingBreak: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.text, "test.dbml").Lines()
			if len(got) != len(tt.lines) {
				t.Fatalf("got %d lines, want %d: %+v", len(got), len(tt.lines), got)
			}
			for i := range got {
				if got[i] != tt.lines[i] {
					t.Fatalf("line %d = %+v, want %+v", i, got[i], tt.lines[i])
				}
			}
		})
	}
}

func TestText_LineIndex(t *testing.T) {
	text := From("ab\ncd\r\nef", "x")
	cases := map[int]int{
		0: 0, 1: 0, 2: 0,
		3: 1, 4: 1, 5: 1, 6: 1,
		7: 2, 8: 2, 9: 2, // 9 == Len()
	}
	for offset, want := range cases {
		if got := text.LineIndex(offset); got != want {
			t.Errorf("LineIndex(%d) = %d, want %d", offset, got, want)
		}
	}
}

func TestLocation_LineAndCharacter(t *testing.T) {
	text := From("Table users {\n  id int\n}", "x")
	loc := Location{Text: text, Span: Span{Start: 16, Length: 2}}
	if loc.StartLine() != 1 || loc.StartCharacter() != 2 {
		t.Fatalf("start = %d:%d, want 1:2", loc.StartLine(), loc.StartCharacter())
	}
	if loc.EndLine() != 1 || loc.EndCharacter() != 4 {
		t.Fatalf("end = %d:%d, want 1:4", loc.EndLine(), loc.EndCharacter())
	}
}

func TestSpan_Cover(t *testing.T) {
	got := Span{Start: 4, Length: 2}.Cover(Span{Start: 1, Length: 1})
	if got != FromBounds(1, 6) {
		t.Fatalf("Cover = %v, want 1..6", got)
	}
	if !got.Contains(Span{Start: 2, Length: 3}) {
		t.Fatalf("expected %v to contain 2..5", got)
	}
}

func TestText_SliceClamps(t *testing.T) {
	text := From("abc", "x")
	if got := text.Slice(Span{Start: 1, Length: 10}); got != "bc" {
		t.Fatalf("Slice = %q, want %q", got, "bc")
	}
}

func TestLoad_DecodesBOMs(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{name: "plain.dbml", content: []byte("Table t {}"), want: "Table t {}"},
		{name: "utf8bom.dbml", content: append([]byte{0xEF, 0xBB, 0xBF}, "enum e {}"...), want: "enum e {}"},
		{name: "utf16le.dbml", content: []byte{0xFF, 0xFE, 'a', 0, '\n', 0, 'b', 0}, want: "a\nb"},
		{name: "utf16be.dbml", content: []byte{0xFE, 0xFF, 0, 'a', 0, 'b'}, want: "ab"},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		if err := os.WriteFile(path, tt.content, 0o600); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		text, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", tt.name, err)
		}
		if text.String() != tt.want {
			t.Errorf("Load(%s) = %q, want %q", tt.name, text.String(), tt.want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.dbml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
