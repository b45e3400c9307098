package observ

import (
	"strings"
	"testing"
)

func TestTimer_RecordsPhasesInOrder(t *testing.T) {
	tm := NewTimer()
	lex := tm.Begin("lex")
	tm.End(lex, "12 tokens")
	parse := tm.Begin("parse")
	tm.End(parse, "")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != "lex" || report.Phases[0].Note != "12 tokens" {
		t.Fatalf("unexpected first phase: %+v", report.Phases[0])
	}
	if report.Phases[1].Name != "parse" {
		t.Fatalf("unexpected second phase: %+v", report.Phases[1])
	}
	if summary := tm.Summary(); !strings.Contains(summary, "// 12 tokens") || !strings.Contains(summary, "total") {
		t.Fatalf("unexpected summary:\n%s", summary)
	}
}

func TestTimer_NilIsNoop(t *testing.T) {
	var tm *Timer
	idx := tm.Begin("lex")
	tm.End(idx, "ignored")
	if idx != -1 {
		t.Fatalf("expected -1 index from nil timer, got %d", idx)
	}
	if got := tm.Report(); len(got.Phases) != 0 {
		t.Fatalf("expected empty report, got %+v", got)
	}
}

func TestTimer_EndIgnoresBadIndex(_ *testing.T) {
	tm := NewTimer()
	tm.End(5, "out of range")
	tm.End(-1, "negative")
}
