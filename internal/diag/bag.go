package diag

import (
	"sort"
)

// Bag is an append-only list of diagnostics.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{items: make([]Diagnostic, 0, 8)}
}

// Add appends a diagnostic.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// HasErrors возвращает true, если есть хотя бы одна ошибка
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одно предупреждение
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity == SevWarning {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Snapshot returns a copy of the collected diagnostics.
func (b *Bag) Snapshot() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// Merge appends diagnostics from another Bag.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// Sorted returns a copy ordered by position, then severity (errors first), then code.
// The bag itself keeps discovery order.
func (b *Bag) Sorted() []Diagnostic {
	out := b.Snapshot()
	SortDiagnostics(out)
	return out
}

// SortDiagnostics orders diagnostics by start, end, severity (desc) and code.
func SortDiagnostics(items []Diagnostic) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i], items[j]
		if di.Location.Span.Start != dj.Location.Span.Start {
			return di.Location.Span.Start < dj.Location.Span.Start
		}
		if di.Location.Span.End() != dj.Location.Span.End() {
			return di.Location.Span.End() < dj.Location.Span.End()
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Count returns how many diagnostics have the given severity.
func Count(items []Diagnostic, sev Severity) int {
	n := 0
	for i := range items {
		if items[i].Severity == sev {
			n++
		}
	}
	return n
}
