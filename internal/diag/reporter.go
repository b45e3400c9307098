package diag

import "dbml/internal/source"

// Reporter: минимальный контракт получения диагностик от лексера и парсера.
type Reporter interface {
	Report(code Code, sev Severity, loc source.Location, msg string)
}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, loc source.Location, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(New(sev, code, loc, msg))
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Location, string) {}
