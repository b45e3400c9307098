package trace

import "time"

// Kind says whether an event opens a span, closes it or stands alone.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Scope is the granularity of an event; larger values are finer.
//
//	driver  one CLI command
//	pass    lex or parse over one document
//	file    one input of a multi-file command
//	node    one top-level declaration
type Scope uint8

const (
	ScopeDriver Scope = iota + 1
	ScopePass
	ScopeFile
	ScopeNode
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopePass:   "pass",
	ScopeFile:   "file",
	ScopeNode:   "node",
}

func (s Scope) String() string {
	if s == 0 || int(s) >= len(scopeNames) {
		return "unknown"
	}
	return scopeNames[s]
}

// Event is one trace record. Seq is assigned by the tracer that stores it.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корневых
	Name     string // "lex", "parse", "Table", ...
	Detail   string
	Elapsed  time.Duration // только у KindSpanEnd
	Extra    map[string]string
}
