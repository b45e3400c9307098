// Package trace provides the logging layer of the dbml tools.
//
// Tracing records the passes of a parse (lex, parse) and, at the debug level,
// one event per top-level declaration. It is off by default.
//
// # Usage
//
//	dbml diag --trace=- --trace-level=phase schema.dbml
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr), text or NDJSON
//   - RingTracer: circular buffer kept in memory
//   - Tee: stream plus ring for the latest events
//
// # Levels and scopes
//
// LevelPhase emits ScopeDriver and ScopePass events, LevelDetail adds
// ScopeFile, LevelDebug adds ScopeNode.
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
