// Package diag defines the diagnostic model shared by the lexer and the parser.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – SevWarning or SevError, decided by the producer at the call site.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     (LEX1xxx for the lexer, SYN2xxx for grammar errors, SEM3xxx for the inline
//     semantic checks the parser performs).
//   - Message – human oriented text, a full sentence ending with a period.
//   - Location – the source.Text plus the span the diagnostic points at.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter. BagReporter appends into a Bag, which is a flat,
// append-only list: there is no limit, no filtering and no deduplication, so the
// order of Items is exactly the order in which lexer and parser found problems.
// Display limits (for example the CLI --max-diagnostics flag) are applied by
// consumers, never here.
//
// Diagnostics are data, never control flow: reporting one does not stop lexing
// or parsing, and a tree is always produced.
package diag
