// Package syntax defines the full-fidelity syntax tree: kinds, trivia, tokens,
// composite nodes and the Tree that owns them.
//
// Nodes are immutable once NewTree returns. Every byte of the source belongs to
// exactly one token text or trivia, so concatenating the tokens in order
// (leading trivia, text, trailing trivia) reproduces the input.
package syntax
