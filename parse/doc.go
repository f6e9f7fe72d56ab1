// Package parse implements a tolerant parser for a practical subset of
// YAML, producing a concrete syntax tree with exact source offsets.
//
// The parser is built for live, transiently-invalid text: it never
// returns an error and never panics on any input. Malformed constructs
// degrade to best-effort nodes and recoverable problems are reported as
// [Diagnostic] records through a caller-owned [Diagnostics] sink.
//
// Out of scope: anchors, tags, multi-document streams, merge keys, and
// scalar type inference (booleans and numbers remain strings).
package parse
