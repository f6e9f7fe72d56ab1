// Package token provides the line and indentation scanner and the scalar
// lexing primitives underlying the laxyaml parser.
//
// [NewDoc] indexes an input buffer into physical lines and translates
// between byte offsets and line/column positions.
//
// The scanning helpers are tolerant by contract: malformed input is
// consumed to the best available boundary and never produces an error.
package token
