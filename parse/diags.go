package parse

import "fmt"

// Code identifies a class of recoverable parse problem. The taxonomy is
// open to extension.
type Code string

const (
	MissingValue          Code = "missing-value"
	DuplicateKey          Code = "duplicate-key"
	UnexpectedIndentation Code = "unexpected-indentation"
)

// Range is a half-open [Start, End) byte range into the parsed input.
type Range struct {
	Start, End int
}

// Diagnostic is a non-fatal, coded record of a recoverable malformation.
// The parser never fails outright: every malformed construct degrades to
// a best-effort node plus zero or more diagnostics.
type Diagnostic struct {
	Code    Code
	Range   Range
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at [%d,%d): %s", d.Code, d.Range.Start, d.Range.End, d.Message)
}

// Diagnostics is an ordered, append-only sink. It is owned by the caller
// of Parse; the parser only appends, in document order.
type Diagnostics struct {
	s []Diagnostic
}

func (ds *Diagnostics) Append(d Diagnostic) {
	ds.s = append(ds.s, d)
}

func (ds *Diagnostics) Slice() []Diagnostic {
	return ds.s
}

func (ds *Diagnostics) Len() int {
	return len(ds.s)
}
