// Package encode renders syntax trees back to text in a normalized block
// form.
//
// # Usage
//
//	node := parse.ParseString("a: {b: 1}", nil)
//	err := encode.Encode(node, os.Stdout)
//
// The output uses block style throughout: one property or item per line,
// multi-line scalars as block literals with an exact chomping indicator,
// and quoting only where a plain scalar would not parse back to the same
// value.
//
// # Related Packages
//
//   - github.com/laxfmt/laxyaml/ast - syntax tree representation
//   - github.com/laxfmt/laxyaml/parse - parse text to syntax trees
package encode
