package ast

import "fmt"

// Kind discriminates the closed set of node variants.
type Kind int

const (
	KindScalar Kind = iota
	KindMap
	KindSequence
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindScalar:   "Scalar",
		KindMap:      "Map",
		KindSequence: "Sequence",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Scalar":   KindScalar,
		"Map":      KindMap,
		"Sequence": KindSequence,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{KindScalar, KindMap, KindSequence}
}

// ScalarFormat records how a scalar was written in the source.
type ScalarFormat int

const (
	FormatNone ScalarFormat = iota
	FormatSingle
	FormatDouble
	FormatLiteral
	FormatFolded
)

func (f ScalarFormat) String() string {
	s, ok := map[ScalarFormat]string{
		FormatNone:    "none",
		FormatSingle:  "single",
		FormatDouble:  "double",
		FormatLiteral: "literal",
		FormatFolded:  "folded",
	}[f]
	if ok {
		return s
	}
	return "<unknown format>"
}

func (f ScalarFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *ScalarFormat) UnmarshalText(d []byte) error {
	ff, ok := map[string]ScalarFormat{
		"none":    FormatNone,
		"single":  FormatSingle,
		"double":  FormatDouble,
		"literal": FormatLiteral,
		"folded":  FormatFolded,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized scalar format %q", d)
	}
	*f = ff
	return nil
}

func Formats() []ScalarFormat {
	return []ScalarFormat{
		FormatNone,
		FormatSingle,
		FormatDouble,
		FormatLiteral,
		FormatFolded,
	}
}
