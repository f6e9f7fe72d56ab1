package main

import (
	"fmt"
	"io"
	"os"

	"github.com/laxfmt/laxyaml/ast"
	"github.com/laxfmt/laxyaml/parse"
	"github.com/laxfmt/laxyaml/token"

	"github.com/scott-cotton/cli"
)

// objFile is one parsed input together with its source and diagnostics.
type objFile struct {
	Path  string
	Data  []byte
	Doc   *token.Doc
	Node  ast.Node
	Diags parse.Diagnostics
}

func getObjFile(cc *cli.Context, path string, opts ...parse.Option) (*objFile, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	of := &objFile{Path: path, Data: d, Doc: token.NewDoc(d)}
	of.Node = parse.Parse(d, &of.Diags, opts...)
	return of, nil
}

// inputArgs defaults to stdin when no files are given.
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
