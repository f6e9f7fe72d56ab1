package main

import (
	"encoding/json"
	"fmt"

	"github.com/laxfmt/laxyaml/ast"

	"github.com/scott-cotton/cli"
)

func jsonRun(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		cfg.JSON.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputArgs(args) {
		of, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		var d []byte
		if cfg.Compact {
			d, err = json.Marshal(ast.Plain(of.Node))
		} else {
			d, err = json.MarshalIndent(ast.Plain(of.Node), "", "  ")
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	return nil
}
