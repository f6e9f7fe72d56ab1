package main

import (
	"encoding/json"
	"fmt"

	"github.com/laxfmt/laxyaml/ast"

	"github.com/scott-cotton/cli"

	"github.com/expr-lang/expr"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires one argument, an expression", cli.ErrUsage)
	}
	prg, err := expr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad expression: %w", cli.ErrUsage, err)
	}
	for _, arg := range inputArgs(args[1:]) {
		of, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := expr.Run(prg, map[string]any{"doc": ast.Plain(of.Node)})
		if err != nil {
			return fmt.Errorf("error evaluating against %s: %w", arg, err)
		}
		d, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	return nil
}
