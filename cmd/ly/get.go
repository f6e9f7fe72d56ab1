package main

import (
	"fmt"

	"github.com/laxfmt/laxyaml/ast"
	"github.com/laxfmt/laxyaml/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := ast.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range inputArgs(args[1:]) {
		of, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := path.Lookup(of.Node)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
