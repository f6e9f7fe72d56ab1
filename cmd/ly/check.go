package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	total := 0
	for _, arg := range inputArgs(args) {
		of, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		total += of.Diags.Len()
		if cfg.Quiet {
			continue
		}
		for _, dg := range of.Diags.Slice() {
			line, col := of.Doc.LineCol(dg.Range.Start)
			fmt.Fprintf(cc.Out, "%s:%d:%d: %s: %s\n",
				of.Path, line+1, col+1, dg.Code, dg.Message)
		}
	}
	if total > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
