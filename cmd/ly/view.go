package main

import (
	"github.com/laxfmt/laxyaml/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if cfg.Indent > 0 {
		opts = append(opts, encode.EncodeIndent(cfg.Indent))
	}
	files := inputArgs(args)
	for i, arg := range files {
		of, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := encode.Encode(of.Node, cc.Out, opts...); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
