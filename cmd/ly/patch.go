package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/laxfmt/laxyaml/ast"
	"github.com/laxfmt/laxyaml/encode"
	"github.com/laxfmt/laxyaml/parse"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a json patch and a file to which to apply it", cli.ErrUsage)
	}
	pd, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	of, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	target, err := json.Marshal(ast.Plain(of.Node))
	if err != nil {
		return fmt.Errorf("error projecting %s: %w", args[1], err)
	}
	res, err := p.Apply(target)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	// The patched projection is flow form, so it reads right back in.
	node := parse.Parse(res, nil)
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// getPatch resolves the patch argument as a literal, a file, or by the
// shape of the argument when neither -s nor -f is given.
func getPatch(cfg *PatchConfig, arg string) ([]byte, error) {
	switch {
	case cfg.String && cfg.File:
		return nil, fmt.Errorf("%w: -s and -f are mutually exclusive", cli.ErrUsage)
	case cfg.String:
		return []byte(arg), nil
	case cfg.File:
		return os.ReadFile(arg)
	case len(arg) > 0 && arg[0] == '[':
		return []byte(arg), nil
	default:
		return os.ReadFile(arg)
	}
}
