package main

import (
	"fmt"
	"strings"

	"github.com/laxfmt/laxyaml/encode"

	"github.com/scott-cotton/cli"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}

	// Diff the normalized renderings, so quoting style and layout in the
	// inputs never show up as differences.
	na := encode.MustString(a.Node) + "\n"
	nb := encode.MustString(b.Node) + "\n"
	if na == nb {
		return nil
	}
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(na, nb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	if cfg.Color {
		if _, err := cc.Out.Write([]byte(dmp.DiffPrettyText(diffs))); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, ln := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if _, err := fmt.Fprintf(cc.Out, "%s%s\n", prefix, ln); err != nil {
				return err
			}
		}
	}
	return cli.ExitCodeErr(1)
}
