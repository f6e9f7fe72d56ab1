package main

import (
	"io"
	"os"

	"github.com/laxfmt/laxyaml/encode"
	"github.com/laxfmt/laxyaml/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Dups  bool `cli:"name=dups desc='accept duplicate keys silently'"`
	Depth int  `cli:"name=depth desc='max nesting depth'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	res := []parse.Option{}
	if cfg.Dups {
		res = append(res, parse.AllowDuplicateKeys())
	}
	if cfg.Depth > 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='report only the exit status'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Indent int `cli:"name=i desc='spaces per nesting level'"`

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type JSONConfig struct {
	*MainConfig
	Compact bool `cli:"name=c desc='compact output'"`

	JSON *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}
