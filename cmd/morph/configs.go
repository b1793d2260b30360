package main

import (
	"io"
	"os"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`
	Spans bool `cli:"name=spans desc='show byte offsets'"`
	Depth int  `cli:"name=depth desc='max tree depth, 0 for unlimited'"`

	Main *cli.Command
}

func (cfg *MainConfig) treeOpts(w io.Writer) []encode.TreeOption {
	res := []encode.TreeOption{
		encode.TreeDepth(cfg.Depth),
		encode.TreeSpans(cfg.Spans),
	}
	if cfg.Color {
		res = append(res, encode.TreeColors(encode.NewColors()))
		return res
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
		res = append(res, encode.TreeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type EditConfig struct {
	*MainConfig

	From   int    `cli:"name=from desc='start byte offset of the edit'"`
	To     int    `cli:"name=to desc='end byte offset of the edit'"`
	Insert string `cli:"name=insert desc='replacement text'"`
	Tree   bool   `cli:"name=tree desc='show the resulting tree instead of the text'"`

	Edit *cli.Command
}
