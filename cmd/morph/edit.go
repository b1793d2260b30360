package main

import (
	"fmt"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/encode"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/morph"

	"github.com/scott-cotton/cli"
)

func edit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: edit takes at most one file", cli.ErrUsage)
	}
	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	}
	src, err := readArg(arg)
	if err != nil {
		return err
	}
	doc, err := morph.Open(src)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	if err := doc.Edit(cfg.From, cfg.To, []byte(cfg.Insert)); err != nil {
		return fmt.Errorf("error editing %s: %w", arg, err)
	}
	if cfg.Tree {
		return encode.Tree(cc.Out, doc.Text(), doc.Root().Syntax(), cfg.treeOpts(cc.Out)...)
	}
	_, err = cc.Out.Write(doc.Text())
	return err
}
