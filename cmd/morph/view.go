package main

import (
	"fmt"
	"io"
	"os"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/encode"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		root, err := parse.Parse(src)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if err := encode.Tree(cc.Out, src, root, cfg.treeOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	src, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return src, nil
}
