package main

import (
	"fmt"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/morph"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/query"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/token"

	"github.com/scott-cotton/cli"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a predicate", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return err
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := queryArg(cfg, cc, q, arg); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, q, err)
		}
	}
	return nil
}

func queryArg(cfg *QueryConfig, cc *cli.Context, q *query.Query, arg string) error {
	src, err := readArg(arg)
	if err != nil {
		return err
	}
	doc, err := morph.Open(src)
	if err != nil {
		return err
	}
	res, err := q.Select(doc)
	if err != nil {
		return err
	}
	pd := token.NewPosDoc(src)
	for _, n := range res {
		line, col := pd.LineCol(n.Start())
		fmt.Fprintf(cc.Out, "%s:%d:%d: %s %q\n", arg, line+1, col+1, n.Kind(), sample(n.Text()))
	}
	return nil
}

func sample(s string) string {
	const max = 48
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
