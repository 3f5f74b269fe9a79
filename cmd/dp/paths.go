package main

import (
	"fmt"
	"os"

	"github.com/deltapad/textcore/debug"
	"github.com/deltapad/textcore/encode"
	"github.com/deltapad/textcore/query"

	"github.com/scott-cotton/cli"
)

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		cfg.Paths.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: paths requires a filter and at most one file, got %v", cli.ErrUsage, args)
	}
	filter := args[0]
	path := ""
	if len(args) == 2 {
		path = args[1]
	}
	var where *wherePred
	if cfg.Where != "" {
		where, err = compileWhere(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	limit := cfg.File.Query.Max
	if cfg.Max != 0 {
		limit = cfg.Max
	}
	d, err := readInput(cc, path)
	if err != nil {
		return err
	}
	res, err := query.Paths(d, filter, query.Max(limit))
	if err != nil {
		return notJSON(path, err)
	}
	if debug.Query() {
		debug.Logf("%s: %q matched %d (truncated=%t)", inputName(path), filter, len(res.Items), res.Truncated)
	}
	if where != nil {
		res.Items, err = where.filter(res.Items)
		if err != nil {
			return err
		}
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	if res.Truncated && cfg.outFormat().IsText() {
		fmt.Fprintf(os.Stderr, "results truncated to the first %d matches\n", limit)
	}
	return nil
}
