package main

import (
	"errors"
	"fmt"

	"github.com/deltapad/textcore/debug"
	"github.com/deltapad/textcore/encode"
	"github.com/deltapad/textcore/parse"

	"github.com/scott-cotton/cli"
)

func entries(cfg *EntriesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Entries.Parse(cc, args)
	if err != nil {
		cfg.Entries.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: entries takes at most one file, got %v", cli.ErrUsage, args)
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	d, err := readInput(cc, path)
	if err != nil {
		return err
	}
	var opts []parse.ParseOption
	if cfg.RootPath != "" {
		opts = append(opts, parse.RootPath(cfg.RootPath))
	}
	es, err := parse.Parse(d, opts...)
	if err != nil {
		return notJSON(path, err)
	}
	if debug.Parse() {
		debug.Logf("%s: %d entries", inputName(path), len(es))
	}
	return encode.Encode(es, cc.Out, cfg.encOpts(cc.Out)...)
}

// notJSON describes a parse failure of the document at path.
func notJSON(path string, err error) error {
	if !errors.Is(err, parse.ErrParse) {
		return err
	}
	return fmt.Errorf("%s is not valid JSON: %w", inputName(path), err)
}
