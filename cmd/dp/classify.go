package main

import (
	"fmt"

	"github.com/deltapad/textcore/classify"
	"github.com/deltapad/textcore/debug"
	"github.com/deltapad/textcore/encode"

	"github.com/scott-cotton/cli"
)

func classifyRun(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
	if err != nil {
		cfg.Classify.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: classify takes at most one file, got %v", cli.ErrUsage, args)
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	h, err := cfg.hints(path)
	if err != nil {
		return err
	}
	d, err := readInput(cc, path)
	if err != nil {
		return err
	}
	res := cfg.File.Classifier().Explain(string(d), h)
	if debug.Classify() {
		debug.Logf("%s: %s by %s (%.2f)", inputName(path), res.Tag, res.Detector, res.Confidence)
	}
	var v any = res.Tag
	if cfg.Explain {
		v = res
	}
	return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...)
}

func (cfg *ClassifyConfig) hints(path string) (classify.Hints, error) {
	h := classify.Hints{
		Filename: cfg.Name,
		Fallback: cfg.File.Classify.Fallback,
	}
	if h.Filename == "" && path != "-" {
		h.Filename = path
	}
	if cfg.Prior != "" {
		t, ok := classify.ParseTag(cfg.Prior)
		if !ok {
			return h, fmt.Errorf("%w: unknown language %q for -prior", cli.ErrUsage, cfg.Prior)
		}
		h.Prior = t
	}
	if cfg.Fallback != "" {
		t, ok := classify.ParseTag(cfg.Fallback)
		if !ok {
			return h, fmt.Errorf("%w: unknown language %q for -fallback", cli.ErrUsage, cfg.Fallback)
		}
		h.Fallback = t
	}
	return h, nil
}
