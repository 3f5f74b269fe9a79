package main

import (
	"fmt"

	"github.com/deltapad/textcore/classify"

	"github.com/scott-cotton/cli"
)

func languages(cfg *LanguagesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Languages.Parse(cc, args)
	if err != nil {
		cfg.Languages.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: languages takes no arguments", cli.ErrUsage)
	}
	for _, t := range classify.Tags() {
		if _, err := fmt.Fprintln(cc.Out, t); err != nil {
			return err
		}
	}
	return nil
}
