package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/deltapad/textcore/config"
	"github.com/deltapad/textcore/encode"
	"github.com/deltapad/textcore/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	J          bool   `cli:"name=j aliases=json desc='output json'"`
	Y          bool   `cli:"name=y aliases=yaml desc='output yaml'"`
	ConfigFile string `cli:"name=config desc='config file (default $DELTAPAD_CONFIG)'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	File *config.Config
	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	fmt := cfg.File.Output.Format
	switch {
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	return fmt
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color || cfg.File.Output.Color == "always" {
		res = append(res, encode.EncodeColors(encode.NewColors()))
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
	if colorsSet || cfg.File.Output.Color == "never" {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type EntriesConfig struct {
	*MainConfig
	RootPath string `cli:"name=root desc='path of a top-level scalar (default $)'"`

	Entries *cli.Command
}

type PathsConfig struct {
	*MainConfig
	Max   int    `cli:"name=max desc='maximum number of results'"`
	Where string `cli:"name=where desc='expression filtering the results'"`

	Paths *cli.Command
}

type ClassifyConfig struct {
	*MainConfig
	Name     string `cli:"name=name desc='file name hint, defaults to the input file'"`
	Prior    string `cli:"name=prior desc='content type the text had before'"`
	Fallback string `cli:"name=fallback desc='content type when nothing matches'"`
	Explain  bool   `cli:"name=explain desc='show which detector decided'"`

	Classify *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Lines     bool   `cli:"name=lines desc='diff whole lines'"`
	Semantic  bool   `cli:"name=semantic desc='merge changes into readable spans'"`
	Whole     bool   `cli:"name=whole desc='show the lines each change touches'"`
	Loop      string `cli:"name=loop desc='command whose successive outputs are diffed'"`
	LoopEvery time.Duration
	LoopLim   int `cli:"name=loopLim desc='max number of times to loop'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type LanguagesConfig struct {
	*MainConfig

	Languages *cli.Command
}
