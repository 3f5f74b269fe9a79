package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dp").
		WithSynopsis("dp [opts] command [opts]").
		WithDescription("dp inspects text: JSON paths with offsets, content types and diff ranges.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dpMain(cfg, cc, args)
		}).
		WithSubs(
			EntriesCommand(cfg),
			PathsCommand(cfg),
			ClassifyCommand(cfg),
			DiffCommand(cfg),
			LanguagesCommand(cfg))
}

func EntriesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EntriesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Entries, "entries").
		WithAliases("e", "en").
		WithSynopsis("entries [opts] [file]").
		WithDescription("list every scalar of a JSON document with its path and source offsets").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return entries(cfg, cc, args)
		})
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Paths, "paths").
		WithAliases("p", "pa").
		WithSynopsis("paths [-max n] [-where expr] <filter> [file]").
		WithDescription(pathsDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
}

const pathsDescription = `paths lists the scalars of a JSON document whose path contains <filter>.

The filter is a literal, case sensitive substring. An empty filter lists
nothing. At most -max results are shown (default from the config file, or
1000); a notice on stderr tells when more matched.

-where filters the results further with an expression over
  path    the entry path, e.g. user.tags[0]
  value   the decoded value
  type    Null, Bool, Number or String
  start   byte offset of the literal
  end     byte offset just past the literal
  truthy  whether the value is non zero, non empty and not null
and the function getenv(name).

  dp paths -where 'type == "Number" && value > 2' id data.json`

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Classify, "classify").
		WithAliases("c", "cl").
		WithSynopsis("classify [-name file] [-prior tag] [-fallback tag] [-explain] [file]").
		WithDescription("guess the content type of text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return classifyRun(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, LoopEvery: time.Second, LoopLim: -1}
	loopEveryOpt := &cli.Opt{
		Name: "loopEvery",
		Type: cli.FuncOpt(cfg.mkLoopEvery()),
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, loopEveryOpt)

	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-lines] [-semantic] a b or diff -loop <cmd>").
		WithDescription("show the changed ranges between two texts, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func LanguagesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LanguagesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Languages, "languages").
		WithAliases("langs").
		WithSynopsis("languages").
		WithDescription("list the content types classify can report").
		WithRun(func(cc *cli.Context, args []string) error {
			return languages(cfg, cc, args)
		})
}
