package main

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/deltapad/textcore/debug"
	"github.com/deltapad/textcore/encode"
	"github.com/deltapad/textcore/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
		}
		if args[0] == "-" && args[1] == "-" {
			return fmt.Errorf("%w: at most one side can be stdin", cli.ErrUsage)
		}
		a, err := readInput(cc, args[0])
		if err != nil {
			return fmt.Errorf("error reading %s: %w", args[0], err)
		}
		b, err := readInput(cc, args[1])
		if err != nil {
			return fmt.Errorf("error reading %s: %w", args[1], err)
		}
		diff, err := diffInputs(cfg, cc, string(a), string(b), false)
		if err != nil {
			return err
		}
		if diff {
			return cli.ExitCodeErr(1)
		}
		return nil
	}

	return diffLoop(cfg, cc)
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	i := 0
	last := ""
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for {
		if i == cfg.LoopLim {
			break
		}
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		next := string(d)
		differs, err := diffInputs(cfg, cc, last, next, diffCount > 0)
		if err != nil {
			return err
		}
		if differs {
			diffCount++
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		last = next
		<-ticker.C
		i++
	}
	return nil
}

func (cfg *DiffConfig) ops(a, b string) []libdiff.Op {
	var ops []libdiff.Op
	if cfg.Lines || cfg.File.Diff.Lines {
		ops = libdiff.Lines(a, b)
	} else {
		ops = libdiff.Chars(a, b)
	}
	if cfg.Semantic || cfg.File.Diff.Semantic {
		ops = libdiff.Semantic(ops)
	}
	return ops
}

func diffInputs(do *DiffConfig, cc *cli.Context, a, b string, sep bool) (bool, error) {
	ops := do.ops(a, b)
	res, err := libdiff.MapRanges(ops)
	if err != nil {
		return false, err
	}
	if debug.Diff() {
		debug.Logf("%d ops, summary %+v", len(ops), res.Summary)
	}
	if !res.Differs() {
		return false, nil
	}
	w := cc.Out
	when := time.Now().Format(time.RFC3339Nano)
	if sep {
		_, err := w.Write([]byte("---\n"))
		if err != nil {
			return false, fmt.Errorf("unable to write separator: %w", err)
		}
	}
	if do.Loop != "" && do.outFormat().IsText() {
		_, err := w.Write([]byte("# difference found at " + when + "\n"))
		if err != nil {
			return false, err
		}
	}
	opts := append(do.MainConfig.encOpts(w), encode.EncodeWholeLines(do.Whole))
	if err := encode.Encode(res, w, opts...); err != nil {
		return false, err
	}
	return true, nil
}
