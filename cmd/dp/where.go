package main

import (
	"fmt"
	"os"

	"github.com/deltapad/textcore/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type whereEnv struct {
	Path   string `expr:"path"`
	Value  any    `expr:"value"`
	Type   string `expr:"type"`
	Start  int    `expr:"start"`
	End    int    `expr:"end"`
	Truthy bool   `expr:"truthy"`
}

func newWhereEnv(e *ir.Entry) whereEnv {
	return whereEnv{
		Path:   e.Path,
		Value:  e.Value(),
		Type:   e.Type.String(),
		Start:  e.Start,
		End:    e.End,
		Truthy: ir.Truth(e),
	}
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(whereEnv{}),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

type wherePred struct {
	src string
	prg *vm.Program
}

func compileWhere(src string) (*wherePred, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return &wherePred{src: src, prg: prg}, nil
}

func (p *wherePred) match(e *ir.Entry) (bool, error) {
	res, err := expr.Run(p.prg, newWhereEnv(e))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q at %s: %w", p.src, e.Path, err)
	}
	b, _ := res.(bool)
	return b, nil
}

// filter keeps the entries p matches, in order.
func (p *wherePred) filter(es []ir.Entry) ([]ir.Entry, error) {
	var res []ir.Entry
	for i := range es {
		ok, err := p.match(&es[i])
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, es[i])
		}
	}
	return res, nil
}
