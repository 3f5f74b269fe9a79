package parse

import "github.com/deltapad/textcore/ir"

// DefaultMaxDepth bounds container nesting.
const DefaultMaxDepth = 10000

type parseOpts struct {
	rootPath string
	maxDepth int
}

type ParseOption func(*parseOpts)

// RootPath sets the path given to a top-level scalar, ir.Root by default.
func RootPath(p string) ParseOption {
	return func(o *parseOpts) { o.rootPath = p }
}

// MaxDepth sets the maximum container nesting, DefaultMaxDepth by default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{
		rootPath: ir.Root,
		maxDepth: DefaultMaxDepth,
	}
	for _, f := range opts {
		f(res)
	}
	return res
}
