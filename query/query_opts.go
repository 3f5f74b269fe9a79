package query

import (
	"fmt"

	"github.com/deltapad/textcore/ir"
	"github.com/deltapad/textcore/parse"
)

// DefaultMax is the result cap when no Max option is given.
const DefaultMax = 1000

type QueryOption func(*queryOpts)

type queryOpts struct {
	max       int
	parseOpts []parse.ParseOption
}

// Max caps the number of returned items. n must be positive.
func Max(n int) QueryOption {
	return func(o *queryOpts) { o.max = n }
}

// ParseOptions are passed on to parse.Parse by Paths.
func ParseOptions(opts ...parse.ParseOption) QueryOption {
	return func(o *queryOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}

func newQueryOpts(opts []QueryOption) (*queryOpts, error) {
	res := &queryOpts{max: DefaultMax}
	for _, o := range opts {
		o(res)
	}
	if res.max <= 0 {
		return nil, fmt.Errorf("%w: max must be positive, got %d", ir.ErrInvalidArgument, res.max)
	}
	return res, nil
}
