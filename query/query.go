package query

import (
	"iter"
	"slices"
	"strings"

	"github.com/deltapad/textcore/ir"
	"github.com/deltapad/textcore/parse"
)

// Result holds the matching entries in document order. Truncated is set
// when more entries matched than the cap allowed.
type Result struct {
	Items     []ir.Entry `json:"items"`
	Truncated bool       `json:"truncated"`
}

// Query collects the entries of seq whose path contains filter. seq is not
// consumed when filter is empty, and is consumed only up to the first match
// past the cap.
func Query(seq iter.Seq[ir.Entry], filter string, opts ...QueryOption) (*Result, error) {
	qo, err := newQueryOpts(opts)
	if err != nil {
		return nil, err
	}
	return query(seq, filter, qo), nil
}

// Paths parses d and queries its entries. A parse failure is returned as
// is and no items are produced.
func Paths(d []byte, filter string, opts ...QueryOption) (*Result, error) {
	qo, err := newQueryOpts(opts)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return &Result{}, nil
	}
	entries, err := parse.Parse(d, qo.parseOpts...)
	if err != nil {
		return nil, err
	}
	return query(slices.Values(entries), filter, qo), nil
}

func query(seq iter.Seq[ir.Entry], filter string, qo *queryOpts) *Result {
	res := &Result{}
	if filter == "" {
		return res
	}
	for e := range seq {
		if !strings.Contains(e.Path, filter) {
			continue
		}
		if len(res.Items) == qo.max {
			res.Truncated = true
			break
		}
		res.Items = append(res.Items, e)
	}
	return res
}
