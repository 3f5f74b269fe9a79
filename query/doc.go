// Package query filters parsed JSON entries by a literal substring of their
// path, capping the number of results and reporting truncation.
//
// An empty filter selects nothing, so a caller never dumps a whole
// document by accident.
//
//	res, err := query.Paths(doc, "name", query.Max(10))
//	if err != nil {
//	    return err
//	}
//	if res.Truncated {
//	    ...
//	}
package query
