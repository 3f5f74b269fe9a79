// Package parse parses strict JSON into a flat, ordered list of scalar
// entries, each carrying its path and the byte range of its literal in the
// source.
//
// # Usage
//
//	entries, err := parse.Parse([]byte(`{"a":1,"b":[true,null]}`))
//	if err != nil {
//	    return err
//	}
//	for _, e := range entries {
//	    fmt.Println(e.Path, e.Value(), e.Start, e.End)
//	}
//
// Containers produce no entries. A top-level scalar gets the path ir.Root
// unless [RootPath] says otherwise. Duplicate keys are kept, one entry per
// occurrence.
//
// # Related Packages
//
//   - github.com/deltapad/textcore/ir - Entry and path construction
//   - github.com/deltapad/textcore/query - substring path queries over entries
//   - github.com/deltapad/textcore/token - scanners
package parse
