// Package libdiff maps an edit script between two text buffers onto
// line/column change ranges in each buffer.
//
// An edit script is a sequence of [Op] values, each unchanged, removed or
// added. Removed spans produce [Deletion] ranges in the original buffer,
// added spans produce [Addition] ranges in the modified buffer, and
// unchanged spans only move both cursors. Lengths and offsets count Unicode
// code points.
//
// [Chars] and [Lines] compute edit scripts with
// github.com/sergi/go-diff/diffmatchpatch.
//
//	ops := libdiff.Chars(before, after)
//	res, err := libdiff.MapRanges(ops)
package libdiff
