package libdiff

import (
	"strings"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Chars computes a character level edit script turning a into b.
func Chars(a, b string) []Op {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(a, "\n") && strings.Contains(b, "\n")
	return fromDiffs(diffCfg.DiffMain(a, b, doMultiLine))
}

// Lines computes an edit script over whole lines. Every op text is one or
// more complete lines, the last one possibly without its line break.
func Lines(a, b string) []Op {
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffMain(ca, cb, false)
	return fromDiffs(diffCfg.DiffCharsToLines(diffs, lines))
}

// Semantic merges ops into fewer, human readable spans. Both buffers
// reconstructed from the result are unchanged.
func Semantic(ops []Op) []Op {
	diffCfg := diffpatch.New()
	return fromDiffs(diffCfg.DiffCleanupSemantic(toDiffs(ops)))
}

func fromDiffs(diffs []diffpatch.Diff) []Op {
	res := make([]Op, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		if diff.Text == "" {
			continue
		}
		op := Op{Text: diff.Text, Count: utf8.RuneCountInString(diff.Text)}
		switch diff.Type {
		case diffpatch.DiffInsert:
			op.Type = Added
		case diffpatch.DiffDelete:
			op.Type = Removed
		case diffpatch.DiffEqual:
			op.Type = Unchanged
		}
		res = append(res, op)
	}
	return res
}

func toDiffs(ops []Op) []diffpatch.Diff {
	res := make([]diffpatch.Diff, 0, len(ops))
	for _, op := range ops {
		d := diffpatch.Diff{Text: op.Text}
		switch op.Type {
		case Added:
			d.Type = diffpatch.DiffInsert
		case Removed:
			d.Type = diffpatch.DiffDelete
		default:
			d.Type = diffpatch.DiffEqual
		}
		res = append(res, d)
	}
	return res
}

// Original reconstructs the original buffer from the texts of ops.
func Original(ops []Op) string {
	return join(ops, Removed)
}

// Modified reconstructs the modified buffer from the texts of ops.
func Modified(ops []Op) string {
	return join(ops, Added)
}

func join(ops []Op, side OpType) string {
	b := &strings.Builder{}
	for i := range ops {
		if ops[i].Type == Unchanged || ops[i].Type == side {
			b.WriteString(ops[i].Text)
		}
	}
	return b.String()
}
